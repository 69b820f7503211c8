// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assist talks to the companion chat service.
//
// The package has three layers:
//
//   - Client: HTTP transport, timeouts, rate limiting, health checks
//   - StreamReader: newline-delimited JSON decoding of streamed replies
//   - Session: the rolling conversation context sent with each prompt
//
// Callers drive it through a Session: open one with the restored transcript
// (or nil for a fresh conversation), then Send prompts and consume chunks
// through the handler. Errors are typed ClientErrors; use IsUnavailable and
// IsTimeout (or errors.Is against the sentinels) to branch on them.
package assist
