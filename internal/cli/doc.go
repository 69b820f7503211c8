// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli routes command-line invocations: the default full-screen TUI,
// the plain-terminal ask REPL, and the version/help commands.
package cli
