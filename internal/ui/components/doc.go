// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the shared UI pieces composed by the shell:
// the sidebar navigation list, the login gate, and the non-blocking
// notification toast for replies that arrive off the chat view.
package components
