// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles centralizes the sereno TUI's visual language: a calming
// teal-and-lavender palette as adaptive light/dark colors, plus the shared
// Lip Gloss styles screens compose from. Screens never hardcode colors.
package styles
