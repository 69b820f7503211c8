// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package screens implements the non-chat views.
package screens

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is the contract every non-chat view satisfies. The shell owns
// sizing and forwards messages only to the displayed screen.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
}
