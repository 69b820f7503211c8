// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides shared UI components for the sereno TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sereno-tui/internal/ui/styles"
	"github.com/jeranaias/sereno-tui/internal/view"
)

// =============================================================================
// SIDEBAR
// =============================================================================

// Sidebar renders the vertical navigation list. Selection is owned by the
// shell; the sidebar is purely presentational.
type Sidebar struct {
	Active view.View
	// Badge marks a view with an attention dot (pending notification).
	Badge map[view.View]bool
}

// NewSidebar creates a sidebar with chat active.
func NewSidebar() Sidebar {
	return Sidebar{Active: view.Chat, Badge: make(map[view.View]bool)}
}

// Render draws the sidebar at the given height.
func (s Sidebar) Render(height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(styles.Lavender).
		Bold(true).
		Padding(0, 1).
		Render("sereno")
	b.WriteString(title + "\n\n")

	for i, v := range view.All {
		label := v.String()
		if s.Badge[v] {
			label += " *"
		}
		// Number hint matches the keybinding (1-6).
		label = string(rune('1'+i)) + " " + label

		if v == s.Active {
			b.WriteString(styles.SidebarActive.Render(label))
		} else {
			b.WriteString(styles.SidebarItem.Render(label))
		}
		b.WriteString("\n")
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(styles.Overlay).
		Height(height).
		PaddingRight(1)

	return box.Render(b.String())
}
