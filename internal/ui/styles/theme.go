// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// SHARED STYLES
// =============================================================================

// Title is the screen heading style.
var Title = lipgloss.NewStyle().
	Foreground(Lavender).
	Bold(true).
	MarginBottom(1)

// Subtitle is the secondary heading style.
var Subtitle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// Hint renders keybinding hints and footers.
var Hint = lipgloss.NewStyle().
	Foreground(TextMuted).
	Italic(true)

// Panel wraps a screen body in a rounded border.
var Panel = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(Overlay).
	Padding(1, 2)

// FocusedPanel is a panel with the focus accent.
var FocusedPanel = Panel.
	BorderForeground(Teal)

// Dimmed reduces intensity during slide transitions. Lip Gloss has no
// opacity, so faded content renders in the muted text color.
var Dimmed = lipgloss.NewStyle().
	Foreground(TextMuted)

// SidebarItem is an unselected navigation entry.
var SidebarItem = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Padding(0, 1)

// SidebarActive is the selected navigation entry.
var SidebarActive = lipgloss.NewStyle().
	Foreground(TextInverse).
	Background(Teal).
	Bold(true).
	Padding(0, 1)

// UserMessage styles an outgoing chat line.
var UserMessage = lipgloss.NewStyle().
	Foreground(UserBubbleFg).
	BorderStyle(lipgloss.NormalBorder()).
	BorderLeft(true).
	BorderForeground(UserBubbleBorder).
	PaddingLeft(1)

// BotMessage styles a companion chat line.
var BotMessage = lipgloss.NewStyle().
	Foreground(BotBubbleFg).
	BorderStyle(lipgloss.NormalBorder()).
	BorderLeft(true).
	BorderForeground(BotBubbleBorder).
	PaddingLeft(1)

// Toast styles the notification overlay box.
var Toast = lipgloss.NewStyle().
	Background(SurfaceDim).
	Foreground(TextPrimary).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(Teal).
	Padding(0, 2)
