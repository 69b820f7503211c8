// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sereno-tui/internal/ui/styles"
)

// =============================================================================
// NOTIFICATION TOAST
// =============================================================================

// ToastDuration is how long a reply notification stays up before
// auto-dismissing.
const ToastDuration = 6 * time.Second

// Toast is the corner notification raised when a companion reply settles
// while the user is on another view. Non-blocking: the user keeps working
// and the toast dismisses itself.
type Toast struct {
	Message   string
	CreatedAt time.Time
}

// NewToast creates a toast carrying the reply snippet.
func NewToast(message string) Toast {
	return Toast{Message: message, CreatedAt: time.Now()}
}

// Active reports whether the toast should still be shown.
func (t Toast) Active() bool {
	return t.Message != "" && time.Since(t.CreatedAt) < ToastDuration
}

// Expired reports whether the toast timed out on its own.
func (t Toast) Expired() bool {
	return t.Message != "" && time.Since(t.CreatedAt) >= ToastDuration
}

// =============================================================================
// MESSAGES
// =============================================================================

// ToastTickMsg drives toast expiry checks.
type ToastTickMsg struct {
	Time time.Time
}

// ToastTickCmd ticks twice a second while a toast is visible.
func ToastTickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return ToastTickMsg{Time: t}
	})
}

// =============================================================================
// RENDERING
// =============================================================================

// RenderToast draws the toast in the top-right corner of the given area.
// Returns "" when there is nothing to show.
func RenderToast(t Toast, width, height int) string {
	if !t.Active() {
		return ""
	}

	maxWidth := 58
	if width > 0 && width-4 < maxWidth {
		maxWidth = width - 4
	}

	header := lipgloss.NewStyle().
		Foreground(styles.Teal).
		Bold(true).
		Render("Sereno")
	hint := styles.Hint.Render("esc dismiss")

	body := header + "\n" +
		lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(t.Message) + "\n" +
		hint

	box := styles.Toast.MaxWidth(maxWidth).Render(body)

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Right, lipgloss.Top, box)
	}
	return box
}
