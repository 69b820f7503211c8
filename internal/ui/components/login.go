// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sereno-tui/internal/ui/styles"
)

// =============================================================================
// LOGIN GATE
// =============================================================================

// LoginDoneMsg carries the captured display name out of the login gate.
type LoginDoneMsg struct {
	Name string
}

// Login captures the user's display name before the main interface opens.
type Login struct {
	input textinput.Model
	err   string
}

// NewLogin creates the login gate with a focused name field.
func NewLogin() Login {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 40
	ti.Width = 30
	ti.Focus()
	return Login{input: ti}
}

// Init starts the cursor blink.
func (l Login) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input. Enter with a non-blank name emits LoginDoneMsg.
func (l Login) Update(msg tea.Msg) (Login, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		name := strings.TrimSpace(l.input.Value())
		if name == "" {
			l.err = "Please tell me your name."
			return l, nil
		}
		return l, func() tea.Msg { return LoginDoneMsg{Name: name} }
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	if l.err != "" && strings.TrimSpace(l.input.Value()) != "" {
		l.err = ""
	}
	return l, cmd
}

// View renders the centered login card.
func (l Login) View(width, height int) string {
	title := styles.Title.Render("Welcome to sereno")
	prompt := styles.Subtitle.Render("What should I call you?")

	body := title + "\n" + prompt + "\n\n" + l.input.View()
	if l.err != "" {
		body += "\n\n" + styles.RenderError(l.err)
	}
	body += "\n\n" + styles.Hint.Render("enter to continue")

	card := styles.FocusedPanel.Render(body)
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
