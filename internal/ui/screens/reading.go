// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/sereno-tui/internal/ui/styles"
)

// =============================================================================
// READING SCREENS (education, featured article)
// =============================================================================

// Reading renders a fixed markdown document in a scrollable viewport. Both
// the education screen and the featured article are Readings over different
// content.
type Reading struct {
	title    string
	markdown string

	vp      viewport.Model
	ready   bool
	width   int
	wrapped string
}

// NewReading creates a reading screen over the given markdown.
func NewReading(title, markdown string) *Reading {
	return &Reading{title: title, markdown: markdown}
}

// Init is a no-op; rendering waits for the first size.
func (r *Reading) Init() tea.Cmd { return nil }

// render re-renders the markdown at the given wrap width.
func (r *Reading) render(width int) string {
	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return r.markdown
	}
	out, err := renderer.Render(r.markdown)
	if err != nil {
		return r.markdown
	}
	return out
}

// Update handles scrolling; the shell delivers sizes through View.
func (r *Reading) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if !r.ready {
		return r, nil
	}
	var cmd tea.Cmd
	r.vp, cmd = r.vp.Update(msg)
	return r, cmd
}

// View renders the document, lazily building the viewport at the current
// size. Markdown re-renders only when the width changes.
func (r *Reading) View(width, height int) string {
	bodyHeight := height - 3
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	if !r.ready || r.width != width {
		r.wrapped = r.render(width)
		r.vp = viewport.New(width, bodyHeight)
		r.vp.SetContent(r.wrapped)
		r.width = width
		r.ready = true
	}
	r.vp.Height = bodyHeight

	return styles.Title.Render(r.title) + "\n" +
		r.vp.View() + "\n" +
		styles.Hint.Render("up/down to scroll")
}
