// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sereno-tui/internal/ui/styles"
	"github.com/jeranaias/sereno-tui/internal/wellness"
)

// =============================================================================
// MOOD SCREEN
// =============================================================================

var moodLabels = [5]string{"Rough", "Low", "Okay", "Good", "Great"}

// moodSavedMsg reports the result of recording a check-in.
type moodSavedMsg struct {
	entry wellness.Entry
	err   error
}

// moodStatsMsg carries the trailing-week average.
type moodStatsMsg struct {
	avg   float64
	count int
}

// Mood is the 1-5 mood check-in screen backed by the wellness log.
type Mood struct {
	store    *wellness.Store
	selected int // 0-4 cursor position
	saved    bool
	err      error
	avg      float64
	count    int
}

// NewMood creates the mood screen.
func NewMood(store *wellness.Store) *Mood {
	return &Mood{store: store, selected: 2}
}

// Init loads the trailing-week average.
func (m *Mood) Init() tea.Cmd {
	return m.loadStats()
}

func (m *Mood) loadStats() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return moodStatsMsg{}
		}
		avg, count, err := store.MoodAverage(context.Background(), 7*24*time.Hour)
		if err != nil {
			return moodStatsMsg{}
		}
		return moodStatsMsg{avg: avg, count: count}
	}
}

func (m *Mood) save(score int) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return moodSavedMsg{err: fmt.Errorf("wellness log unavailable")}
		}
		e, err := store.AddMood(context.Background(), score, "")
		return moodSavedMsg{entry: e, err: err}
	}
}

// Update handles cursor movement and check-in submission.
func (m *Mood) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.selected > 0 {
				m.selected--
			}
			m.saved = false
		case "right", "l":
			if m.selected < 4 {
				m.selected++
			}
			m.saved = false
		case "enter":
			return m, m.save(m.selected + 1)
		}

	case moodSavedMsg:
		m.err = msg.err
		m.saved = msg.err == nil
		if m.saved {
			return m, m.loadStats()
		}

	case moodStatsMsg:
		m.avg = msg.avg
		m.count = msg.count
	}
	return m, nil
}

// View renders the picker row, save feedback, and the weekly average.
func (m *Mood) View(width, height int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("How are you feeling right now?"))
	b.WriteString("\n\n")

	var cells []string
	for i, label := range moodLabels {
		cell := fmt.Sprintf("%d\n%s", i+1, label)
		if i == m.selected {
			cells = append(cells, styles.FocusedPanel.Render(cell))
		} else {
			cells = append(cells, styles.Panel.Render(cell))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.RenderError("Couldn't save that check-in. Try again?"))
	case m.saved:
		b.WriteString(styles.RenderSuccess("Noted. Thanks for checking in."))
	}
	b.WriteString("\n")

	if m.count > 0 {
		b.WriteString(styles.Subtitle.Render(
			fmt.Sprintf("Past week: %.1f average over %d check-ins", m.avg, m.count)))
		b.WriteString("\n")
	}

	b.WriteString("\n" + styles.Hint.Render("left/right to choose, enter to save"))
	return b.String()
}
