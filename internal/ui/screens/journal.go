// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/sereno-tui/internal/ui/styles"
	"github.com/jeranaias/sereno-tui/internal/util"
	"github.com/jeranaias/sereno-tui/internal/wellness"
)

// =============================================================================
// JOURNAL SCREEN
// =============================================================================

const journalListLimit = 5

// journalSavedMsg reports the result of saving an entry.
type journalSavedMsg struct {
	err error
}

// journalEntriesMsg carries the recent entries list.
type journalEntriesMsg struct {
	entries []wellness.Entry
}

// Journal is the free-text journaling screen: an entry editor on top, the
// most recent entries below.
type Journal struct {
	store   *wellness.Store
	editor  textarea.Model
	entries []wellness.Entry
	status  string
	isErr   bool
}

// NewJournal creates the journal screen with a focused editor.
func NewJournal(store *wellness.Store) *Journal {
	ta := textarea.New()
	ta.Placeholder = "What's on your mind?"
	ta.SetHeight(5)
	ta.CharLimit = 2000
	ta.Focus()
	return &Journal{store: store, editor: ta}
}

// Init loads the recent entries.
func (j *Journal) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, j.loadEntries())
}

func (j *Journal) loadEntries() tea.Cmd {
	store := j.store
	return func() tea.Msg {
		if store == nil {
			return journalEntriesMsg{}
		}
		entries, err := store.Recent(context.Background(), wellness.KindJournal, journalListLimit)
		if err != nil {
			return journalEntriesMsg{}
		}
		return journalEntriesMsg{entries: entries}
	}
}

func (j *Journal) saveEntry(body string) tea.Cmd {
	store := j.store
	return func() tea.Msg {
		if store == nil {
			return journalSavedMsg{err: wellness.ErrEmptyEntry}
		}
		_, err := store.AddJournal(context.Background(), body)
		return journalSavedMsg{err: err}
	}
}

// Update handles editing and ctrl+s save.
func (j *Journal) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			body := strings.TrimSpace(j.editor.Value())
			if body == "" {
				j.status = "Nothing to save yet."
				j.isErr = true
				return j, nil
			}
			return j, j.saveEntry(body)
		}

	case journalSavedMsg:
		if msg.err != nil {
			j.status = "Couldn't save that entry."
			j.isErr = true
			return j, nil
		}
		j.status = "Saved."
		j.isErr = false
		j.editor.Reset()
		return j, j.loadEntries()

	case journalEntriesMsg:
		j.entries = msg.entries
		return j, nil
	}

	var cmd tea.Cmd
	j.editor, cmd = j.editor.Update(msg)
	return j, cmd
}

// View renders the editor and the recent-entries list.
func (j *Journal) View(width, height int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Journal"))
	b.WriteString("\n")
	b.WriteString(j.editor.View())
	b.WriteString("\n")

	if j.status != "" {
		if j.isErr {
			b.WriteString(styles.RenderError(j.status))
		} else {
			b.WriteString(styles.RenderSuccess(j.status))
		}
		b.WriteString("\n")
	}

	if len(j.entries) > 0 {
		b.WriteString("\n" + styles.Subtitle.Render("Recent entries") + "\n")
		for _, e := range j.entries {
			line := e.CreatedAt.Format("Jan 2 15:04") + "  " + util.Snippet(e.Body, 60)
			b.WriteString(styles.SidebarItem.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + styles.Hint.Render("ctrl+s to save"))
	return b.String()
}
