// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view.
package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	mdl "github.com/jeranaias/sereno-tui/internal/model"
	"github.com/jeranaias/sereno-tui/internal/session"
	"github.com/jeranaias/sereno-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the conversation screen. It renders the coordinator's transcript,
// captures prompts, and relays stream updates. The coordinator owns all
// conversation state; the model is a projection of it.
type Model struct {
	coord *session.Coordinator

	vp      viewport.Model
	input   textinput.Model
	spin    spinner.Model
	ready   bool
	width   int
	height  int
	loading bool

	transcript mdl.Transcript
	errLine    string

	md      *glamour.TermRenderer
	mdWidth int
}

// New creates the chat screen bound to a coordinator.
func New(coord *session.Coordinator) *Model {
	ti := textinput.New()
	ti.Placeholder = "Tell me how you're doing..."
	ti.CharLimit = 1000
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Teal)

	return &Model{
		coord: coord,
		input: ti,
		spin:  sp,
	}
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// STREAMING COMMANDS
// =============================================================================

// startStream launches the send on its own goroutine and returns the command
// that listens for its first update. Snapshots are dropped when the UI lags:
// each chunk carries the full cumulative text, so the next one catches up.
func (m *Model) startStream(prompt string) tea.Cmd {
	coord := m.coord
	updates := make(chan mdl.Transcript, 16)
	done := make(chan error, 1)

	go func() {
		err := coord.Stream(context.Background(), prompt, func(tr mdl.Transcript) {
			select {
			case updates <- tr:
			default:
			}
		})
		close(updates)
		done <- err
	}()

	return listenStream(updates, done)
}

// listenStream waits for the next snapshot or completion.
func listenStream(updates <-chan mdl.Transcript, done <-chan error) tea.Cmd {
	return func() tea.Msg {
		if tr, ok := <-updates; ok {
			return StreamChunkMsg{Transcript: tr, updates: updates, done: done}
		}
		return StreamDoneMsg{Err: <-done}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles input, the resume prompt, and stream progress.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The resume-or-restart prompt swallows keys until answered.
		if m.coord.State() == session.HistoryPrompting {
			switch msg.String() {
			case "y", "Y":
				m.coord.Continue()
				m.syncTranscript()
			case "n", "N":
				m.coord.StartNew()
				m.syncTranscript()
			}
			return m, nil
		}

		if msg.Type == tea.KeyEnter {
			prompt, ok := m.coord.BeginSend(m.input.Value())
			if !ok {
				return m, nil
			}
			m.input.Reset()
			m.errLine = ""
			m.loading = true
			m.syncTranscript()
			return m, tea.Batch(m.spin.Tick, m.startStream(prompt))
		}

	case StreamChunkMsg:
		m.transcript = msg.Transcript
		m.refreshViewport()
		return m, listenStream(msg.updates, msg.done)

	case StreamDoneMsg:
		m.loading = false
		if msg.Err != nil {
			m.errLine = "The companion couldn't answer just now. Give it another try in a moment."
		}
		m.syncTranscript()
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.ready {
		m.vp, cmd = m.vp.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// SyncFromCoordinator pulls the latest conversation state. The shell calls
// it after bootstrap and when navigating back to chat.
func (m *Model) SyncFromCoordinator() {
	m.syncTranscript()
}

func (m *Model) syncTranscript() {
	m.transcript = m.coord.Transcript()
	m.refreshViewport()
}

// =============================================================================
// VIEW
// =============================================================================

// renderMarkdown runs bot text through glamour, rebuilding the renderer when
// the wrap width changes. Falls back to the raw text if rendering fails.
func (m *Model) renderMarkdown(text string, wrap int) string {
	if m.md == nil || m.mdWidth != wrap {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return text
		}
		m.md = r
		m.mdWidth = wrap
	}
	out, err := m.md.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// renderTranscript formats the message log for the viewport.
func (m *Model) renderTranscript(width int) string {
	if m.transcript.IsEmpty() {
		return styles.Hint.Render("Say hello whenever you're ready.")
	}

	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}

	var b strings.Builder
	for i, msg := range m.transcript {
		name := msg.Role.DisplayName()
		if msg.Role == mdl.RoleUser {
			body := lipgloss.NewStyle().Width(wrap).Render(msg.Text)
			b.WriteString(styles.UserMessage.Render(name + "\n" + body))
		} else {
			b.WriteString(styles.BotMessage.Render(name + "\n" + m.renderMarkdown(msg.Text, wrap)))
		}
		if i < m.transcript.Len()-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.vp.SetContent(m.renderTranscript(m.width))
	m.vp.GotoBottom()
}

// Resize rebuilds the layout for a new terminal size.
func (m *Model) Resize(width, height int) {
	m.width = width
	m.height = height

	bodyHeight := height - 4
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	if !m.ready {
		m.vp = viewport.New(width, bodyHeight)
		m.ready = true
	} else {
		m.vp.Width = width
		m.vp.Height = bodyHeight
	}
	m.input.Width = width - 6
	m.refreshViewport()
}

// View renders the conversation, the resume prompt, or the input row.
func (m *Model) View(width, height int) string {
	if m.width != width || m.height != height || !m.ready {
		m.Resize(width, height)
	}

	if m.coord.State() == session.HistoryPrompting {
		card := styles.FocusedPanel.Render(
			styles.Title.Render("Welcome back") + "\n" +
				"You have a conversation in progress.\n" +
				"Pick up where you left off?\n\n" +
				styles.Hint.Render("y continue / n start fresh"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}

	footer := m.input.View()
	if m.loading {
		footer = m.spin.View() + " " + styles.Hint.Render("thinking...")
	} else if m.errLine != "" {
		footer = styles.RenderError(m.errLine) + "\n" + footer
	}

	return m.vp.View() + "\n\n" + footer
}
