// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell provides the root Bubble Tea model.
package shell

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sereno-tui/internal/config"
	"github.com/jeranaias/sereno-tui/internal/session"
	"github.com/jeranaias/sereno-tui/internal/ui/chat"
	"github.com/jeranaias/sereno-tui/internal/ui/components"
	"github.com/jeranaias/sereno-tui/internal/ui/screens"
	"github.com/jeranaias/sereno-tui/internal/ui/styles"
	"github.com/jeranaias/sereno-tui/internal/ui/transition"
	"github.com/jeranaias/sereno-tui/internal/view"
	"github.com/jeranaias/sereno-tui/internal/wellness"
)

const sidebarWidth = 16

// =============================================================================
// MESSAGES
// =============================================================================

// transitionTimerMsg fires when a slide phase's timer elapses.
type transitionTimerMsg struct{}

// frameFlushMsg confirms the off-screen placement of the entering view has
// been through one render pass.
type frameFlushMsg struct{}

// bootstrappedMsg reports that the coordinator finished examining history.
type bootstrappedMsg struct{}

// ConfigReloadedMsg carries a freshly reloaded config from the file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// SHELL MODEL
// =============================================================================

// Shell is the root model: the login gate, then sidebar + displayed screen +
// notification overlay, with the transition machine animating view changes.
type Shell struct {
	coord *session.Coordinator
	cfg   *config.Config

	login    components.Login
	loggedIn bool

	machine *transition.Machine
	sidebar components.Sidebar

	chatView *chat.Model
	screens  map[view.View]screens.Screen

	toast components.Toast

	width  int
	height int
}

// New assembles the shell. The wellness store may be nil; the mood and
// journal screens degrade to read-only hints.
func New(coord *session.Coordinator, cfg *config.Config, log *wellness.Store) *Shell {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Shell{
		coord:    coord,
		cfg:      cfg,
		login:    components.NewLogin(),
		machine:  transition.New(view.Chat, cfg.TransitionDuration()),
		sidebar:  components.NewSidebar(),
		chatView: chat.New(coord),
		screens: map[view.View]screens.Screen{
			view.Mood:      screens.NewMood(log),
			view.Journal:   screens.NewJournal(log),
			view.Quiz:      screens.NewQuiz(),
			view.Education: screens.NewReading("Learn", screens.EducationMarkdown),
			view.Article:   screens.NewReading("Featured", screens.ArticleMarkdown),
		},
	}
}

// Init starts the login gate.
func (s *Shell) Init() tea.Cmd {
	return s.login.Init()
}

// =============================================================================
// EFFECT DRIVING
// =============================================================================

// navigate feeds a Navigate event and wires its effects.
func (s *Shell) navigate(target view.View) tea.Cmd {
	eff, ok := s.machine.Navigate(target)
	if !ok {
		return nil
	}
	// The coordinator tracks the destination from the moment navigation
	// starts: replies settling mid-slide belong to the new view.
	s.coord.SetActiveView(target)
	s.sidebar.Active = target

	var cmds []tea.Cmd
	cmds = append(cmds, s.effectCmd(eff))
	if target == view.Chat {
		s.chatView.SyncFromCoordinator()
		s.toast = components.Toast{}
	} else if sc, ok := s.screens[target]; ok {
		cmds = append(cmds, sc.Init())
	}
	return tea.Batch(cmds...)
}

// effectCmd maps one effect to the command that feeds the next event back.
// The frame-flush command is delivered after the current update renders,
// which is exactly the ordering the entering phase needs.
func (s *Shell) effectCmd(eff transition.Effect) tea.Cmd {
	switch eff.Kind {
	case transition.EffectScheduleTimer:
		return tea.Tick(eff.Duration, func(time.Time) tea.Msg { return transitionTimerMsg{} })
	case transition.EffectRequestFrame:
		return func() tea.Msg { return frameFlushMsg{} }
	default:
		return nil
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update routes messages: global keys first, then the transition machine,
// then the displayed screen.
func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.chatView.Resize(s.contentWidth(), s.contentHeight())
		return s, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return s, tea.Quit
		}

	case components.LoginDoneMsg:
		s.loggedIn = true
		name := msg.Name
		coord := s.coord
		return s, tea.Batch(
			func() tea.Msg {
				coord.Bootstrap(name)
				return bootstrappedMsg{}
			},
			s.chatView.Init(),
		)

	case bootstrappedMsg:
		s.chatView.SyncFromCoordinator()
		return s, nil

	case ConfigReloadedMsg:
		if msg.Config != nil {
			s.cfg = msg.Config
			s.machine.SetPhaseDuration(msg.Config.TransitionDuration())
		}
		return s, nil

	case transitionTimerMsg:
		return s, s.effectCmd(s.machine.TimerFired())

	case frameFlushMsg:
		return s, s.effectCmd(s.machine.FrameFlushed())

	case components.ToastTickMsg:
		if s.toast.Expired() {
			s.coord.ClearNotification()
			s.toast = components.Toast{}
			return s, nil
		}
		if s.toast.Active() {
			return s, components.ToastTickCmd()
		}
		return s, nil
	}

	if !s.loggedIn {
		var cmd tea.Cmd
		s.login, cmd = s.login.Update(msg)
		return s, cmd
	}

	// A settled off-chat reply surfaces as a toast; the coordinator already
	// holds the snippet.
	if snippet := s.coord.Notification(); snippet != "" && !s.toast.Active() {
		s.toast = components.NewToast(snippet)
		return s, tea.Batch(components.ToastTickCmd(), s.dispatch(msg))
	}

	return s, s.dispatch(msg)
}

// dispatch forwards a message to the navigation keys and the displayed
// screen.
func (s *Shell) dispatch(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "1", "2", "3", "4", "5", "6":
			idx := int(key.String()[0] - '1')
			return s.navigate(view.View(idx))
		case "tab":
			next := (s.machine.Target() + 1) % view.View(len(view.All))
			return s.navigate(next)
		case "shift+tab":
			prev := s.machine.Target() - 1
			if prev < view.Chat {
				prev = view.Article
			}
			return s.navigate(prev)
		case "esc":
			if s.toast.Active() {
				s.coord.ClearNotification()
				s.toast = components.Toast{}
				return nil
			}
		}
	}

	// Input reaches only the view on screen, and not mid-slide.
	if s.machine.Animating() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return nil
		}
	}

	displayed := s.machine.Displayed()
	if displayed == view.Chat {
		var cmd tea.Cmd
		s.chatView, cmd = s.chatView.Update(msg)
		return cmd
	}
	if sc, ok := s.screens[displayed]; ok {
		next, cmd := sc.Update(msg)
		s.screens[displayed] = next
		return cmd
	}
	return nil
}

// =============================================================================
// VIEW
// =============================================================================

func (s *Shell) contentWidth() int {
	w := s.width - sidebarWidth
	if w < 20 {
		w = 20
	}
	return w
}

func (s *Shell) contentHeight() int {
	h := s.height - 2
	if h < 5 {
		h = 5
	}
	return h
}

// View renders the login gate or the composed interface.
func (s *Shell) View() string {
	if s.width == 0 {
		return ""
	}
	if !s.loggedIn {
		return s.login.View(s.width, s.height)
	}

	displayed := s.machine.Displayed()
	var content string
	if displayed == view.Chat {
		content = s.chatView.View(s.contentWidth(), s.contentHeight())
	} else if sc, ok := s.screens[displayed]; ok {
		content = sc.View(s.contentWidth(), s.contentHeight())
	}

	// Slide placement: off-center phases render the content dimmed and
	// pushed against the side it occupies.
	place := s.machine.Place()
	if place.Faded {
		content = styles.Dimmed.Render(content)
	}
	align := lipgloss.Center
	switch {
	case place.Offset < 0:
		align = lipgloss.Left
	case place.Offset > 0:
		align = lipgloss.Right
	}
	content = lipgloss.Place(s.contentWidth(), s.contentHeight(), align, lipgloss.Top, content)

	s.sidebar.Badge[view.Chat] = s.coord.Notification() != ""
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		s.sidebar.Render(s.contentHeight()),
		content,
	)

	footer := styles.Hint.Render("1-6 switch view  tab next  ctrl+c quit")
	out := body + "\n" + footer

	if s.toast.Active() {
		overlay := components.RenderToast(s.toast, s.width, 1)
		out = overlay + "\n" + out
	}
	return out
}
