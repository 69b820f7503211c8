// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session coordinates the conversation: transcript, history, streaming.
package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/jeranaias/sereno-tui/internal/assist"
	"github.com/jeranaias/sereno-tui/internal/greeting"
	"github.com/jeranaias/sereno-tui/internal/history"
	"github.com/jeranaias/sereno-tui/internal/model"
	"github.com/jeranaias/sereno-tui/internal/notify"
	"github.com/jeranaias/sereno-tui/internal/util"
	"github.com/jeranaias/sereno-tui/internal/view"
)

// =============================================================================
// HISTORY STATE
// =============================================================================

// HistoryState tracks where the coordinator is in the resume-or-restart flow.
type HistoryState int

const (
	// HistoryChecking means the persisted transcript has not been examined yet.
	HistoryChecking HistoryState = iota
	// HistoryPrompting means a resumable transcript was found and the user is
	// being asked whether to continue it.
	HistoryPrompting
	// HistoryReady means the conversation is live.
	HistoryReady
)

func (s HistoryState) String() string {
	switch s {
	case HistoryChecking:
		return "checking"
	case HistoryPrompting:
		return "prompting"
	case HistoryReady:
		return "ready"
	default:
		return "unknown"
	}
}

// NotificationSnippetLimit is the number of reply runes shown in the
// off-screen toast before the ellipsis.
const NotificationSnippetLimit = 50

// =============================================================================
// COORDINATOR
// =============================================================================

// Coordinator owns the conversation state: the transcript, the loading flag,
// the resume-or-restart history flow, and the live companion session. The UI
// reads snapshots and forwards events; the coordinator decides what they mean.
//
// All methods are safe for concurrent use. Notifier cues fire outside the lock.
type Coordinator struct {
	mu sync.Mutex

	client   *assist.Client
	store    *history.Store
	notifier notify.Notifier
	locale   language.Tag

	userName   string
	state      HistoryState
	transcript model.Transcript
	pending    model.Transcript // held while prompting
	loading    bool
	session    *assist.Session

	activeView   view.View
	notification string

	// now is swapped in tests to pin the greeting bucket.
	now func() time.Time
}

// New creates a coordinator. A nil notifier disables attention cues.
func New(client *assist.Client, store *history.Store, notifier notify.Notifier, locale language.Tag) *Coordinator {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Coordinator{
		client:     client,
		store:      store,
		notifier:   notifier,
		locale:     locale,
		state:      HistoryChecking,
		activeView: view.Chat,
		now:        time.Now,
	}
}

// =============================================================================
// SNAPSHOT ACCESSORS
// =============================================================================

// State returns the current history state.
func (c *Coordinator) State() HistoryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Transcript returns the current transcript. Value semantics make the
// returned slice safe to render without copying.
func (c *Coordinator) Transcript() model.Transcript {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transcript
}

// Loading reports whether a send is in flight.
func (c *Coordinator) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Notification returns the pending off-screen reply snippet, empty when none.
func (c *Coordinator) Notification() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notification
}

// UserName returns the display name captured at login.
func (c *Coordinator) UserName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userName
}

// =============================================================================
// BOOTSTRAP / RESUME FLOW
// =============================================================================

// Bootstrap examines the persisted transcript and decides the opening flow:
// a resumable conversation (two or more messages) moves to prompting so the
// user chooses. Anything else (missing file, decode failure, a transcript too
// short to be worth resuming) starts fresh.
func (c *Coordinator) Bootstrap(name string) {
	c.mu.Lock()
	c.userName = name
	c.mu.Unlock()

	stored, err := c.store.Load()
	if err != nil || stored.Len() <= 1 {
		if err != nil && !errors.Is(err, history.ErrNoHistory) {
			log.Printf("history unreadable, starting fresh: %v", err)
		}
		c.StartNew()
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = stored
	c.state = HistoryPrompting
}

// StartNew clears the stored history and opens a fresh conversation seeded
// with a single localized greeting.
func (c *Coordinator) StartNew() {
	if err := c.store.Clear(); err != nil {
		log.Printf("failed to clear history: %v", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	greet := greeting.Greet(c.locale, c.now(), c.userName)
	c.transcript = model.Transcript{model.NewBotMessage(greet)}
	c.pending = nil
	c.loading = false
	c.session = c.client.OpenSession(c.transcript)
	c.state = HistoryReady
}

// Continue adopts the held transcript and resumes the conversation with the
// model seeing every prior turn.
func (c *Coordinator) Continue() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != HistoryPrompting || c.pending.IsEmpty() {
		return
	}
	c.transcript = c.pending
	c.pending = nil
	c.loading = false
	c.session = c.client.OpenSession(c.transcript)
	c.state = HistoryReady
}

// =============================================================================
// SEND LIFECYCLE
// =============================================================================

// BeginSend validates and records an outgoing message. It returns the trimmed
// prompt and true when the send should proceed. Blank input, a missing
// session, or a send already in flight reject the attempt.
func (c *Coordinator) BeginSend(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if trimmed == "" || c.session == nil || c.loading || c.state != HistoryReady {
		return "", false
	}

	c.transcript = c.transcript.Append(model.NewUserMessage(trimmed))
	c.loading = true
	return trimmed, true
}

// Stream runs the send against the companion service, forwarding each
// cumulative chunk through onUpdate (already applied to the transcript).
// It blocks until the stream settles and returns the send error, if any.
// Callers run it on their own goroutine; Bubble Tea wraps it in a Cmd.
func (c *Coordinator) Stream(ctx context.Context, prompt string, onUpdate func(model.Transcript)) error {
	c.mu.Lock()
	sess := c.session
	c.mu.Unlock()
	if sess == nil {
		return nil
	}

	var cumulative string
	_, err := sess.Send(ctx, prompt, func(chunk assist.Chunk) {
		if chunk.Content == "" {
			return
		}
		cumulative += chunk.Content
		snapshot := c.ApplyChunk(cumulative)
		if onUpdate != nil {
			onUpdate(snapshot)
		}
	})

	c.FinishSend(err)
	return err
}

// ApplyChunk folds the cumulative reply text into the transcript: the first
// chunk appends a bot message, later chunks replace it. Mid-stream the
// transcript never grows past one message beyond the prompt.
func (c *Coordinator) ApplyChunk(cumulative string) model.Transcript {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loading {
		return c.transcript
	}

	last, ok := c.transcript.Last()
	if ok && last.Role == model.RoleBot {
		c.transcript = c.transcript.ReplaceLast(cumulative)
	} else {
		c.transcript = c.transcript.Append(model.NewBotMessage(cumulative))
	}
	return c.transcript
}

// FinishSend settles a send. The loading flag always clears, success or
// failure. Off the chat view a non-empty reply raises the notification
// snippet and plays the attention cue; a settled non-empty transcript is
// persisted.
func (c *Coordinator) FinishSend(sendErr error) {
	c.mu.Lock()

	c.loading = false

	var cue bool
	if c.activeView != view.Chat {
		if last, ok := c.transcript.Last(); ok && last.Role == model.RoleBot && !last.IsEmpty() {
			c.notification = util.Snippet(last.Text, NotificationSnippetLimit)
			cue = true
		}
	}

	persist := c.state == HistoryReady && !c.transcript.IsEmpty()
	snapshot := c.transcript
	c.mu.Unlock()

	if sendErr != nil {
		log.Printf("send failed: %v", sendErr)
	}
	if cue {
		if err := c.notifier.Play(notify.KindReply); err != nil {
			log.Printf("notification cue failed: %v", err)
		}
	}
	if persist {
		if err := c.store.Save(snapshot); err != nil {
			log.Printf("failed to persist history: %v", err)
		}
	}
}

// =============================================================================
// VIEW TRACKING
// =============================================================================

// SetActiveView records which view the user is looking at. Arriving at chat
// clears any pending notification.
func (c *Coordinator) SetActiveView(v view.View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeView = v
	if v == view.Chat {
		c.notification = ""
	}
}

// ClearNotification dismisses the pending snippet.
func (c *Coordinator) ClearNotification() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notification = ""
}
