// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package notify plays attention cues for events the user is not looking at.
package notify

import (
	"io"
	"os"
)

// Kind selects the cue to play.
type Kind int

const (
	// KindReply signals a companion reply arriving off the chat view.
	KindReply Kind = iota
	// KindError signals a failure the user should notice.
	KindError
)

// Notifier plays an attention cue. Implementations must be safe for
// concurrent use and must never block the caller for long.
type Notifier interface {
	Play(Kind) error
}

// =============================================================================
// TERMINAL BELL
// =============================================================================

// Bell rings the terminal bell. Terminals translate this into whatever the
// user configured: a sound, a visual flash, or nothing.
type Bell struct {
	// Out defaults to os.Stdout.
	Out io.Writer
}

// NewBell creates a bell notifier writing to stdout.
func NewBell() *Bell {
	return &Bell{Out: os.Stdout}
}

// Play rings the bell. The cue kind is ignored; the terminal offers one bell.
func (b *Bell) Play(Kind) error {
	out := b.Out
	if out == nil {
		out = os.Stdout
	}
	_, err := out.Write([]byte("\a"))
	return err
}

// =============================================================================
// NOP
// =============================================================================

// Nop discards all cues. Used in tests and when cues are disabled in config.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Kind) error { return nil }
