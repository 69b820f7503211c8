// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and transcripts.
package model

import "encoding/json"

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is an ordered, append-only message sequence. Operations return a
// new value instead of mutating in place, so intermediate streaming states stay
// auditable and trivially testable.
type Transcript []Message

// Append returns a new transcript with msg added at the end.
func (t Transcript) Append(msg Message) Transcript {
	out := make(Transcript, len(t), len(t)+1)
	copy(out, t)
	return append(out, msg)
}

// ReplaceLast returns a new transcript whose final message carries text in
// place of its previous content. Streaming accumulation replaces the trailing
// bot message on every chunk rather than appending new ones.
// Calling ReplaceLast on an empty transcript returns it unchanged.
func (t Transcript) ReplaceLast(text string) Transcript {
	if len(t) == 0 {
		return t
	}
	out := make(Transcript, len(t))
	copy(out, t)
	out[len(out)-1].Text = text
	return out
}

// Last returns the final message and true, or a zero message and false when
// the transcript is empty.
func (t Transcript) Last() (Message, bool) {
	if len(t) == 0 {
		return Message{}, false
	}
	return t[len(t)-1], true
}

// Len returns the number of messages.
func (t Transcript) Len() int {
	return len(t)
}

// IsEmpty reports whether the transcript holds no messages.
func (t Transcript) IsEmpty() bool {
	return len(t) == 0
}

// Clone returns a deep copy of the transcript.
func (t Transcript) Clone() Transcript {
	out := make(Transcript, len(t))
	copy(out, t)
	return out
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// MarshalTranscript serializes a transcript to JSON for persistence.
func MarshalTranscript(t Transcript) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// UnmarshalTranscript deserializes a persisted transcript. A decode failure is
// the caller's cue to fall back to a fresh conversation.
func UnmarshalTranscript(data []byte) (Transcript, error) {
	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return t, nil
}
