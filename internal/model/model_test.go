// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// TRANSCRIPT TESTS
// =============================================================================

func TestTranscriptAppendDoesNotMutate(t *testing.T) {
	orig := Transcript{NewUserMessage("hi")}
	grown := orig.Append(NewBotMessage("hello"))

	require.Equal(t, 1, orig.Len(), "original transcript must be unchanged")
	require.Equal(t, 2, grown.Len())
	last, ok := grown.Last()
	require.True(t, ok)
	require.Equal(t, RoleBot, last.Role)
}

func TestTranscriptReplaceLast(t *testing.T) {
	tr := Transcript{NewUserMessage("hi"), NewBotMessage("Hel")}
	replaced := tr.ReplaceLast("Hello world")

	// Original keeps the partial text; the new value carries the full text.
	require.Equal(t, "Hel", tr[1].Text)
	require.Equal(t, "Hello world", replaced[1].Text)
	require.Equal(t, tr.Len(), replaced.Len())
}

func TestTranscriptReplaceLastEmpty(t *testing.T) {
	var tr Transcript
	require.Equal(t, 0, tr.ReplaceLast("anything").Len())
}

func TestTranscriptRoundTrip(t *testing.T) {
	tr := Transcript{
		NewBotMessage("Good morning, Ana. How are you feeling today?"),
		NewUserMessage("a bit anxious"),
		NewBotMessage("That's understandable."),
	}

	data, err := MarshalTranscript(tr)
	require.NoError(t, err)

	got, err := UnmarshalTranscript(data)
	require.NoError(t, err)
	require.Equal(t, tr.Len(), got.Len())
	for i := range tr {
		require.Equal(t, tr[i].Role, got[i].Role)
		require.Equal(t, tr[i].Text, got[i].Text)
	}
}

func TestUnmarshalTranscriptCorrupt(t *testing.T) {
	_, err := UnmarshalTranscript([]byte("{not json"))
	require.Error(t, err)
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestMessagePreview(t *testing.T) {
	msg := NewBotMessage("The quick brown fox jumps over the lazy dog")
	if got := msg.Preview(12); got != "The quick..." {
		t.Errorf("Preview = %q, want %q", got, "The quick...")
	}
	if got := msg.Preview(100); got != msg.Text {
		t.Errorf("short message should be unchanged, got %q", got)
	}
}

func TestMessageIsEmpty(t *testing.T) {
	if !NewUserMessage("   ").IsEmpty() {
		t.Error("whitespace-only message should be empty")
	}
	if NewUserMessage("hi").IsEmpty() {
		t.Error("non-blank message should not be empty")
	}
}
