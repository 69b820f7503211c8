// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/sereno-tui/internal/view"
)

// =============================================================================
// FULL CYCLE
// =============================================================================

func TestFullTransitionCycle(t *testing.T) {
	m := New(view.Chat, 300*time.Millisecond)
	require.Equal(t, Idle, m.Phase())
	require.Equal(t, view.Chat, m.Displayed())

	eff, ok := m.Navigate(view.Journal)
	require.True(t, ok)
	require.Equal(t, EffectScheduleTimer, eff.Kind)
	require.Equal(t, 300*time.Millisecond, eff.Duration)
	require.Equal(t, Out, m.Phase())
	require.Equal(t, view.Chat, m.Displayed(), "old view stays up while sliding out")
	require.Equal(t, view.Journal, m.Target())
	require.Equal(t, view.Right, m.Direction())

	eff = m.TimerFired()
	require.Equal(t, EffectRequestFrame, eff.Kind)
	require.Equal(t, Entering, m.Phase())
	require.Equal(t, view.Journal, m.Displayed(), "content swaps at the out/entering boundary")

	eff = m.FrameFlushed()
	require.Equal(t, EffectScheduleTimer, eff.Kind)
	require.Equal(t, In, m.Phase())

	eff = m.TimerFired()
	require.Equal(t, EffectNone, eff.Kind)
	require.Equal(t, Idle, m.Phase())
	require.Equal(t, view.Journal, m.Displayed())
}

// =============================================================================
// NAVIGATE GUARDS
// =============================================================================

func TestNavigateRejectedWhileAnimating(t *testing.T) {
	m := New(view.Chat, DefaultPhaseDuration)

	_, ok := m.Navigate(view.Mood)
	require.True(t, ok)

	for _, target := range []view.View{view.Quiz, view.Article} {
		_, ok := m.Navigate(target)
		require.False(t, ok, "Navigate during animation must be ignored")
	}
	require.Equal(t, view.Mood, m.Target(), "target unchanged by rejected events")
}

func TestNavigateToSameViewIsNoOp(t *testing.T) {
	m := New(view.Quiz, DefaultPhaseDuration)
	eff, ok := m.Navigate(view.Quiz)
	require.False(t, ok)
	require.Equal(t, EffectNone, eff.Kind)
	require.Equal(t, Idle, m.Phase())
}

func TestNavigateInvalidView(t *testing.T) {
	m := New(view.Chat, DefaultPhaseDuration)
	_, ok := m.Navigate(view.View(42))
	require.False(t, ok)
}

// =============================================================================
// DIRECTION
// =============================================================================

func TestDirectionFollowsViewOrder(t *testing.T) {
	cases := []struct {
		from, to view.View
		want     view.Direction
	}{
		{view.Chat, view.Mood, view.Right},
		{view.Chat, view.Article, view.Right},
		{view.Article, view.Education, view.Left},
		{view.Mood, view.Chat, view.Left},
	}
	for _, tc := range cases {
		m := New(tc.from, DefaultPhaseDuration)
		_, ok := m.Navigate(tc.to)
		require.True(t, ok)
		require.Equal(t, tc.want, m.Direction(), "%s -> %s", tc.from, tc.to)
	}
}

// =============================================================================
// STALE EVENTS
// =============================================================================

func TestStaleTimerIgnored(t *testing.T) {
	m := New(view.Chat, DefaultPhaseDuration)
	require.Equal(t, EffectNone, m.TimerFired().Kind, "timer in idle does nothing")
	require.Equal(t, Idle, m.Phase())

	require.Equal(t, EffectNone, m.FrameFlushed().Kind, "flush in idle does nothing")

	_, ok := m.Navigate(view.Mood)
	require.True(t, ok)
	require.Equal(t, EffectNone, m.FrameFlushed().Kind, "flush during out does nothing")
	require.Equal(t, Out, m.Phase())
}

// =============================================================================
// PLACEMENT
// =============================================================================

func TestPlacementPerPhase(t *testing.T) {
	m := New(view.Chat, DefaultPhaseDuration)
	require.Equal(t, Placement{Offset: 0, Faded: false}, m.Place())

	// Sliding right: old view exits left, new view enters from the right.
	m.Navigate(view.Journal)
	require.Equal(t, Placement{Offset: -1, Faded: true}, m.Place())

	m.TimerFired()
	require.Equal(t, Placement{Offset: 1, Faded: true}, m.Place())

	m.FrameFlushed()
	require.Equal(t, Placement{Offset: 0, Faded: false}, m.Place())

	m.TimerFired()
	require.Equal(t, Placement{Offset: 0, Faded: false}, m.Place())
}

func TestPlacementSlidingLeft(t *testing.T) {
	m := New(view.Article, DefaultPhaseDuration)

	// Sliding left: old view exits right, new view enters from the left.
	m.Navigate(view.Chat)
	require.Equal(t, Placement{Offset: 1, Faded: true}, m.Place())

	m.TimerFired()
	require.Equal(t, Placement{Offset: -1, Faded: true}, m.Place())
}

func TestZeroDurationFallsBack(t *testing.T) {
	m := New(view.Chat, 0)
	eff, ok := m.Navigate(view.Mood)
	require.True(t, ok)
	require.Equal(t, DefaultPhaseDuration, eff.Duration)
}

func TestSetPhaseDuration(t *testing.T) {
	m := New(view.Chat, DefaultPhaseDuration)
	m.SetPhaseDuration(750 * time.Millisecond)

	eff, ok := m.Navigate(view.Mood)
	require.True(t, ok)
	require.Equal(t, 750*time.Millisecond, eff.Duration)

	m.SetPhaseDuration(0)
	m.TimerFired()
	m.FrameFlushed()
	m.TimerFired()
	eff, _ = m.Navigate(view.Chat)
	require.Equal(t, DefaultPhaseDuration, eff.Duration)
}
