// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transition implements the slide animation between views as a pure
// state machine.
package transition

import (
	"time"

	"github.com/jeranaias/sereno-tui/internal/view"
)

// DefaultPhaseDuration is how long each slide phase lasts.
const DefaultPhaseDuration = 300 * time.Millisecond

// =============================================================================
// STATES, EVENTS, EFFECTS
// =============================================================================

// Phase is one state of the slide machine.
type Phase int

const (
	// Idle: no animation, the displayed view sits centered.
	Idle Phase = iota
	// Out: the old view is sliding off-screen.
	Out
	// Entering: the new view has been placed off-screen on the far side and
	// waits for one frame flush before sliding in.
	Entering
	// In: the new view is sliding to center.
	In
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Out:
		return "out"
	case Entering:
		return "entering"
	case In:
		return "in"
	default:
		return "unknown"
	}
}

// EffectKind tells the driver what to do after a step.
type EffectKind int

const (
	// EffectNone requires nothing from the driver.
	EffectNone EffectKind = iota
	// EffectScheduleTimer asks the driver to fire TimerFired after Duration.
	EffectScheduleTimer
	// EffectRequestFrame asks the driver to deliver FrameFlushed once the
	// next frame has rendered.
	EffectRequestFrame
)

// Effect is the side effect a step requests.
type Effect struct {
	Kind     EffectKind
	Duration time.Duration
}

// =============================================================================
// MACHINE
// =============================================================================

// Machine is the slide state machine. It is pure: every input returns the
// effect the driver must perform, and the machine itself never touches
// timers or the renderer. The zero value is not usable; call New.
type Machine struct {
	phase     Phase
	displayed view.View
	target    view.View
	direction view.Direction
	duration  time.Duration
}

// New creates a machine showing the initial view, idle.
func New(initial view.View, phaseDuration time.Duration) *Machine {
	if phaseDuration <= 0 {
		phaseDuration = DefaultPhaseDuration
	}
	return &Machine{
		phase:     Idle,
		displayed: initial,
		target:    initial,
		duration:  phaseDuration,
	}
}

// Phase returns the current animation phase.
func (m *Machine) Phase() Phase { return m.phase }

// Displayed returns the view currently on screen. During Out this is still
// the old view; from Entering onward it is the target.
func (m *Machine) Displayed() view.View { return m.displayed }

// Target returns the view the machine is heading to. Equal to Displayed
// when idle.
func (m *Machine) Target() view.View { return m.target }

// Direction returns the slide direction of the in-flight transition.
func (m *Machine) Direction() view.Direction { return m.direction }

// Animating reports whether a transition is in flight.
func (m *Machine) Animating() bool { return m.phase != Idle }

// SetPhaseDuration changes the timer length for future transitions. An
// in-flight transition keeps the duration it started with.
func (m *Machine) SetPhaseDuration(d time.Duration) {
	if d <= 0 {
		d = DefaultPhaseDuration
	}
	m.duration = d
}

// =============================================================================
// EVENTS
// =============================================================================

// Navigate requests a slide to target. Accepted only when idle; navigation
// to the view already on screen, to an invalid view, or while animating is
// a no-op. Returns the effect and whether the event was accepted.
func (m *Machine) Navigate(target view.View) (Effect, bool) {
	if m.phase != Idle || !target.Valid() || target == m.displayed {
		return Effect{Kind: EffectNone}, false
	}

	m.direction = m.displayed.DirectionTo(target)
	m.target = target
	m.phase = Out
	return Effect{Kind: EffectScheduleTimer, Duration: m.duration}, true
}

// TimerFired advances past a timed phase. Out swaps the displayed view to
// the target and asks for a frame flush so the new view paints off-screen
// before it starts moving; In settles back to idle.
func (m *Machine) TimerFired() Effect {
	switch m.phase {
	case Out:
		m.displayed = m.target
		m.phase = Entering
		return Effect{Kind: EffectRequestFrame}
	case In:
		m.phase = Idle
		return Effect{Kind: EffectNone}
	default:
		// Stale timer from a phase that already advanced.
		return Effect{Kind: EffectNone}
	}
}

// FrameFlushed confirms the off-screen placement painted; the slide-in
// phase begins.
func (m *Machine) FrameFlushed() Effect {
	if m.phase != Entering {
		return Effect{Kind: EffectNone}
	}
	m.phase = In
	return Effect{Kind: EffectScheduleTimer, Duration: m.duration}
}

// =============================================================================
// PLACEMENT
// =============================================================================

// Placement describes how the displayed view should render this frame.
type Placement struct {
	// Offset is the fraction of the screen width the view sits from center:
	// -1 fully off-screen left, +1 fully off-screen right, 0 centered.
	Offset float64
	// Faded is true while the view is off center.
	Faded bool
}

// Place returns the current placement of the displayed view.
//
// Entering holds the new view off-screen on the side it arrives from: the
// "from" side is right when sliding right, left otherwise. Out pushes the
// old view off the opposite side.
func (m *Machine) Place() Placement {
	switch m.phase {
	case Out:
		if m.direction == view.Right {
			return Placement{Offset: -1, Faded: true}
		}
		return Placement{Offset: 1, Faded: true}
	case Entering:
		if m.direction == view.Right {
			return Placement{Offset: 1, Faded: true}
		}
		return Placement{Offset: -1, Faded: true}
	default: // In slides toward center; Idle sits there
		return Placement{Offset: 0, Faded: false}
	}
}
