// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package view defines the application's views and their fixed order.
package view

// View identifies one of the application's screens. The numeric order is
// load-bearing: slide direction compares indices, and the sidebar lists
// views in this order.
type View int

const (
	Chat View = iota
	Mood
	Journal
	Quiz
	Education
	Article
)

// All lists every view in display order.
var All = []View{Chat, Mood, Journal, Quiz, Education, Article}

// String returns the view's display label.
func (v View) String() string {
	switch v {
	case Chat:
		return "Chat"
	case Mood:
		return "Mood"
	case Journal:
		return "Journal"
	case Quiz:
		return "Self-Check"
	case Education:
		return "Learn"
	case Article:
		return "Featured"
	default:
		return "Unknown"
	}
}

// Valid reports whether v names a real view.
func (v View) Valid() bool {
	return v >= Chat && v <= Article
}

// Direction is the side a slide moves toward.
type Direction int

const (
	Left Direction = iota
	Right
)

// DirectionTo returns the slide direction for navigating from v to target:
// right when the target sits later in the fixed order, left otherwise.
func (v View) DirectionTo(target View) Direction {
	if target > v {
		return Right
	}
	return Left
}
