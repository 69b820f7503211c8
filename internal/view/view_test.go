// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package view

import "testing"

func TestOrderAndValidity(t *testing.T) {
	if len(All) != 6 {
		t.Fatalf("expected 6 views, got %d", len(All))
	}
	for i, v := range All {
		if int(v) != i {
			t.Errorf("view %s out of order: index %d, value %d", v, i, int(v))
		}
		if !v.Valid() {
			t.Errorf("view %s should be valid", v)
		}
	}
	if View(99).Valid() {
		t.Error("out-of-range view should be invalid")
	}
}

func TestDirectionTo(t *testing.T) {
	cases := []struct {
		from, to View
		want     Direction
	}{
		{Chat, Article, Right},
		{Chat, Mood, Right},
		{Article, Chat, Left},
		{Quiz, Journal, Left},
		{Mood, Mood, Left}, // same view never navigates; direction is moot
	}
	for _, tc := range cases {
		if got := tc.from.DirectionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
