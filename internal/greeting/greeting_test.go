// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package greeting

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func at(hour int) time.Time {
	return time.Date(2025, 6, 15, hour, 30, 0, 0, time.Local)
}

// =============================================================================
// BUCKET TESTS
// =============================================================================

func TestBucketFor(t *testing.T) {
	tests := []struct {
		hour     int
		expected Bucket
	}{
		{0, Night},
		{4, Night},
		{5, Morning},
		{11, Morning},
		{12, Afternoon},
		{17, Afternoon},
		{18, Evening},
		{21, Evening},
		{22, Night},
		{23, Night},
	}

	for _, tt := range tests {
		if got := BucketFor(at(tt.hour)); got != tt.expected {
			t.Errorf("BucketFor(hour=%d) = %v, want %v", tt.hour, got, tt.expected)
		}
	}
}

// =============================================================================
// GREETING TESTS
// =============================================================================

func TestGreetVariesOnlyByBucketAndName(t *testing.T) {
	// Same bucket, same name: identical text regardless of minute.
	a := Greet(language.English, at(9), "Ana")
	b := Greet(language.English, time.Date(2025, 6, 15, 10, 5, 0, 0, time.Local), "Ana")
	if a != b {
		t.Errorf("same bucket should yield identical greeting: %q vs %q", a, b)
	}

	// Different bucket: different text.
	if Greet(language.English, at(9), "Ana") == Greet(language.English, at(20), "Ana") {
		t.Error("morning and evening greetings should differ")
	}

	// Name is interpolated.
	if !strings.Contains(Greet(language.English, at(9), "Ana"), "Ana") {
		t.Error("greeting should contain the user's name")
	}
}

func TestGreetLocalized(t *testing.T) {
	es := Greet(language.Spanish, at(9), "Ana")
	if !strings.Contains(es, "Buenos días") {
		t.Errorf("expected Spanish morning greeting, got %q", es)
	}
}

func TestMatchLocale(t *testing.T) {
	tests := []struct {
		locale   string
		expected language.Tag
	}{
		{"", language.English},
		{"en-US", language.English},
		{"es", language.Spanish},
		{"es-MX", language.Spanish},
		{"fr", language.English}, // unsupported falls back
		{"not a locale", language.English},
	}

	for _, tt := range tests {
		if got := MatchLocale(tt.locale); got != tt.expected {
			t.Errorf("MatchLocale(%q) = %v, want %v", tt.locale, got, tt.expected)
		}
	}
}
