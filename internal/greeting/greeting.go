// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package greeting maps the local time of day to a localized greeting used to
// seed new conversations.
package greeting

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// =============================================================================
// TIME-OF-DAY BUCKETS
// =============================================================================

// Bucket is a coarse time-of-day classification.
type Bucket int

const (
	Morning Bucket = iota
	Afternoon
	Evening
	Night
)

// String returns the bucket name.
func (b Bucket) String() string {
	switch b {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	default:
		return "night"
	}
}

// BucketFor classifies a wall-clock time.
// Boundaries: morning 05:00-11:59, afternoon 12:00-17:59, evening 18:00-21:59.
func BucketFor(t time.Time) Bucket {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return Morning
	case h >= 12 && h < 18:
		return Afternoon
	case h >= 18 && h < 22:
		return Evening
	default:
		return Night
	}
}

// =============================================================================
// LOCALIZED GREETINGS
// =============================================================================

const (
	keyMorning   = "greeting.morning"
	keyAfternoon = "greeting.afternoon"
	keyEvening   = "greeting.evening"
	keyNight     = "greeting.night"
)

// supported lists the locales with a built-in greeting catalog. English is
// first so it wins as the fallback.
var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var messages = buildCatalog()

var matcher = language.NewMatcher(supported)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	b.SetString(language.English, keyMorning, "Good morning, %s. How are you feeling today?")
	b.SetString(language.English, keyAfternoon, "Good afternoon, %s. How are you feeling today?")
	b.SetString(language.English, keyEvening, "Good evening, %s. How has your day been?")
	b.SetString(language.English, keyNight, "Hello, %s. It's late. How are you holding up?")

	b.SetString(language.Spanish, keyMorning, "Buenos días, %s. ¿Cómo te sientes hoy?")
	b.SetString(language.Spanish, keyAfternoon, "Buenas tardes, %s. ¿Cómo te sientes hoy?")
	b.SetString(language.Spanish, keyEvening, "Buenas noches, %s. ¿Qué tal estuvo tu día?")
	b.SetString(language.Spanish, keyNight, "Hola, %s. Ya es tarde, ¿cómo estás?")

	return b
}

// MatchLocale resolves a BCP 47 locale string (for example "es-MX" or the
// value of LANG) to the best supported tag. Unknown or empty input falls back
// to English.
func MatchLocale(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, index, _ := matcher.Match(tag)
	return supported[index]
}

// Greet returns the greeting for the given time and name in the given locale.
// The text varies only by time-of-day bucket and name.
func Greet(tag language.Tag, t time.Time, name string) string {
	p := message.NewPrinter(tag, message.Catalog(messages))

	switch BucketFor(t) {
	case Morning:
		return p.Sprintf(keyMorning, name)
	case Afternoon:
		return p.Sprintf(keyAfternoon, name)
	case Evening:
		return p.Sprintf(keyEvening, name)
	default:
		return p.Sprintf(keyNight, name)
	}
}
