// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package wellness persists journal entries and mood check-ins.
package wellness

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrInvalidMood = errors.New("mood score must be between 1 and 5")
	ErrEmptyEntry  = errors.New("journal entry is empty")
)

// =============================================================================
// ENTRY TYPE
// =============================================================================

// Kind distinguishes wellness log entries.
type Kind string

const (
	KindJournal Kind = "journal"
	KindMood    Kind = "mood"
)

// Entry is one row of the wellness log.
type Entry struct {
	ID        string
	Kind      Kind
	Body      string
	Mood      int // 1-5, mood entries only
	CreatedAt time.Time
}

// =============================================================================
// STORE
// =============================================================================

// Store is the SQLite-backed wellness log.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	body       TEXT NOT NULL,
	mood       INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_kind_created ON entries(kind, created_at);
`

// Open opens (and creates if necessary) the wellness log at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// OpenDefault opens the wellness log in the user's sereno home directory.
func OpenDefault() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return Open(filepath.Join(homeDir, ".sereno", "wellness.db"))
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// WRITE OPERATIONS
// =============================================================================

// AddJournal records a free-text journal entry.
func (s *Store) AddJournal(ctx context.Context, body string) (Entry, error) {
	if body == "" {
		return Entry{}, ErrEmptyEntry
	}
	e := Entry{
		ID:        uuid.New().String(),
		Kind:      KindJournal,
		Body:      body,
		CreatedAt: time.Now(),
	}
	return e, s.insert(ctx, e)
}

// AddMood records a 1-5 mood check-in with an optional note.
func (s *Store) AddMood(ctx context.Context, score int, note string) (Entry, error) {
	if score < 1 || score > 5 {
		return Entry{}, ErrInvalidMood
	}
	e := Entry{
		ID:        uuid.New().String(),
		Kind:      KindMood,
		Body:      note,
		Mood:      score,
		CreatedAt: time.Now(),
	}
	return e, s.insert(ctx, e)
}

func (s *Store) insert(ctx context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (id, kind, body, mood, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, string(e.Kind), e.Body, e.Mood, e.CreatedAt)
	return err
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// Recent returns the newest entries of the given kind, most recent first.
func (s *Store) Recent(ctx context.Context, kind Kind, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, body, mood, created_at FROM entries
		 WHERE kind = ? ORDER BY created_at DESC LIMIT ?`,
		string(kind), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var k string
		if err := rows.Scan(&e.ID, &k, &e.Body, &e.Mood, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Kind = Kind(k)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// MoodAverage returns the mean mood score over the trailing window, and the
// number of check-ins it covers. Zero check-ins yield (0, 0, nil).
func (s *Store) MoodAverage(ctx context.Context, window time.Duration) (float64, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	since := time.Now().Add(-window)
	row := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(mood), 0), COUNT(*) FROM entries
		 WHERE kind = ? AND created_at >= ?`,
		string(KindMood), since)

	var avg float64
	var count int
	if err := row.Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}
