// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history provides local persistence for the chat transcript.
package history

import (
	"os"
	"path/filepath"

	"github.com/jeranaias/sereno-tui/internal/model"
	"github.com/jeranaias/sereno-tui/internal/util"
)

// FileName is the transcript document inside the sereno home directory.
const FileName = "history.json"

// =============================================================================
// STORE
// =============================================================================

// Store persists the chat transcript as a single JSON document. The store is
// a passive mirror: the coordinator writes it only after the message sequence
// settles (no stream in flight), reads it once at bootstrap, and deletes it
// when the user starts over.
type Store struct {
	// Path is the full path of the transcript document.
	// Default: ~/.sereno/history.json
	Path string
}

// NewStore creates a store rooted in the user's sereno home directory.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStoreWithPath(filepath.Join(homeDir, ".sereno", FileName)), nil
}

// NewStoreWithPath creates a store at a custom location. Used by tests.
func NewStoreWithPath(path string) *Store {
	return &Store{Path: path}
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Save writes the transcript to disk.
// RELIABILITY: Atomic write with fsync prevents data loss on crash.
func (s *Store) Save(t model.Transcript) error {
	data, err := model.MarshalTranscript(t)
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.Path, data, 0644)
}

// Load reads the persisted transcript. A missing file yields ErrNoHistory;
// a decode failure is returned as-is so callers can fall back to a fresh
// conversation.
func (s *Store) Load() (model.Transcript, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoHistory
		}
		return nil, err
	}
	return model.UnmarshalTranscript(data)
}

// Clear removes the persisted transcript. Clearing an already-empty store is
// not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists reports whether a transcript document is on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrNoHistory is returned when no transcript has been persisted.
// Use errors.Is(err, ErrNoHistory) to check for this error.
var ErrNoHistory = &StoreError{Message: "no saved history"}

// StoreError represents a history persistence error.
type StoreError struct {
	Message string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing store errors.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
