// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/sereno-tui/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreWithPath(filepath.Join(t.TempDir(), FileName))
}

// =============================================================================
// STORE TESTS
// =============================================================================

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := testStore(t)

	tr := model.Transcript{
		model.NewBotMessage("Good morning, Ana. How are you feeling today?"),
		model.NewUserMessage("tired but okay"),
	}
	require.NoError(t, s.Save(tr))

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, tr.Len(), got.Len())
	for i := range tr {
		require.Equal(t, tr[i].Role, got[i].Role)
		require.Equal(t, tr[i].Text, got[i].Text)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := testStore(t)

	_, err := s.Load()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoHistory), "missing file should yield ErrNoHistory")
}

func TestLoadCorruptFile(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path), 0755))
	require.NoError(t, os.WriteFile(s.Path, []byte("{{nope"), 0644))

	_, err := s.Load()
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNoHistory), "corrupt file is not the same as missing")
}

func TestClear(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(model.Transcript{model.NewUserMessage("hi")}))
	require.True(t, s.Exists())

	require.NoError(t, s.Clear())
	require.False(t, s.Exists())

	// Clearing twice is fine.
	require.NoError(t, s.Clear())
}
