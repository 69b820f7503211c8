// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "http://127.0.0.1:11434", cfg.Assist.URL)
	require.Equal(t, 300*time.Millisecond, cfg.TransitionDuration())
}

func TestTransitionDurationFloor(t *testing.T) {
	cfg := &Config{}
	require.Equal(t, 300*time.Millisecond, cfg.TransitionDuration())
}

// =============================================================================
// LOADING
// =============================================================================

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
locale = "es"

[assist]
model = "calm-7b"

[ui]
theme = "light"
transition_millis = 150
`), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "es", cfg.Locale)
	require.Equal(t, "calm-7b", cfg.Assist.Model)
	require.Equal(t, "light", cfg.UI.Theme)
	require.Equal(t, 150*time.Millisecond, cfg.TransitionDuration())
	// Missing fields fall back to defaults.
	require.Equal(t, "http://127.0.0.1:11434", cfg.Assist.URL)
}

func TestLoadFromPathInvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
theme = "neon"
`), 0600))

	_, err := LoadFromPath(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ui.theme")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("SERENO_HOME", t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default().Assist.Model, cfg.Assist.Model)
}

// =============================================================================
// ENV OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SERENO_ASSIST_URL", "http://assist.internal:8080")
	t.Setenv("SERENO_MODEL", "env-model")
	t.Setenv("SERENO_LOCALE", "es")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	require.Equal(t, "http://assist.internal:8080", cfg.Assist.URL)
	require.Equal(t, "env-model", cfg.Assist.Model)
	require.Equal(t, "es", cfg.Locale)
}

// =============================================================================
// SAVE / ROUND-TRIP
// =============================================================================

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("SERENO_HOME", t.TempDir())

	cfg := Default()
	cfg.Locale = "es"
	cfg.UI.SoundCues = false
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, "es", got.Locale)
	require.False(t, got.UI.SoundCues)
}

// =============================================================================
// GLOBAL
// =============================================================================

func TestGlobalSetAndReset(t *testing.T) {
	t.Setenv("SERENO_HOME", t.TempDir())
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	// A config pinned before the first Global() call must survive it.
	custom := Default()
	custom.Assist.Model = "pinned"
	SetGlobal(custom)
	require.Equal(t, "pinned", Global().Assist.Model)

	ResetGlobalForTesting()
	require.Equal(t, Default().Assist.Model, Global().Assist.Model)
}
