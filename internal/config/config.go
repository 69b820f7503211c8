// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for sereno.
//
// Configuration file locations (in order of precedence):
//   - $SERENO_HOME/config.toml (or ~/.sereno/config.toml)
//   - Built-in defaults
//
// Environment variable overrides are applied last.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete sereno configuration.
type Config struct {
	// General settings
	Version string `toml:"version"`

	// Locale is a BCP 47 tag selecting the greeting language ("en", "es").
	// Empty means follow LANG/LC_ALL.
	Locale string `toml:"locale"`

	// Assist (companion service) configuration
	Assist AssistConfig `toml:"assist"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// AssistConfig contains companion service configuration.
type AssistConfig struct {
	// URL is the base URL of the companion service
	URL string `toml:"url"`
	// Model is the companion model to converse with
	Model string `toml:"model"`
	// TimeoutSecs is the per-request timeout in seconds
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
	// SoundCues enables the attention cue when a reply arrives off-screen
	SoundCues bool `toml:"sound_cues"`
	// TransitionMillis is the duration of a view slide phase in milliseconds
	TransitionMillis int `toml:"transition_millis"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Locale:  "",

		Assist: AssistConfig{
			URL:         "http://127.0.0.1:11434",
			Model:       "sereno-companion",
			TimeoutSecs: 30,
		},

		UI: UIConfig{
			Theme:            "dark",
			SoundCues:        true,
			TransitionMillis: 300,
		},
	}
}

// TransitionDuration returns one slide phase as a time.Duration.
func (c *Config) TransitionDuration() time.Duration {
	ms := c.UI.TransitionMillis
	if ms <= 0 {
		ms = 300
	}
	return time.Duration(ms) * time.Millisecond
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the sereno configuration directory path. SERENO_HOME
// overrides the default ~/.sereno.
func ConfigDir() (string, error) {
	if dir := os.Getenv("SERENO_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".sereno"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Used by tests and the --config flag.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the default TOML file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# sereno configuration file")
	fmt.Fprintln(file, "# Generated by sereno - edit with care")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Assist.URL != "" {
		if _, err := url.Parse(c.Assist.URL); err != nil {
			errs = append(errs, ValidationError{
				Field:   "assist.url",
				Message: fmt.Sprintf("invalid URL: %v", err),
			})
		}
	}

	if c.Assist.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "assist.timeout_secs",
			Message: "must be non-negative",
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if c.UI.TransitionMillis < 0 || c.UI.TransitionMillis > 5000 {
		errs = append(errs, ValidationError{
			Field:   "ui.transition_millis",
			Message: fmt.Sprintf("must be 0-5000, got %d", c.UI.TransitionMillis),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Assist.URL == "" {
		c.Assist.URL = defaults.Assist.URL
	}
	if c.Assist.Model == "" {
		c.Assist.Model = defaults.Assist.Model
	}
	if c.Assist.TimeoutSecs == 0 {
		c.Assist.TimeoutSecs = defaults.Assist.TimeoutSecs
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.TransitionMillis == 0 {
		c.UI.TransitionMillis = defaults.UI.TransitionMillis
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - SERENO_ASSIST_URL: overrides assist.url
//   - SERENO_MODEL: overrides assist.model
//   - SERENO_LOCALE: overrides locale
//   - SERENO_THEME: overrides ui.theme
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv("SERENO_ASSIST_URL"); u != "" {
		c.Assist.URL = u
	}
	if model := os.Getenv("SERENO_MODEL"); model != "" {
		c.Assist.Model = model
	}
	if locale := os.Getenv("SERENO_LOCALE"); locale != "" {
		c.Locale = locale
	}
	if theme := os.Getenv("SERENO_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		defer globalConfigMu.Unlock()
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
// Consumes the first-access load so a config installed before the first
// Global() call is not overwritten by it.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
