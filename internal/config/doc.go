// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and manages sereno's TOML configuration.
//
// The config lives at ~/.sereno/config.toml (SERENO_HOME overrides the
// directory). Missing files are fine: defaults apply, then environment
// variables override individual fields. Access the loaded config through
// Global(); Watch keeps it fresh when the file changes on disk.
package config
