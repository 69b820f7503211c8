// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package screens implements the non-chat views: the mood check-in, the
// journal, the self-check quiz, and the two reading screens. Each is a
// small Bubble Tea sub-model behind the Screen interface; the shell decides
// which one is displayed and forwards input only to it.
package screens
