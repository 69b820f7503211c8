// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell provides the root Bubble Tea model: the login gate, the
// sidebar, the displayed screen, and the notification overlay.
//
// The shell is the transition machine's driver. The machine decides what
// should happen (schedule a timer, request a frame); the shell turns those
// effects into tea.Tick commands and synthetic frame-flush messages and
// feeds the resulting events back in. Keyboard input never reaches a screen
// mid-slide.
package shell
