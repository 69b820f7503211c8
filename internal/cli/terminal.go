// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY reports whether stdin is a terminal. The ask REPL needs one;
// piped input gets a single-question read instead.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY reports whether stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// TERMINAL WIDTH
// =============================================================================

const defaultTerminalWidth = 80

// TerminalWidth returns the stdout width, falling back to 80 columns when
// it cannot be determined (pipes, CI).
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR CONTROL
// =============================================================================

var (
	colorOnce    sync.Once
	colorEnabled bool
)

// ColorEnabled reports whether styled output should be emitted: stdout must
// be a terminal, NO_COLOR must be unset, and the terminal must support at
// least ANSI colors.
func ColorEnabled() bool {
	colorOnce.Do(func() {
		if !IsStdoutTTY() || termenv.EnvNoColor() {
			colorEnabled = false
			return
		}
		colorEnabled = termenv.ColorProfile() != termenv.Ascii
	})
	return colorEnabled
}

// styled renders s through style only when color output is enabled.
func styled(style interface{ Render(...string) string }, s string) string {
	if !ColorEnabled() {
		return s
	}
	return style.Render(s)
}
