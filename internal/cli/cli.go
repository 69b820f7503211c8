// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the command-line surface outside the TUI.
package cli

import (
	"fmt"
	"os"
)

// Version information (set at build time by main).
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMAND ROUTING
// =============================================================================

// Command identifies a top-level CLI command.
type Command int

const (
	// CmdTUI launches the full-screen interface (the default).
	CmdTUI Command = iota
	// CmdAsk runs the terminal REPL without the TUI.
	CmdAsk
	// CmdVersion prints version information.
	CmdVersion
	// CmdHelp prints usage.
	CmdHelp
)

// Parse maps os.Args onto a command and its remaining arguments.
func Parse() (Command, []string) {
	if len(os.Args) < 2 {
		return CmdTUI, nil
	}

	switch os.Args[1] {
	case "ask":
		return CmdAsk, os.Args[2:]
	case "version", "--version", "-v":
		return CmdVersion, nil
	case "help", "--help", "-h":
		return CmdHelp, nil
	default:
		return CmdTUI, os.Args[1:]
	}
}

// HandleVersion prints the build information.
func HandleVersion() {
	fmt.Printf("sereno %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(`sereno - a terminal wellness companion

Usage:
  sereno              Launch the full-screen interface
  sereno ask          Chat in a plain terminal REPL
  sereno version      Print version information
  sereno help         Show this help

Environment:
  SERENO_HOME         Config and data directory (default ~/.sereno)
  SERENO_ASSIST_URL   Companion service URL
  SERENO_MODEL        Companion model name
  SERENO_LOCALE       Greeting language (en, es)
`)
}
