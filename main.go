// sereno - a terminal wellness companion.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/sereno-tui/internal/assist"
	"github.com/jeranaias/sereno-tui/internal/cli"
	"github.com/jeranaias/sereno-tui/internal/config"
	"github.com/jeranaias/sereno-tui/internal/greeting"
	"github.com/jeranaias/sereno-tui/internal/history"
	"github.com/jeranaias/sereno-tui/internal/notify"
	"github.com/jeranaias/sereno-tui/internal/session"
	"github.com/jeranaias/sereno-tui/internal/ui/shell"
	"github.com/jeranaias/sereno-tui/internal/wellness"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		runTUI()
	}
}

// setupLogging sends the standard logger to ~/.sereno/sereno.log so log
// output never tears the alternate screen.
func setupLogging() func() {
	dir, err := config.ConfigDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "sereno.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return func() { f.Close() }
}

func runTUI() {
	closeLog := setupLogging()
	defer closeLog()

	cfg := config.Global()

	client := assist.NewClientWithConfig(&assist.ClientConfig{
		BaseURL: cfg.Assist.URL,
		Model:   cfg.Assist.Model,
		Timeout: time.Duration(cfg.Assist.TimeoutSecs) * time.Second,
	})

	store, err := history.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not locate home directory: %v\n", err)
		os.Exit(1)
	}

	wellnessLog, err := wellness.OpenDefault()
	if err != nil {
		// The mood and journal screens degrade without it.
		log.Printf("wellness log unavailable: %v", err)
		wellnessLog = nil
	} else {
		defer wellnessLog.Close()
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.UI.SoundCues {
		notifier = notify.NewBell()
	}

	locale := cfg.Locale
	if locale == "" {
		locale = os.Getenv("LC_ALL")
		if locale == "" {
			locale = os.Getenv("LANG")
		}
	}

	coord := session.New(client, store, notifier, greeting.MatchLocale(locale))

	program := tea.NewProgram(
		shell.New(coord, cfg, wellnessLog),
		tea.WithAltScreen(),
	)

	// Config edits on disk flow into the running UI.
	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	go func() {
		err := config.Watch(watchCtx, func(fresh *config.Config) {
			program.Send(shell.ConfigReloadedMsg{Config: fresh})
		})
		if err != nil && watchCtx.Err() == nil {
			log.Printf("config watcher stopped: %v", err)
		}
	}()

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "sereno failed: %v\n", err)
		os.Exit(1)
	}
}
