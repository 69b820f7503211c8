// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/sereno-tui/internal/assist"
	"github.com/jeranaias/sereno-tui/internal/config"
	"github.com/jeranaias/sereno-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Lavender).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// askCLI wraps liner with persistent input history.
// USABILITY: Supports arrow keys for history navigation and line editing.
type askCLI struct {
	line        *liner.State
	historyFile string
}

func newAskCLI() *askCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	c := &askCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "ask_history"),
	}
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
	return c
}

func (c *askCLI) readInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

func (c *askCLI) close() {
	if err := config.EnsureConfigDir(); err == nil {
		if f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			c.line.WriteHistory(f)
			f.Close()
		}
	}
	c.line.Close()
}

// =============================================================================
// ASK REPL
// =============================================================================

// HandleAsk runs the plain-terminal chat REPL: no TUI, just prompts and
// streamed replies on stdout. Useful over SSH and in minimal terminals.
func HandleAsk(args []string) {
	cfg := config.Global()

	client := assist.NewClientWithConfig(&assist.ClientConfig{
		BaseURL: cfg.Assist.URL,
		Model:   cfg.Assist.Model,
		Timeout: time.Duration(cfg.Assist.TimeoutSecs) * time.Second,
	})

	ctx := context.Background()
	if err := client.CheckReachable(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styles.RenderError("The companion service is not reachable."))
		fmt.Fprintln(os.Stderr, styled(infoStyle, "Check "+cfg.Assist.URL+" and try again."))
		os.Exit(1)
	}

	sess := client.OpenSession(nil)

	// A one-shot question can ride the command line: sereno ask "..."
	// Piped stdin works the same way: echo "..." | sereno ask
	if len(args) > 0 || !IsTTY() {
		question := strings.Join(args, " ")
		if question == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))
				os.Exit(1)
			}
			question = strings.TrimSpace(string(data))
		}
		if question == "" {
			return
		}
		if err := streamReply(ctx, sess, question); err != nil {
			fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))
			os.Exit(1)
		}
		return
	}

	fmt.Println(styled(welcomeStyle, "sereno") + styled(infoStyle, "  (exit or ctrl+d to leave)"))
	fmt.Println()

	repl := newAskCLI()
	defer repl.close()

	for {
		input, err := repl.readInput(styled(promptStyle, "you> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			// io.EOF on ctrl+d
			fmt.Println()
			return
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "exit", "quit":
			fmt.Println(styled(infoStyle, "Take care."))
			return
		}

		if err := streamReply(ctx, sess, input); err != nil {
			fmt.Fprintln(os.Stderr, styles.RenderError("That one didn't go through. Try again?"))
		}
	}
}

// streamReply sends one prompt and prints chunks as they arrive.
func streamReply(ctx context.Context, sess *assist.Session, prompt string) error {
	fmt.Print(styled(promptStyle, "sereno> "))
	_, err := sess.Send(ctx, prompt, func(chunk assist.Chunk) {
		fmt.Print(chunk.Content)
	})
	fmt.Println()
	return err
}
