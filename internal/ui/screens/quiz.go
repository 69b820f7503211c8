// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/sereno-tui/internal/ui/styles"
)

// =============================================================================
// SELF-CHECK QUIZ
// =============================================================================

// quizQuestion is one item of the self-check. Answers score 0-3
// (not at all / several days / more than half / nearly every day).
type quizQuestion struct {
	Prompt string
}

var quizQuestions = []quizQuestion{
	{Prompt: "Feeling nervous, anxious, or on edge?"},
	{Prompt: "Not being able to stop or control worrying?"},
	{Prompt: "Having trouble relaxing?"},
	{Prompt: "Feeling down or hopeless?"},
	{Prompt: "Trouble falling or staying asleep?"},
}

var quizAnswers = []string{
	"Not at all",
	"Several days",
	"More than half the days",
	"Nearly every day",
}

// Quiz is the static self-check: answer each question, see a gentle summary.
// Nothing is persisted; the quiz is a conversation starter, not a diagnosis.
type Quiz struct {
	current int
	cursor  int
	answers []int
	done    bool
}

// NewQuiz creates a fresh self-check.
func NewQuiz() *Quiz {
	return &Quiz{answers: make([]int, 0, len(quizQuestions))}
}

// Init is a no-op; the quiz has nothing to load.
func (q *Quiz) Init() tea.Cmd { return nil }

// Update walks through the questions.
func (q *Quiz) Update(msg tea.Msg) (Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}

	if q.done {
		if key.String() == "r" {
			*q = Quiz{answers: make([]int, 0, len(quizQuestions))}
		}
		return q, nil
	}

	switch key.String() {
	case "up", "k":
		if q.cursor > 0 {
			q.cursor--
		}
	case "down", "j":
		if q.cursor < len(quizAnswers)-1 {
			q.cursor++
		}
	case "enter":
		q.answers = append(q.answers, q.cursor)
		q.cursor = 0
		q.current++
		if q.current >= len(quizQuestions) {
			q.done = true
		}
	}
	return q, nil
}

// score sums the recorded answers.
func (q *Quiz) score() int {
	total := 0
	for _, a := range q.answers {
		total += a
	}
	return total
}

// summary maps the score to a gentle reading.
func (q *Quiz) summary() string {
	max := len(quizQuestions) * (len(quizAnswers) - 1)
	s := q.score()
	switch {
	case s <= max/4:
		return "You seem to be carrying a light load this week. Keep doing what works."
	case s <= max/2:
		return "Some strain is showing. A chat or a journal entry might help you unpack it."
	default:
		return "That sounds like a heavy stretch. Consider talking it through - here, or with someone you trust."
	}
}

// View renders the current question or the summary.
func (q *Quiz) View(width, height int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Self-Check"))
	b.WriteString("\n")

	if q.done {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("Score: %d of %d", q.score(), len(quizQuestions)*3)))
		b.WriteString("\n\n")
		b.WriteString(q.summary())
		b.WriteString("\n\n" + styles.Hint.Render("r to retake"))
		return b.String()
	}

	b.WriteString(styles.Subtitle.Render(
		fmt.Sprintf("Over the last two weeks... (%d/%d)", q.current+1, len(quizQuestions))))
	b.WriteString("\n\n")
	b.WriteString(quizQuestions[q.current].Prompt)
	b.WriteString("\n\n")

	for i, answer := range quizAnswers {
		if i == q.cursor {
			b.WriteString(styles.SidebarActive.Render("> " + answer))
		} else {
			b.WriteString(styles.SidebarItem.Render("  " + answer))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + styles.Hint.Render("up/down to choose, enter to answer"))
	return b.String()
}
