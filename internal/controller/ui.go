// Package controller provides output adapters for displaying puzzle answers.
package controller

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

// UI defines how the workflow reports to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayAnswers(ctx context.Context, answers []m.Answer) error
	DisplayPuzzles(ctx context.Context, puzzles []m.PuzzleInfo) error
	DisplayMismatch(ctx context.Context, diff string)
}

// NewUI returns a TUI when writing to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const (
	headerPuzzle      = "Puzzle"
	headerInput       = "Input"
	headerPart        = "Part"
	headerAnswer      = "Answer"
	headerElapsed     = "Elapsed"
	headerDescription = "Description"
)

var answerHeaders = []string{headerPuzzle, headerInput, headerPart, headerAnswer, headerElapsed}

var puzzleHeaders = []string{headerPuzzle, headerDescription}

func answerRow(a m.Answer) []string {
	return []string{
		string(a.Puzzle),
		string(a.Input),
		a.Part.String(),
		formatValue(a.Value),
		a.Elapsed.Round(time.Microsecond).String(),
	}
}

func puzzleRow(p m.PuzzleInfo) []string {
	return []string{string(p.Puzzle), p.Description}
}
