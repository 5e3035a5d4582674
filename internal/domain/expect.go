package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

type answerKey struct {
	puzzle m.Puzzle
	input  m.Path
	part   m.Part
}

func keyOf(a m.Answer) answerKey {
	return answerKey{puzzle: a.Puzzle, input: a.Input, part: a.Part}
}

func (w *workflow) checkExpected(ctx context.Context, path m.Path, actual []m.Answer) error {
	sheet, err := w.LoadAnswers(ctx, path)
	if err != nil {
		slog.Error("Failed to load expected answers", "path", path, "error", err)
		return fmt.Errorf("load expected answers: %w", err)
	}

	diff, err := diffAnswers(string(path), sheet.Answers, actual)
	if err != nil {
		return fmt.Errorf("diff answers: %w", err)
	}

	if diff == "" {
		slog.Info("answers match expected", "path", path)
		return nil
	}

	w.DisplayMismatch(ctx, diff)

	return ErrAnswerMismatch
}

// diffAnswers renders a unified diff between the expected and actual answers
// for every (puzzle, input, part) present in both. It returns "" when they
// agree.
func diffAnswers(expectedName string, expected, actual []m.Answer) (string, error) {
	actualKeys := make(map[answerKey]struct{}, len(actual))
	for _, a := range actual {
		actualKeys[keyOf(a)] = struct{}{}
	}

	expectedKeys := make(map[answerKey]struct{}, len(expected))
	shared := make([]m.Answer, 0, len(expected))

	for _, e := range expected {
		if _, ok := actualKeys[keyOf(e)]; ok {
			expectedKeys[keyOf(e)] = struct{}{}
			shared = append(shared, e)
		}
	}

	checked := make([]m.Answer, 0, len(actual))
	for _, a := range actual {
		if _, ok := expectedKeys[keyOf(a)]; ok {
			checked = append(checked, a)
		}
	}

	sortAnswers(shared)
	sortAnswers(checked)

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        answerLines(shared),
		B:        answerLines(checked),
		FromFile: expectedName,
		ToFile:   "actual",
		Context:  1,
	})
}

func answerLines(answers []m.Answer) []string {
	lines := make([]string, 0, len(answers))
	for _, a := range answers {
		lines = append(lines, fmt.Sprintf("%s %s part %s: %d\n", a.Puzzle, a.Input, a.Part, a.Value))
	}

	return lines
}
