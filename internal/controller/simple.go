package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

// SimpleUI implements UI by printing plain tables to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayAnswers prints one table row per answer.
func (s *SimpleUI) DisplayAnswers(ctx context.Context, answers []m.Answer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(answers))
	for _, a := range answers {
		rows = append(rows, answerRow(a))
	}

	footer := []string{fmt.Sprintf("Total %d", len(answers)), "", "", "", ""}

	return s.printf("%s", renderTable(answerHeaders, rows, footer))
}

// DisplayPuzzles prints the registered puzzles.
func (s *SimpleUI) DisplayPuzzles(ctx context.Context, puzzles []m.PuzzleInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(puzzles))
	for _, p := range puzzles {
		rows = append(rows, puzzleRow(p))
	}

	return s.printf("%s", renderTable(puzzleHeaders, rows, nil))
}

// DisplayMismatch prints the diff between expected and actual answers.
func (s *SimpleUI) DisplayMismatch(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	_ = s.printf("answers differ from expected:\n%s", diff)
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}

func formatValue(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
