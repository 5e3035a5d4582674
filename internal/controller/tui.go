package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/glamour"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

const diffWrapWidth = 120

// tableChrome is the number of lines around the table rows: title, blank,
// header, header border, blank, help.
const tableChrome = 6

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	baseStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// TUI implements UI with Bubble Tea. Tables that fit the terminal are printed
// once; longer ones open a scrollable view.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (p *TUI) Close(_ context.Context) {}

// DisplayAnswers shows the answers table.
func (p *TUI) DisplayAnswers(ctx context.Context, answers []m.Answer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(answers))
	for _, a := range answers {
		rows = append(rows, answerRow(a))
	}

	return p.show(newTableModel("🧩 Answers", answerHeaders, rows))
}

// DisplayPuzzles shows the registered puzzles.
func (p *TUI) DisplayPuzzles(ctx context.Context, puzzles []m.PuzzleInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(puzzles))
	for _, info := range puzzles {
		rows = append(rows, puzzleRow(info))
	}

	return p.show(newTableModel("📚 Puzzles", puzzleHeaders, rows))
}

// DisplayMismatch renders the diff as a markdown diff block.
func (p *TUI) DisplayMismatch(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("❌ Answers differ from expected"))
	b.WriteString("\n")

	rendered, err := renderDiff(diff)
	if err != nil {
		slog.Debug("markdown rendering failed, falling back to plain diff", "error", err)

		rendered = "\n" + colourDiff(diff)
	}

	b.WriteString(rendered)

	_, _ = fmt.Fprint(p.output, b.String())
}

func renderDiff(diff string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(diffWrapWidth),
	)
	if err != nil {
		return "", err
	}

	return renderer.Render("```diff\n" + strings.TrimSuffix(diff, "\n") + "\n```\n")
}

// colourDiff colours removed and added lines, leaving headers untouched.
func colourDiff(diff string) string {
	var b strings.Builder

	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			b.WriteString(line)
		case strings.HasPrefix(line, "-"):
			b.WriteString(removedStyle.Render(strings.TrimSuffix(line, "\n")) + "\n")
		case strings.HasPrefix(line, "+"):
			b.WriteString(addedStyle.Render(strings.TrimSuffix(line, "\n")) + "\n")
		default:
			b.WriteString(line)
		}
	}

	return b.String()
}

func (p *TUI) show(model tableModel) error {
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	model.table.SetHeight(model.height - tableChrome)
	model.table.Focus()

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// tableModel is the Bubble Tea model for a scrollable table.
type tableModel struct {
	title    string
	table    table.Model
	rows     int
	width    int
	height   int
	quitting bool
}

func newTableModel(title string, headers []string, rows []table.Row) tableModel {
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		width := lipgloss.Width(h)
		for _, r := range rows {
			width = max(width, lipgloss.Width(r[i]))
		}

		columns[i] = table.Column{Title: h, Width: width}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Cell
	t.SetStyles(styles)

	return tableModel{title: title, table: t, rows: len(rows)}
}

// needsPagination reports whether the rows overflow a known terminal height.
func (tm tableModel) needsPagination() bool {
	return tm.height > 0 && tm.rows+tableChrome > tm.height
}

func (tm tableModel) Init() tea.Cmd {
	return nil
}

func (tm tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.width = msg.Width
		tm.height = msg.Height
		tm.table.SetHeight(max(msg.Height-tableChrome, 1))

		return tm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			tm.quitting = true
			return tm, tea.Quit
		}
	}

	var cmd tea.Cmd
	tm.table, cmd = tm.table.Update(msg)

	return tm, cmd
}

func (tm tableModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(tm.title))
	b.WriteString("\n\n")

	if tm.rows == 0 {
		b.WriteString("  📭 Nothing to show\n")
		return b.String()
	}

	b.WriteString(baseStyle.Render(tm.table.View()))
	b.WriteString("\n")

	if tm.needsPagination() {
		b.WriteString(helpStyle.Render("↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}
