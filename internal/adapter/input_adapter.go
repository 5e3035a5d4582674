// Package adapter contains the infrastructure adapters used by the domain layer.
package adapter

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

// maxLineSize bounds a single input line. Puzzle rows are far shorter.
const maxLineSize = 1 << 20

// InputAdapter abstracts how puzzle inputs are loaded so the workflow can be
// tested without touching the disk.
type InputAdapter interface {
	// ReadLines returns the lines of the input without line terminators.
	// Trailing blank lines are dropped.
	ReadLines(ctx context.Context, path m.Path) ([]string, error)
}

// LocalInputAdapter reads inputs from the local filesystem.
type LocalInputAdapter struct{}

// NewLocalInputAdapter constructs a LocalInputAdapter.
func NewLocalInputAdapter() *LocalInputAdapter {
	return &LocalInputAdapter{}
}

// ReadLines loads the file at path line by line.
func (a *LocalInputAdapter) ReadLines(ctx context.Context, path m.Path) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	slog.Debug("read input", "path", path, "lines", len(lines))

	return lines, nil
}
