package schematic

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

func TestMain(tm *testing.M) {
	goleak.VerifyTestMain(tm)
}

func TestSolver_Solve(t *testing.T) {
	solver := NewSolver()
	assert.Equal(t, m.PuzzleSchematic, solver.Puzzle())
	assert.NotEmpty(t, solver.Description())

	got, err := solver.Solve(context.Background(), sampleSchematic)
	require.NoError(t, err)
	assert.Equal(t, m.Solution{Part1: 4361, Part2: 467835}, got)
}

func TestSolver_Solve_PinnedWidth(t *testing.T) {
	_, err := NewSolver(WithRowWidth(140)).Solve(context.Background(), sampleSchematic)
	require.ErrorIs(t, err, ErrRaggedRow)
}

func TestSolver_Solve_EmptyInput(t *testing.T) {
	_, err := NewSolver().Solve(context.Background(), nil)
	require.ErrorIs(t, err, ErrEmptyGrid)
}

func TestSolver_Solve_Overflow(t *testing.T) {
	_, err := NewSolver().Solve(context.Background(), []string{strings.Repeat("9", 30) + "*"})
	require.ErrorIs(t, err, ErrNumberTooLarge)
}

func TestSolver_Solve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSolver().Solve(ctx, sampleSchematic)
	require.ErrorIs(t, err, context.Canceled)
}
