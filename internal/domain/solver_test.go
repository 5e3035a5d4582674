package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puzzlebox.dev/pkg/puzzlebox/internal/domain/cards"
	"puzzlebox.dev/pkg/puzzlebox/internal/domain/cubes"
	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

func TestNewRegistry_Duplicate(t *testing.T) {
	_, err := NewRegistry(cards.NewSolver(), cards.NewSolver())
	require.ErrorIs(t, err, ErrDuplicatePuzzle)
	assert.Contains(t, err.Error(), "cards")
}

func TestRegistry_Lookup(t *testing.T) {
	registry := NewDefaultRegistry(DefaultSolverConfig())

	t.Run("known puzzle", func(t *testing.T) {
		s, err := registry.Lookup(m.PuzzleCubes)
		require.NoError(t, err)
		assert.Equal(t, m.PuzzleCubes, s.Puzzle())
	})

	t.Run("unknown puzzle", func(t *testing.T) {
		_, err := registry.Lookup("sudoku")
		require.ErrorIs(t, err, ErrUnknownPuzzle)
		assert.Contains(t, err.Error(), `"sudoku"`)
		assert.Contains(t, err.Error(), "schematic")
	})
}

func TestRegistry_PuzzlesSorted(t *testing.T) {
	registry := NewDefaultRegistry(DefaultSolverConfig())

	assert.Equal(t, []m.Puzzle{m.PuzzleCards, m.PuzzleCubes, m.PuzzleSchematic}, registry.Puzzles())

	infos := registry.Describe()
	require.Len(t, infos, 3)

	for _, info := range infos {
		assert.NotEmpty(t, info.Description, info.Puzzle)
	}
}

func TestDefaultRegistry_SolvesSamples(t *testing.T) {
	registry := NewDefaultRegistry(DefaultSolverConfig())

	tests := []struct {
		puzzle m.Puzzle
		lines  []string
		want   m.Solution
	}{
		{m.PuzzleSchematic, schematicSample, m.Solution{Part1: 4361, Part2: 467835}},
		{m.PuzzleCubes, cubesSample, m.Solution{Part1: 8, Part2: 2286}},
		{m.PuzzleCards, cardsSample, m.Solution{Part1: 13, Part2: 30}},
	}

	for _, tt := range tests {
		t.Run(string(tt.puzzle), func(t *testing.T) {
			s, err := registry.Lookup(tt.puzzle)
			require.NoError(t, err)

			got, err := s.Solve(context.Background(), tt.lines)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDefaultRegistry_Config(t *testing.T) {
	cfg := SolverConfig{SchematicWidth: 5, CubeLimits: cubes.Limits{Red: 20, Green: 20, Blue: 20}}
	registry := NewDefaultRegistry(cfg)

	t.Run("pinned schematic width rejects wider rows", func(t *testing.T) {
		s, err := registry.Lookup(m.PuzzleSchematic)
		require.NoError(t, err)

		_, err = s.Solve(context.Background(), schematicSample)
		require.Error(t, err)
	})

	t.Run("cube limits", func(t *testing.T) {
		s, err := registry.Lookup(m.PuzzleCubes)
		require.NoError(t, err)

		got, err := s.Solve(context.Background(), cubesSample)
		require.NoError(t, err)
		assert.Equal(t, uint64(15), got.Part1)
	})
}
