package schematic

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

// Solver answers the schematic puzzle: part 1 is the sum of part numbers,
// part 2 the sum of gear ratios.
type Solver struct {
	opts []GridOption
}

// NewSolver constructs a Solver that loads grids with the given options.
func NewSolver(opts ...GridOption) *Solver {
	return &Solver{opts: opts}
}

// Puzzle implements domain.Solver.
func (s *Solver) Puzzle() m.Puzzle {
	return m.PuzzleSchematic
}

// Description implements domain.Solver.
func (s *Solver) Description() string {
	return "part numbers and gear ratios of an engine schematic"
}

// Solve loads the grid once and runs both scorers concurrently over it.
func (s *Solver) Solve(ctx context.Context, lines []string) (m.Solution, error) {
	grid, err := LoadGrid(lines, s.opts...)
	if err != nil {
		return m.Solution{}, fmt.Errorf("load schematic: %w", err)
	}

	slog.Debug("loaded schematic", "width", grid.Width(), "height", grid.Height())

	var solution m.Solution

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}

		sum, err := SumPartNumbers(grid)
		if err != nil {
			return fmt.Errorf("sum part numbers: %w", err)
		}

		solution.Part1 = sum

		return nil
	})

	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}

		sum, err := SumGearRatios(grid)
		if err != nil {
			return fmt.Errorf("sum gear ratios: %w", err)
		}

		solution.Part2 = sum

		return nil
	})

	if err := group.Wait(); err != nil {
		return m.Solution{}, err
	}

	return solution, nil
}
