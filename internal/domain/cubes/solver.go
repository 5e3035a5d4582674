package cubes

import (
	"context"
	"fmt"
	"log/slog"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

// Solver answers the cubes puzzle: part 1 sums the ids of possible games,
// part 2 sums the powers of the minimum sets.
type Solver struct {
	limits Limits
}

// NewSolver constructs a Solver checking games against limits.
func NewSolver(limits Limits) *Solver {
	return &Solver{limits: limits}
}

// Puzzle implements domain.Solver.
func (s *Solver) Puzzle() m.Puzzle {
	return m.PuzzleCubes
}

// Description implements domain.Solver.
func (s *Solver) Description() string {
	return fmt.Sprintf("possible cube games (%d red, %d green, %d blue) and minimum set powers",
		s.limits.Red, s.limits.Green, s.limits.Blue)
}

// Solve parses the games and scores both parts.
func (s *Solver) Solve(ctx context.Context, lines []string) (m.Solution, error) {
	if err := ctx.Err(); err != nil {
		return m.Solution{}, err
	}

	games, err := ParseGames(lines)
	if err != nil {
		return m.Solution{}, err
	}

	slog.Debug("parsed cube games", "games", len(games))

	return m.Solution{
		Part1: SumPossible(games, s.limits),
		Part2: SumPower(games),
	}, nil
}
