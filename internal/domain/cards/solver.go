package cards

import (
	"context"
	"fmt"
	"log/slog"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

// Solver answers the cards puzzle: part 1 sums card points, part 2 counts
// cards after the copy cascade.
type Solver struct{}

// NewSolver constructs a Solver.
func NewSolver() *Solver {
	return &Solver{}
}

// Puzzle implements domain.Solver.
func (s *Solver) Puzzle() m.Puzzle {
	return m.PuzzleCards
}

// Description implements domain.Solver.
func (s *Solver) Description() string {
	return "scratch card points and cascading card copies"
}

// Solve parses the cards and scores both parts.
func (s *Solver) Solve(ctx context.Context, lines []string) (m.Solution, error) {
	cards, err := ParseCards(lines)
	if err != nil {
		return m.Solution{}, err
	}

	slog.Debug("parsed scratch cards", "cards", len(cards))

	points, err := SumPoints(ctx, cards)
	if err != nil {
		return m.Solution{}, fmt.Errorf("sum points: %w", err)
	}

	return m.Solution{Part1: points, Part2: TotalCards(cards)}, nil
}
