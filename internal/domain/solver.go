// Package domain wires puzzle solvers to inputs, output and persistence.
package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"puzzlebox.dev/pkg/puzzlebox/internal/domain/cards"
	"puzzlebox.dev/pkg/puzzlebox/internal/domain/cubes"
	"puzzlebox.dev/pkg/puzzlebox/internal/domain/schematic"
	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

var (
	// ErrUnknownPuzzle is returned when no solver is registered for a puzzle.
	ErrUnknownPuzzle = errors.New("unknown puzzle")
	// ErrDuplicatePuzzle is returned when two solvers claim the same puzzle.
	ErrDuplicatePuzzle = errors.New("puzzle registered twice")
)

// Solver computes both answers of one puzzle from the lines of its input.
type Solver interface {
	Puzzle() m.Puzzle
	Description() string
	Solve(ctx context.Context, lines []string) (m.Solution, error)
}

// Registry maps puzzle names to their solvers.
type Registry struct {
	solvers map[m.Puzzle]Solver
}

// NewRegistry registers the given solvers.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[m.Puzzle]Solver, len(solvers))}

	for _, s := range solvers {
		if _, ok := r.solvers[s.Puzzle()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePuzzle, s.Puzzle())
		}

		r.solvers[s.Puzzle()] = s
	}

	return r, nil
}

// SolverConfig tunes the built-in solvers.
type SolverConfig struct {
	// SchematicWidth pins the schematic row width; 0 derives it from the input.
	SchematicWidth int
	// CubeLimits is the bag checked by the cubes puzzle.
	CubeLimits cubes.Limits
}

// DefaultSolverConfig returns the puzzle defaults.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{CubeLimits: cubes.DefaultLimits}
}

// NewDefaultRegistry registers every built-in solver.
func NewDefaultRegistry(cfg SolverConfig) *Registry {
	r, err := NewRegistry(
		schematic.NewSolver(schematic.WithRowWidth(cfg.SchematicWidth)),
		cubes.NewSolver(cfg.CubeLimits),
		cards.NewSolver(),
	)
	if err != nil {
		// Built-in puzzles have distinct names.
		panic(err)
	}

	return r
}

// Lookup returns the solver registered for puzzle.
func (r *Registry) Lookup(puzzle m.Puzzle) (Solver, error) {
	s, ok := r.solvers[puzzle]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownPuzzle, puzzle, r.Puzzles())
	}

	return s, nil
}

// Puzzles returns the registered puzzle names in sorted order.
func (r *Registry) Puzzles() []m.Puzzle {
	puzzles := make([]m.Puzzle, 0, len(r.solvers))
	for p := range r.solvers {
		puzzles = append(puzzles, p)
	}

	slices.Sort(puzzles)

	return puzzles
}

// Describe lists every registered puzzle with its description.
func (r *Registry) Describe() []m.PuzzleInfo {
	infos := make([]m.PuzzleInfo, 0, len(r.solvers))
	for _, p := range r.Puzzles() {
		infos = append(infos, m.PuzzleInfo{Puzzle: p, Description: r.solvers[p].Description()})
	}

	return infos
}
