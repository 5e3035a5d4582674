// Package model defines the data structures shared by the puzzle solvers.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Puzzle names a registered solver.
type Puzzle string

const (
	// PuzzleSchematic analyzes an engine schematic grid.
	PuzzleSchematic Puzzle = "schematic"
	// PuzzleCubes scores coloured cube draws.
	PuzzleCubes Puzzle = "cubes"
	// PuzzleCards scores scratch cards.
	PuzzleCards Puzzle = "cards"
)

// Part selects one half of a puzzle. AllParts requests both.
type Part int

const (
	// AllParts requests every part a solver produces.
	AllParts Part = iota
	// PartOne is the first answer of a puzzle.
	PartOne
	// PartTwo is the second answer of a puzzle.
	PartTwo
)

// String renders the part the way it is shown in tables.
func (p Part) String() string {
	switch p {
	case AllParts:
		return "all"
	case PartOne:
		return "1"
	case PartTwo:
		return "2"
	}

	return fmt.Sprintf("part(%d)", int(p))
}

// Valid reports whether p is one of the known parts.
func (p Part) Valid() bool {
	return p >= AllParts && p <= PartTwo
}

// Job is a request to solve one puzzle input.
type Job struct {
	Puzzle Puzzle
	Input  Path
}

// PuzzleInfo describes a registered solver for listings.
type PuzzleInfo struct {
	Puzzle      Puzzle
	Description string
}
