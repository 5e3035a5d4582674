// Package schematic analyzes engine schematics: rectangular character grids
// where multi-digit numbers sit next to symbol characters.
//
// The grid is stored as one flat byte buffer. Position (row, col) maps to the
// flat index row*Width()+col. Neighbors are resolved with 8-connectivity and
// never wrap across rows.
package schematic

import "fmt"

// Grid is an immutable character grid stored row-major in a flat buffer.
type Grid struct {
	cells []byte
	width int
}

// GridOption customizes LoadGrid.
type GridOption func(*gridConfig)

type gridConfig struct {
	width int
}

// WithRowWidth pins the expected row width instead of deriving it from the
// first line. Values <= 0 keep the derived width.
func WithRowWidth(width int) GridOption {
	return func(c *gridConfig) {
		c.width = width
	}
}

// LoadGrid concatenates lines into a flat grid. Every line must have the same
// length; the first mismatching row is reported with ErrRaggedRow.
func LoadGrid(lines []string, opts ...GridOption) (*Grid, error) {
	cfg := gridConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	width := cfg.width
	if width <= 0 {
		width = len(lines[0])
	}

	if width == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([]byte, 0, width*len(lines))

	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, row+1, len(line), width)
		}

		cells = append(cells, line...)
	}

	return &Grid{cells: cells, width: width}, nil
}

// Width returns the number of cells per row.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.cells) / g.width
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// At returns the byte at flat index i. It panics if i is out of range.
func (g *Grid) At(i int) byte {
	return g.cells[i]
}

// Coordinate converts a flat index back to (row, col).
func (g *Grid) Coordinate(i int) (row, col int) {
	return i / g.width, i % g.width
}

// Neighbors returns the Moore neighborhood of i; see Neighbors.
func (g *Grid) Neighbors(i int) [8]int {
	return Neighbors(i, g.width, len(g.cells))
}

// rowEnd returns the exclusive flat index where the row containing i ends.
func (g *Grid) rowEnd(i int) int {
	return min((i/g.width+1)*g.width, len(g.cells))
}
