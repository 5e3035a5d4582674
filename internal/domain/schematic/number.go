package schematic

import (
	"fmt"
	"iter"
	"math"
)

// Number is a maximal horizontal run of digits and the half-open flat index
// range [Start, End) it occupies.
type Number struct {
	Value uint64
	Start int
	End   int
}

// Len returns how many cells the number spans.
func (n Number) Len() int {
	return n.End - n.Start
}

// Contains reports whether flat index i lies inside the number.
func (n Number) Contains(i int) bool {
	return i >= n.Start && i < n.End
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Numbers scans the grid left to right, top to bottom and yields every digit
// run in order. A run stops at the end of its row. A run that cannot be
// parsed is yielded once with its error and ends the scan.
func (g *Grid) Numbers() iter.Seq2[Number, error] {
	return func(yield func(Number, error) bool) {
		i := 0
		for i < len(g.cells) {
			if !isDigit(g.cells[i]) {
				i++
				continue
			}

			n, err := g.runFrom(i)
			if err != nil {
				yield(n, err)
				return
			}

			if !yield(n, nil) {
				return
			}

			i = n.End
		}
	}
}

// NumberAt returns the whole number containing the digit at flat index i,
// expanding left and right within the row.
func (g *Grid) NumberAt(i int) (Number, error) {
	if i < 0 || i >= len(g.cells) || !isDigit(g.cells[i]) {
		return Number{Start: i, End: i}, fmt.Errorf("%w: index %d", ErrNoDigits, i)
	}

	rowStart := (i / g.width) * g.width

	start := i
	for start > rowStart && isDigit(g.cells[start-1]) {
		start--
	}

	return g.runFrom(start)
}

// runFrom parses the digit run beginning at start.
func (g *Grid) runFrom(start int) (Number, error) {
	end := start
	limit := g.rowEnd(start)

	for end < limit && isDigit(g.cells[end]) {
		end++
	}

	n := Number{Start: start, End: end}

	value, err := parseDigits(g.cells[start:end])
	if err != nil {
		row, col := g.Coordinate(start)
		return n, fmt.Errorf("number at row %d col %d: %w", row+1, col+1, err)
	}

	n.Value = value

	return n, nil
}

// parseDigits accumulates ASCII digits in base 10.
func parseDigits(digits []byte) (uint64, error) {
	if len(digits) == 0 {
		return 0, ErrNoDigits
	}

	var value uint64

	for _, b := range digits {
		if !isDigit(b) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, b)
		}

		d := uint64(b - '0')
		if value > (math.MaxUint64-d)/10 {
			return 0, fmt.Errorf("%w: %s", ErrNumberTooLarge, digits)
		}

		value = value*10 + d
	}

	return value, nil
}
