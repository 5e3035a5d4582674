package schematic

// NoNeighbor marks a neighborhood slot that falls outside the grid.
const NoNeighbor = -1

// mooreOffsets lists (dcol, drow) pairs in row-major order, skipping (0, 0).
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the 8 Moore-neighborhood flat indices of i in a grid of
// the given row width and total length. Slots that would leave the grid,
// including horizontal steps past the first or last column, hold NoNeighbor.
// Every other slot is a valid index in [0, length).
func Neighbors(i, width, length int) [8]int {
	var out [8]int

	for k := range out {
		out[k] = NoNeighbor
	}

	if width <= 0 || i < 0 || i >= length {
		return out
	}

	row, col := i/width, i%width

	for k, d := range mooreOffsets {
		c, r := col+d[0], row+d[1]
		if c < 0 || c >= width || r < 0 {
			continue
		}

		idx := r*width + c
		if idx >= length {
			continue
		}

		out[k] = idx
	}

	return out
}
