package schematic

// PartNumbers returns every number with at least one cell adjacent to a
// symbol, in scan order.
func PartNumbers(g *Grid) ([]Number, error) {
	var parts []Number

	for n, err := range g.Numbers() {
		if err != nil {
			return nil, err
		}

		if g.touchesSymbol(n) {
			parts = append(parts, n)
		}
	}

	return parts, nil
}

// SumPartNumbers adds up the values of all part numbers. Each number counts
// once no matter how many of its cells touch a symbol.
func SumPartNumbers(g *Grid) (uint64, error) {
	var sum uint64

	for n, err := range g.Numbers() {
		if err != nil {
			return 0, err
		}

		if g.touchesSymbol(n) {
			sum += n.Value
		}
	}

	return sum, nil
}

func (g *Grid) touchesSymbol(n Number) bool {
	for i := n.Start; i < n.End; i++ {
		for _, j := range g.Neighbors(i) {
			if j != NoNeighbor && IsSymbol(g.cells[j]) {
				return true
			}
		}
	}

	return false
}
