package schematic

import "slices"

// Gear is a GearSymbol adjacent to exactly two numbers.
type Gear struct {
	Index int
	Parts [2]Number
}

// Ratio is the product of the two adjacent numbers.
func (g Gear) Ratio() uint64 {
	return g.Parts[0].Value * g.Parts[1].Value
}

// Gears returns every gear in scan order. A '*' touching zero, one, or more
// than two numbers is not a gear.
func Gears(g *Grid) ([]Gear, error) {
	var gears []Gear

	for i, b := range g.cells {
		if b != GearSymbol {
			continue
		}

		gear, ok, err := g.gearAt(i)
		if err != nil {
			return nil, err
		}

		if ok {
			gears = append(gears, gear)
		}
	}

	return gears, nil
}

// SumGearRatios adds up the ratio of every gear.
func SumGearRatios(g *Grid) (uint64, error) {
	gears, err := Gears(g)
	if err != nil {
		return 0, err
	}

	var sum uint64
	for _, gear := range gears {
		sum += gear.Ratio()
	}

	return sum, nil
}

func (g *Grid) gearAt(i int) (Gear, bool, error) {
	touched := g.adjacentRuns(i)
	if len(touched) != 2 {
		return Gear{}, false, nil
	}

	gear := Gear{Index: i}

	for k, idx := range touched {
		n, err := g.NumberAt(idx)
		if err != nil {
			return Gear{}, false, err
		}

		gear.Parts[k] = n
	}

	return gear, true, nil
}

// adjacentRuns returns one representative neighbor index per distinct digit
// run touching i.
func (g *Grid) adjacentRuns(i int) []int {
	digits := make([]int, 0, len(mooreOffsets))

	for _, j := range g.Neighbors(i) {
		if j != NoNeighbor && isDigit(g.cells[j]) {
			digits = append(digits, j)
		}
	}

	slices.Sort(digits)

	return collapseRuns(digits, g.width)
}

// collapseRuns keeps the first index of every run of consecutive indices.
// Indices on different rows never belong to the same run.
func collapseRuns(sorted []int, width int) []int {
	if len(sorted) == 0 {
		return nil
	}

	runs := make([]int, 0, len(sorted))
	runs = append(runs, sorted[0])

	for k := 1; k < len(sorted); k++ {
		idx := sorted[k]
		if idx == sorted[k-1]+1 && idx%width != 0 {
			continue
		}

		runs = append(runs, idx)
	}

	return runs
}
