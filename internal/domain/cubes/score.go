package cubes

// Limits caps how many cubes of each colour the bag holds.
type Limits struct {
	Red   uint64
	Green uint64
	Blue  uint64
}

// DefaultLimits is the bag used by the puzzle: 12 red, 13 green, 14 blue.
var DefaultLimits = Limits{Red: 12, Green: 13, Blue: 14}

// RoundResult tells whether a round fits the limits and, if not, which
// colour broke them first (checked red, green, blue).
type RoundResult int

const (
	// Valid means the round fits all limits.
	Valid RoundResult = iota
	// TooManyRed means the red count exceeds its limit.
	TooManyRed
	// TooManyGreen means the green count exceeds its limit.
	TooManyGreen
	// TooManyBlue means the blue count exceeds its limit.
	TooManyBlue
)

func (r RoundResult) String() string {
	switch r {
	case Valid:
		return "valid"
	case TooManyRed:
		return "too many red"
	case TooManyGreen:
		return "too many green"
	case TooManyBlue:
		return "too many blue"
	}

	return "unknown"
}

// Check compares the round against limits.
func (r Round) Check(limits Limits) RoundResult {
	switch {
	case r.Red > limits.Red:
		return TooManyRed
	case r.Green > limits.Green:
		return TooManyGreen
	case r.Blue > limits.Blue:
		return TooManyBlue
	}

	return Valid
}

// SumPossible adds the ids of games that are possible with the given limits.
func SumPossible(games []Game, limits Limits) uint64 {
	var sum uint64

	for _, g := range games {
		if g.Possible(limits) {
			sum += g.ID
		}
	}

	return sum
}

// SumPower adds the power of every game's minimum set.
func SumPower(games []Game) uint64 {
	var sum uint64
	for _, g := range games {
		sum += g.MinimumSet().Power()
	}

	return sum
}
