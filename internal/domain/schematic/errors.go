package schematic

import "errors"

// Sentinel errors for schematic loading and scanning.
var (
	// ErrEmptyGrid indicates the input has no rows or the first row is empty.
	ErrEmptyGrid = errors.New("schematic: grid must have at least one row and one column")
	// ErrRaggedRow indicates a row whose length differs from the grid width.
	ErrRaggedRow = errors.New("schematic: all rows must have the same length")
	// ErrNoDigits indicates a number was parsed from an empty digit run.
	ErrNoDigits = errors.New("schematic: no digits to parse")
	// ErrInvalidDigit indicates a non-digit byte inside a digit run.
	ErrInvalidDigit = errors.New("schematic: invalid digit")
	// ErrNumberTooLarge indicates a digit run that does not fit in uint64.
	ErrNumberTooLarge = errors.New("schematic: number does not fit in 64 bits")
)
