package schematic

// Symbols is the closed set of characters that mark a part number.
const Symbols = "*&+-=/%$@#"

// GearSymbol is the symbol that may form a gear.
const GearSymbol byte = '*'

var symbolTable = func() [256]bool {
	var t [256]bool
	for i := range len(Symbols) {
		t[Symbols[i]] = true
	}

	return t
}()

// IsSymbol reports whether b belongs to Symbols. Digits and '.' never do.
func IsSymbol(b byte) bool {
	return symbolTable[b]
}
