package schematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumPartNumbers(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  uint64
	}{
		{"sample", sampleSchematic, 4361},
		{"no symbols", []string{"467..114..", "..35..633."}, 0},
		{"isolated number", []string{"12.....*.."}, 0},
		{"gear between digits", []string{"1*1"}, 2},
		{"diagonal symbol", []string{"5..", ".#.", "..."}, 5},
		{"counted once", []string{"#12#", "#..#"}, 12},
		{"dot and digits are not symbols", []string{"12.", "..3"}, 0},
		{"unknown character is not a symbol", []string{"12!", "..."}, 0},
		{"no wrap across rows", []string{"...1", "#..."}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := LoadGrid(tt.lines)
			require.NoError(t, err)

			got, err := SumPartNumbers(grid)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSumPartNumbers_Idempotent(t *testing.T) {
	grid, err := LoadGrid(sampleSchematic)
	require.NoError(t, err)

	first, err := SumPartNumbers(grid)
	require.NoError(t, err)

	second, err := SumPartNumbers(grid)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPartNumbers(t *testing.T) {
	grid, err := LoadGrid(sampleSchematic)
	require.NoError(t, err)

	parts, err := PartNumbers(grid)
	require.NoError(t, err)

	values := make([]uint64, 0, len(parts))
	for _, p := range parts {
		values = append(values, p.Value)
	}

	assert.Equal(t, []uint64{467, 35, 633, 617, 592, 755, 664, 598}, values)
}

func TestIsSymbol(t *testing.T) {
	for i := range len(Symbols) {
		assert.True(t, IsSymbol(Symbols[i]), "%q", Symbols[i])
	}

	for _, b := range []byte(".0123456789abc!? \n") {
		assert.False(t, IsSymbol(b), "%q", b)
	}
}
