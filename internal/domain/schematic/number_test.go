package schematic

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectNumbers(t *testing.T, g *Grid) []Number {
	t.Helper()

	var got []Number

	for n, err := range g.Numbers() {
		require.NoError(t, err)

		got = append(got, n)
	}

	return got
}

func TestNumbers(t *testing.T) {
	grid, err := LoadGrid(sampleSchematic)
	require.NoError(t, err)

	want := []Number{
		{Value: 467, Start: 0, End: 3},
		{Value: 114, Start: 5, End: 8},
		{Value: 35, Start: 22, End: 24},
		{Value: 633, Start: 26, End: 29},
		{Value: 617, Start: 40, End: 43},
		{Value: 58, Start: 57, End: 59},
		{Value: 592, Start: 62, End: 65},
		{Value: 755, Start: 76, End: 79},
		{Value: 664, Start: 91, End: 94},
		{Value: 598, Start: 95, End: 98},
	}

	if diff := cmp.Diff(want, collectNumbers(t, grid)); diff != "" {
		t.Errorf("Numbers() mismatch (-want +got):\n%s", diff)
	}
}

func TestNumbers_StopAtRowEnd(t *testing.T) {
	grid, err := LoadGrid([]string{"..12", "34.."})
	require.NoError(t, err)

	want := []Number{
		{Value: 12, Start: 2, End: 4},
		{Value: 34, Start: 4, End: 6},
	}

	if diff := cmp.Diff(want, collectNumbers(t, grid)); diff != "" {
		t.Errorf("Numbers() mismatch (-want +got):\n%s", diff)
	}
}

func TestNumbers_WideNumbers(t *testing.T) {
	grid, err := LoadGrid([]string{"123456789.*"})
	require.NoError(t, err)

	got := collectNumbers(t, grid)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(123456789), got[0].Value)
	assert.Equal(t, 9, got[0].Len())
}

func TestNumbers_EarlyBreak(t *testing.T) {
	grid, err := LoadGrid([]string{"1.2.3"})
	require.NoError(t, err)

	count := 0

	for range grid.Numbers() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
}

func TestNumbers_Overflow(t *testing.T) {
	grid, err := LoadGrid([]string{"1." + strings.Repeat("9", 25)})
	require.NoError(t, err)

	var errs []error

	for _, err := range grid.Numbers() {
		errs = append(errs, err)
	}

	require.Len(t, errs, 2)
	require.NoError(t, errs[0])
	require.ErrorIs(t, errs[1], ErrNumberTooLarge)
	assert.Contains(t, errs[1].Error(), "row 1 col 3")
}

func TestNumberAt(t *testing.T) {
	grid, err := LoadGrid(sampleSchematic)
	require.NoError(t, err)

	for _, i := range []int{0, 1, 2} {
		n, err := grid.NumberAt(i)
		require.NoError(t, err)
		assert.Equal(t, Number{Value: 467, Start: 0, End: 3}, n)
	}

	n, err := grid.NumberAt(97)
	require.NoError(t, err)
	assert.Equal(t, Number{Value: 598, Start: 95, End: 98}, n)
	assert.True(t, n.Contains(96))
	assert.False(t, n.Contains(98))
}

func TestNumberAt_DoesNotCrossRows(t *testing.T) {
	grid, err := LoadGrid([]string{"..12", "34.."})
	require.NoError(t, err)

	n, err := grid.NumberAt(4)
	require.NoError(t, err)
	assert.Equal(t, Number{Value: 34, Start: 4, End: 6}, n)

	n, err = grid.NumberAt(3)
	require.NoError(t, err)
	assert.Equal(t, Number{Value: 12, Start: 2, End: 4}, n)
}

func TestNumberAt_NotADigit(t *testing.T) {
	grid, err := LoadGrid(sampleSchematic)
	require.NoError(t, err)

	for _, i := range []int{3, -1, 100} {
		_, err := grid.NumberAt(i)
		assert.ErrorIs(t, err, ErrNoDigits, "index %d", i)
	}
}

func TestParseDigits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint64
		wantErr error
	}{
		{"single digit", "7", 7, nil},
		{"leading zero", "007", 7, nil},
		{"five digits", "12345", 12345, nil},
		{"max uint64", "18446744073709551615", 18446744073709551615, nil},
		{"overflow", "18446744073709551616", 0, ErrNumberTooLarge},
		{"empty", "", 0, ErrNoDigits},
		{"non digit", "12a", 0, ErrInvalidDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDigits([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
