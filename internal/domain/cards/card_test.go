package cards

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

var sampleCards = []string{
	"Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53",
	"Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19",
	"Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1",
	"Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83",
	"Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36",
	"Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11",
}

func TestMain(tm *testing.M) {
	goleak.VerifyTestMain(tm)
}

func TestParseCard(t *testing.T) {
	card, err := ParseCard("Card   3:  1 21 | 69  1")
	require.NoError(t, err)

	assert.Equal(t, Card{ID: 3, Winning: []uint64{1, 21}, Have: []uint64{69, 1}}, card)
}

func TestParseCard_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no colon", "Card 1 1 2 | 3"},
		{"no header", "Game 1: 1 | 2"},
		{"bad id", "Card one: 1 | 2"},
		{"no pipe", "Card 1: 1 2 3"},
		{"bad winning number", "Card 1: 1 x | 2"},
		{"bad number", "Card 1: 1 | 2 y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCard(tt.line)
			require.ErrorIs(t, err, ErrMalformedCard)
		})
	}
}

func TestCard_MatchesAndPoints(t *testing.T) {
	cards, err := ParseCards(sampleCards)
	require.NoError(t, err)

	wantMatches := []int{4, 2, 2, 1, 0, 0}
	wantPoints := []uint64{8, 2, 2, 1, 0, 0}

	for i, c := range cards {
		assert.Equal(t, wantMatches[i], c.Matches(), "card %d", c.ID)
		assert.Equal(t, wantPoints[i], c.Points(), "card %d", c.ID)
	}
}

func TestSumPoints(t *testing.T) {
	cards, err := ParseCards(sampleCards)
	require.NoError(t, err)

	got, err := SumPoints(context.Background(), cards)
	require.NoError(t, err)
	assert.Equal(t, uint64(13), got)
}

func TestSumPoints_ManyChunks(t *testing.T) {
	cards := make([]Card, 0, 1000)
	for i := range 1000 {
		cards = append(cards, Card{ID: uint64(i + 1), Winning: []uint64{1, 2}, Have: []uint64{1, 2}})
	}

	got, err := SumPoints(context.Background(), cards)
	require.NoError(t, err)
	assert.Equal(t, uint64(2000), got)
}

func TestSumPoints_Empty(t *testing.T) {
	got, err := SumPoints(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestTotalCards(t *testing.T) {
	cards, err := ParseCards(sampleCards)
	require.NoError(t, err)

	assert.Equal(t, uint64(30), TotalCards(cards))
}

func TestTotalCards_CascadeStopsAtLastCard(t *testing.T) {
	// The last card would win copies of cards that do not exist.
	cards := []Card{
		{ID: 1, Winning: []uint64{1}, Have: []uint64{1}},
		{ID: 2, Winning: []uint64{1, 2, 3}, Have: []uint64{1, 2, 3}},
	}

	assert.Equal(t, uint64(3), TotalCards(cards))
}

func TestSolver_Solve(t *testing.T) {
	solver := NewSolver()
	assert.Equal(t, m.PuzzleCards, solver.Puzzle())
	assert.NotEmpty(t, solver.Description())

	got, err := solver.Solve(context.Background(), sampleCards)
	require.NoError(t, err)
	assert.Equal(t, m.Solution{Part1: 13, Part2: 30}, got)
}

func TestSolver_Solve_ParseError(t *testing.T) {
	_, err := NewSolver().Solve(context.Background(), append(sampleCards, "Card 7 no colon"))
	require.ErrorIs(t, err, ErrMalformedCard)
	assert.Contains(t, err.Error(), fmt.Sprintf("line %d", len(sampleCards)+1))
}
