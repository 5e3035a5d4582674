// Package cards scores scratch cards.
//
// Each input line lists the winning numbers and the numbers on the card:
//
//	Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
package cards

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCard indicates a line that does not follow the card format.
var ErrMalformedCard = errors.New("cards: malformed card")

const cardPrefix = "Card"

// Card is one scratch card.
type Card struct {
	ID      uint64
	Winning []uint64
	Have    []uint64
}

// Matches counts the winning numbers that appear on the card.
func (c Card) Matches() int {
	have := make(map[uint64]struct{}, len(c.Have))
	for _, n := range c.Have {
		have[n] = struct{}{}
	}

	matches := 0

	for _, n := range c.Winning {
		if _, ok := have[n]; ok {
			matches++
		}
	}

	return matches
}

// Points is 2^(matches-1), or 0 without matches.
func (c Card) Points() uint64 {
	n := c.Matches()
	if n == 0 {
		return 0
	}

	return 1 << (n - 1)
}

// ParseCard parses a single card line.
func ParseCard(line string) (Card, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedCard, line)
	}

	idText, ok := strings.CutPrefix(strings.TrimSpace(header), cardPrefix)
	if !ok {
		return Card{}, fmt.Errorf("%w: missing %q header in %q", ErrMalformedCard, cardPrefix, line)
	}

	id, err := strconv.ParseUint(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return Card{}, fmt.Errorf("%w: bad id %q: %w", ErrMalformedCard, idText, err)
	}

	winningText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: card %d has no '|'", ErrMalformedCard, id)
	}

	card := Card{ID: id}

	if card.Winning, err = parseNumbers(winningText); err != nil {
		return Card{}, fmt.Errorf("card %d winning numbers: %w", id, err)
	}

	if card.Have, err = parseNumbers(haveText); err != nil {
		return Card{}, fmt.Errorf("card %d numbers: %w", id, err)
	}

	return card, nil
}

func parseNumbers(text string) ([]uint64, error) {
	fields := strings.Fields(text)
	nums := make([]uint64, 0, len(fields))

	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrMalformedCard, f)
		}

		nums = append(nums, n)
	}

	return nums, nil
}

// ParseCards parses every non-blank line, keeping input order.
func ParseCards(lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		card, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		cards = append(cards, card)
	}

	return cards, nil
}
