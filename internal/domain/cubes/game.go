// Package cubes scores games of coloured cubes drawn from a bag.
//
// Each input line describes one game:
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// Rounds are separated by ';' and the draws within a round by ','.
package cubes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedGame indicates a line that does not follow the game format.
var ErrMalformedGame = errors.New("cubes: malformed game")

const gamePrefix = "Game "

// Round counts the cubes of each colour revealed in one draw.
type Round struct {
	Red   uint64
	Green uint64
	Blue  uint64
}

// Power is the product of the three colour counts.
func (r Round) Power() uint64 {
	return r.Red * r.Green * r.Blue
}

// Game is one line of input: an id and the rounds played.
type Game struct {
	ID     uint64
	Rounds []Round
}

// MinimumSet returns the fewest cubes of each colour that make every round
// of the game possible.
func (g Game) MinimumSet() Round {
	var set Round
	for _, r := range g.Rounds {
		set.Red = max(set.Red, r.Red)
		set.Green = max(set.Green, r.Green)
		set.Blue = max(set.Blue, r.Blue)
	}

	return set
}

// Possible reports whether every round stays within limits.
func (g Game) Possible(limits Limits) bool {
	for _, r := range g.Rounds {
		if r.Check(limits) != Valid {
			return false
		}
	}

	return true
}

// ParseGame parses a single game line.
func ParseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedGame, line)
	}

	idText, ok := strings.CutPrefix(strings.TrimSpace(header), gamePrefix)
	if !ok {
		return Game{}, fmt.Errorf("%w: missing %q header in %q", ErrMalformedGame, gamePrefix, line)
	}

	id, err := strconv.ParseUint(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return Game{}, fmt.Errorf("%w: bad id %q: %w", ErrMalformedGame, idText, err)
	}

	game := Game{ID: id}

	for _, roundText := range strings.Split(body, ";") {
		round, err := parseRound(roundText)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}

		game.Rounds = append(game.Rounds, round)
	}

	return game, nil
}

func parseRound(text string) (Round, error) {
	var round Round

	for _, draw := range strings.Split(text, ",") {
		fields := strings.Fields(draw)
		if len(fields) != 2 {
			return Round{}, fmt.Errorf("%w: bad draw %q", ErrMalformedGame, strings.TrimSpace(draw))
		}

		n, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return Round{}, fmt.Errorf("%w: bad count %q: %w", ErrMalformedGame, fields[0], err)
		}

		switch fields[1] {
		case "red":
			round.Red += n
		case "green":
			round.Green += n
		case "blue":
			round.Blue += n
		default:
			return Round{}, fmt.Errorf("%w: unknown colour %q", ErrMalformedGame, fields[1])
		}
	}

	return round, nil
}

// ParseGames parses every non-blank line.
func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		game, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		games = append(games, game)
	}

	return games, nil
}
