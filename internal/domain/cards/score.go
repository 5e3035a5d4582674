package cards

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// pointsChunk is how many cards one worker scores at a time.
const pointsChunk = 64

// SumPoints adds the points of every card. Cards are independent, so they
// are scored in chunks on parallel workers.
func SumPoints(ctx context.Context, cards []Card) (uint64, error) {
	var total atomic.Uint64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for start := 0; start < len(cards); start += pointsChunk {
		chunk := cards[start:min(start+pointsChunk, len(cards))]

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			var sum uint64
			for _, c := range chunk {
				sum += c.Points()
			}

			total.Add(sum)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return 0, err
	}

	return total.Load(), nil
}

// TotalCards plays out the copy cascade: a card with n matches wins one copy
// of each of the next n cards, once per copy of itself held. Copies that
// would fall past the last card are not awarded. It returns the number of
// cards held at the end.
func TotalCards(cards []Card) uint64 {
	counts := make([]uint64, len(cards))
	for i := range counts {
		counts[i] = 1
	}

	for i, c := range cards {
		n := c.Matches()
		for j := i + 1; j <= i+n && j < len(counts); j++ {
			counts[j] += counts[i]
		}
	}

	var total uint64
	for _, n := range counts {
		total += n
	}

	return total
}
