package game

import (
	"math/rand"
	"time"
)

// OpponentPolicy selects the embedded opponent's reply. Pick receives the
// indices of all empty cells (ascending, never empty) and must return one
// of them.
type OpponentPolicy interface {
	Pick(empty []int) int
}

// RandomOpponent picks uniformly at random among the empty cells.
type RandomOpponent struct {
	rng *rand.Rand
}

// NewRandomOpponent creates a uniform random opponent. If rng is nil a
// time-seeded source is used; tests pass a fixed-seed rand.Rand for
// deterministic replies.
func NewRandomOpponent(rng *rand.Rand) *RandomOpponent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomOpponent{rng: rng}
}

// Pick implements OpponentPolicy.
func (o *RandomOpponent) Pick(empty []int) int {
	return empty[o.rng.Intn(len(empty))]
}
