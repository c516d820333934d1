package agent

import (
	"math/rand"
	"time"

	"github.com/gridmind/TicTacToeRL/internal/game"
)

// Agent selects the next action for a given board. Implementations may
// return any action in the discrete range; the environment penalizes
// illegal choices rather than rejecting them.
type Agent interface {
	SelectAction(b game.Board) game.Action
}

// RandomAgent picks uniformly among the empty cells. With no empty cell
// left it falls back to action 0, which the environment scores as an
// illegal move.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent creates a random agent. A nil rng is replaced by a
// time-seeded source.
func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomAgent{rng: rng}
}

// SelectAction implements Agent.
func (a *RandomAgent) SelectAction(b game.Board) game.Action {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return game.Action(0)
	}
	return game.Action(empty[a.rng.Intn(len(empty))])
}
