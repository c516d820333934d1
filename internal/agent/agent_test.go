package agent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmind/TicTacToeRL/internal/game"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestRandomAgent_PicksEmptyCell(t *testing.T) {
	a := NewRandomAgent(newTestRNG())

	var board game.Board
	board[0] = game.PlayerX
	board[4] = game.PlayerO

	for i := 0; i < 100; i++ {
		action := a.SelectAction(board)
		require.True(t, action.InRange())
		assert.Equal(t, game.Empty, board[action], "agent must target an empty cell")
	}
}

func TestRandomAgent_FullBoardFallback(t *testing.T) {
	a := NewRandomAgent(newTestRNG())

	var board game.Board
	for i := range board {
		board[i] = game.PlayerX
	}

	assert.Equal(t, game.Action(0), a.SelectAction(board))
}

func TestRandomAgent_DeterministicWithSeed(t *testing.T) {
	var board game.Board

	a := NewRandomAgent(rand.New(rand.NewSource(9)))
	b := NewRandomAgent(rand.New(rand.NewSource(9)))

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.SelectAction(board), b.SelectAction(board))
	}
}

func TestNewRandomAgent_NilRNG(t *testing.T) {
	a := NewRandomAgent(nil)
	require.NotNil(t, a)
	assert.True(t, a.SelectAction(game.Board{}).InRange())
}
