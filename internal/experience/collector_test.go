package experience

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmind/TicTacToeRL/internal/game"
)

func TestCollector_RecordsTransitionFields(t *testing.T) {
	buf := NewBuffer(10, zerolog.Nop())
	col := NewCollector(buf, zerolog.Nop())
	col.StartEpisode("ep-1")

	var prev game.Board
	next := prev
	next[4] = game.PlayerX
	next[0] = game.PlayerO

	res := game.StepResult{
		Observation: next,
		Reward:      0.0,
		Terminated:  false,
		Info:        game.Info{},
	}
	require.NoError(t, col.Record(prev, game.Action(4), res))

	got := buf.GetAll()
	require.Len(t, got, 1)
	tr := got[0]

	assert.NotEmpty(t, tr.ID)
	assert.Equal(t, "ep-1", tr.EpisodeID)
	assert.Equal(t, prev, tr.State)
	assert.Equal(t, 4, tr.Action)
	assert.Equal(t, 0.0, tr.Reward)
	assert.Equal(t, next, tr.NextState)
	assert.False(t, tr.Done)
	assert.Equal(t, 0, tr.Ply)
	assert.False(t, tr.CollectedAt.IsZero())
}

func TestCollector_TracksEpisodeCounters(t *testing.T) {
	buf := NewBuffer(10, zerolog.Nop())
	col := NewCollector(buf, zerolog.Nop())
	col.StartEpisode("ep-1")

	require.NoError(t, col.Record(game.Board{}, 0, game.StepResult{Reward: 0}))
	require.NoError(t, col.Record(game.Board{}, 1, game.StepResult{Reward: 1, Terminated: true}))

	assert.Equal(t, 2, col.EpisodeSteps())
	assert.InDelta(t, 1.0, col.EpisodeReturn(), 1e-9)
}

func TestCollector_StartEpisodeResetsCounters(t *testing.T) {
	buf := NewBuffer(10, zerolog.Nop())
	col := NewCollector(buf, zerolog.Nop())

	col.StartEpisode("ep-1")
	require.NoError(t, col.Record(game.Board{}, 0, game.StepResult{Reward: 1, Terminated: true}))

	col.StartEpisode("ep-2")
	assert.Equal(t, 0, col.EpisodeSteps())
	assert.Equal(t, 0.0, col.EpisodeReturn())

	require.NoError(t, col.Record(game.Board{}, 3, game.StepResult{Reward: -1, Terminated: true}))

	got := buf.GetAll()
	require.Len(t, got, 2)
	assert.Equal(t, "ep-1", got[0].EpisodeID)
	assert.Equal(t, "ep-2", got[1].EpisodeID)
	assert.NotEqual(t, got[0].ID, got[1].ID, "transition IDs are unique")
}

func TestCollector_PropagatesBufferError(t *testing.T) {
	buf := NewBuffer(10, zerolog.Nop())
	col := NewCollector(buf, zerolog.Nop())
	col.StartEpisode("ep-1")

	buf.Close()

	err := col.Record(game.Board{}, 0, game.StepResult{})
	assert.ErrorIs(t, err, ErrBufferClosed)
}
