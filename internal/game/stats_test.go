package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_RecordEpisode(t *testing.T) {
	var s Stats

	s.RecordEpisode(StepResult{Reward: 1.0, Terminated: true, Info: Info{}}, 5)
	s.RecordEpisode(StepResult{Reward: -1.0, Terminated: true, Info: Info{}}, 4)
	s.RecordEpisode(StepResult{Reward: 0.0, Terminated: true, Info: Info{}}, 5)
	s.RecordEpisode(StepResult{Reward: -1.0, Terminated: true, Info: Info{InfoInvalidMove: true}}, 1)

	assert.Equal(t, 4, s.Episodes)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 1, s.Draws)
	assert.Equal(t, 1, s.IllegalMoves)
	assert.Equal(t, 15, s.TotalSteps)
	assert.InDelta(t, -1.0, s.TotalReward, 1e-9)
}

func TestStats_Rates(t *testing.T) {
	var s Stats
	assert.Equal(t, 0.0, s.WinRate(), "no episodes yet")
	assert.Equal(t, 0.0, s.MeanReward())

	s.RecordEpisode(StepResult{Reward: 1.0, Info: Info{}}, 3)
	s.RecordEpisode(StepResult{Reward: 0.0, Info: Info{}}, 5)

	assert.InDelta(t, 0.5, s.WinRate(), 1e-9)
	assert.InDelta(t, 0.5, s.MeanReward(), 1e-9)
}

func TestStats_IllegalMoveNotCountedAsLoss(t *testing.T) {
	var s Stats
	s.RecordEpisode(StepResult{Reward: -1.0, Info: Info{InfoInvalidMove: true}}, 1)

	assert.Equal(t, 0, s.Losses)
	assert.Equal(t, 1, s.IllegalMoves)
}
