package experience

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gridmind/TicTacToeRL/internal/game"
)

// Collector records one transition per environment step into a Buffer.
// It tracks per-episode counters and logs a summary when the episode
// reaches a terminal state.
type Collector struct {
	buffer *Buffer
	logger zerolog.Logger

	episodeID    string
	episodeSteps int
	episodeRet   float64
}

// NewCollector creates a collector writing into buffer.
func NewCollector(buffer *Buffer, logger zerolog.Logger) *Collector {
	return &Collector{
		buffer: buffer,
		logger: logger.With().Str("component", "experience_collector").Logger(),
	}
}

// StartEpisode binds the collector to a new episode. Call it after every
// environment reset with the environment's episode ID.
func (c *Collector) StartEpisode(episodeID string) {
	c.episodeID = episodeID
	c.episodeSteps = 0
	c.episodeRet = 0
}

// Record captures a single step: the board the agent acted on, the action
// it chose, and the step result after the opponent reply resolved.
func (c *Collector) Record(prev game.Board, action game.Action, res game.StepResult) error {
	tr := &Transition{
		ID:          uuid.New().String(),
		EpisodeID:   c.episodeID,
		State:       prev,
		Action:      int(action),
		Reward:      res.Reward,
		NextState:   res.Observation,
		Done:        res.Terminated,
		Ply:         c.episodeSteps,
		CollectedAt: time.Now(),
	}

	c.episodeSteps++
	c.episodeRet += res.Reward

	if err := c.buffer.Add(tr); err != nil {
		return err
	}

	c.logger.Debug().
		Str("transition_id", tr.ID).
		Str("episode_id", tr.EpisodeID).
		Int("action", tr.Action).
		Float64("reward", tr.Reward).
		Bool("done", tr.Done).
		Msg("Collected transition")

	if res.Terminated {
		c.logger.Info().
			Str("episode_id", c.episodeID).
			Int("steps", c.episodeSteps).
			Float64("return", c.episodeRet).
			Msg("Episode ended, experience collection finalized")
	}

	return nil
}

// EpisodeSteps returns the number of steps recorded for the current
// episode.
func (c *Collector) EpisodeSteps() int {
	return c.episodeSteps
}

// EpisodeReturn returns the summed reward recorded for the current
// episode.
func (c *Collector) EpisodeReturn() float64 {
	return c.episodeRet
}
