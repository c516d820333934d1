package game

// This file contains run-level outcome bookkeeping for episode drivers.

// Stats aggregates episode outcomes across a run, from the acting agent's
// perspective.
type Stats struct {
	Episodes     int
	Wins         int
	Losses       int
	Draws        int
	IllegalMoves int
	TotalReward  float64
	TotalSteps   int
}

// RecordEpisode folds the terminal StepResult of one episode into the
// aggregate. Results with reward above zero count as wins, below zero as
// losses (or illegal moves when flagged), and zero as draws.
func (s *Stats) RecordEpisode(res StepResult, steps int) {
	s.Episodes++
	s.TotalReward += res.Reward
	s.TotalSteps += steps

	if invalid, ok := res.Info[InfoInvalidMove].(bool); ok && invalid {
		s.IllegalMoves++
		return
	}
	switch {
	case res.Reward > 0:
		s.Wins++
	case res.Reward < 0:
		s.Losses++
	default:
		s.Draws++
	}
}

// WinRate returns the fraction of episodes won, or 0 before any episode
// completes.
func (s *Stats) WinRate() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Episodes)
}

// MeanReward returns the average terminal reward per episode.
func (s *Stats) MeanReward() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return s.TotalReward / float64(s.Episodes)
}
