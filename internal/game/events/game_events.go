package events

import (
	"time"
)

// Event type constants
const (
	TypeEpisodeStarted = "episode.started"
	TypeEpisodeEnded   = "episode.ended"
	TypeMovePlayed     = "move.played"
	TypeIllegalMove    = "move.illegal"
)

// Episode results, from the acting agent's perspective.
const (
	ResultWin         = "win"
	ResultLoss        = "loss"
	ResultDraw        = "draw"
	ResultIllegalMove = "illegal_move"
)

// EpisodeStartedEvent is published when an episode begins (on reset).
type EpisodeStartedEvent struct {
	BaseEvent
}

// NewEpisodeStartedEvent creates a new EpisodeStartedEvent.
func NewEpisodeStartedEvent(episodeID string) *EpisodeStartedEvent {
	return &EpisodeStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeEpisodeStarted,
			Time:      time.Now(),
			Episode:   episodeID,
		},
	}
}

// EpisodeEndedEvent is published when an episode reaches a terminal state.
type EpisodeEndedEvent struct {
	BaseEvent
	Result   string
	Reward   float64
	Plies    int
	Duration time.Duration
}

// NewEpisodeEndedEvent creates a new EpisodeEndedEvent.
func NewEpisodeEndedEvent(episodeID, result string, reward float64, plies int, duration time.Duration) *EpisodeEndedEvent {
	return &EpisodeEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeEpisodeEnded,
			Time:      time.Now(),
			Episode:   episodeID,
		},
		Result:   result,
		Reward:   reward,
		Plies:    plies,
		Duration: duration,
	}
}

// MovePlayedEvent is published for every applied ply, agent and opponent
// alike.
type MovePlayedEvent struct {
	BaseEvent
	Player int
	Cell   int
	Ply    int
}

// NewMovePlayedEvent creates a new MovePlayedEvent.
func NewMovePlayedEvent(episodeID string, player, cell, ply int) *MovePlayedEvent {
	return &MovePlayedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMovePlayed,
			Time:      time.Now(),
			Episode:   episodeID,
		},
		Player: player,
		Cell:   cell,
		Ply:    ply,
	}
}

// IllegalMoveEvent is published when a step takes the illegal-move branch.
// The board is never mutated on this path.
type IllegalMoveEvent struct {
	BaseEvent
	Action int
	Ply    int
}

// NewIllegalMoveEvent creates a new IllegalMoveEvent.
func NewIllegalMoveEvent(episodeID string, action, ply int) *IllegalMoveEvent {
	return &IllegalMoveEvent{
		BaseEvent: BaseEvent{
			EventType: TypeIllegalMove,
			Time:      time.Now(),
			Episode:   episodeID,
		},
		Action: action,
		Ply:    ply,
	}
}
