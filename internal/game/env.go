package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gridmind/TicTacToeRL/internal/game/events"
)

// InfoInvalidMove is the only info key the step contract carries. It is
// present (and true) exactly on the illegal-move branch.
const InfoInvalidMove = "invalid_move"

// Info is the auxiliary mapping returned by Reset and Step.
type Info map[string]any

// StepResult is the full return tuple of a Step call. Observation is a
// value copy of the board; mutating it never affects the environment.
type StepResult struct {
	Observation Board
	Reward      float64
	Terminated  bool
	Truncated   bool
	Info        Info
}

// Environment is a two-player Tic-Tac-Toe simulator with the step/reset
// interaction contract. The acting agent always plays PlayerX and moves
// first; the embedded opponent plays PlayerO and its reply resolves
// synchronously inside the same Step call. Episodes never truncate by
// length, so Truncated is always false.
//
// An Environment instance is for sequential single-threaded use; callers
// must not invoke Step concurrently on the same instance.
type Environment struct {
	id       string
	board    Board
	turn     Cell
	done     bool
	ply      int
	started  time.Time
	opponent OpponentPolicy
	bus      events.Publisher
	logger   zerolog.Logger
}

// NewEnvironment creates an environment and starts its first episode.
// A nil opponent defaults to a time-seeded RandomOpponent; a nil bus
// disables event publication.
func NewEnvironment(opponent OpponentPolicy, bus events.Publisher) *Environment {
	if opponent == nil {
		opponent = NewRandomOpponent(nil)
	}
	e := &Environment{
		opponent: opponent,
		bus:      bus,
		logger:   log.With().Str("component", "environment").Logger(),
	}
	e.Reset()
	return e
}

// ID returns the current episode's unique identifier. It changes on every
// Reset.
func (e *Environment) ID() string { return e.id }

// Turn returns whose move is next. Meaningless once the episode is
// terminal.
func (e *Environment) Turn() Cell { return e.turn }

// Done reports whether the episode is terminal.
func (e *Environment) Done() bool { return e.done }

// Board returns a snapshot of the current board.
func (e *Environment) Board() Board { return e.board }

// Render returns the textual board dump: one line per row, space-separated
// glyphs, followed by a blank line. It never mutates state.
func (e *Environment) Render() string { return e.board.String() }

// Reset discards all episode state and starts a fresh episode: all cells
// empty, PlayerX to move, terminal flag cleared. Callable at any time,
// including mid-episode.
func (e *Environment) Reset() (Board, Info) {
	e.board = Board{}
	e.turn = PlayerX
	e.done = false
	e.ply = 0
	e.id = uuid.New().String()
	e.started = time.Now()

	e.publish(events.NewEpisodeStartedEvent(e.id))
	e.logger.Debug().Str("episode_id", e.id).Msg("Episode reset")

	return e.board, Info{}
}

// Step applies the agent's action and, when the episode continues, the
// opponent's reply, returning the resulting observation and reward
// signals. Illegal moves (terminal episode, out-of-range action, occupied
// cell) never mutate the board; they terminate the episode with the
// illegal-move reward and info["invalid_move"] = true.
func (e *Environment) Step(action Action) StepResult {
	info := Info{}

	if e.done || !action.InRange() || e.board[action] != Empty {
		wasDone := e.done
		e.done = true
		info[InfoInvalidMove] = true

		e.publish(events.NewIllegalMoveEvent(e.id, int(action), e.ply))
		e.logger.Debug().
			Str("episode_id", e.id).
			Int("action", int(action)).
			Bool("was_terminal", wasDone).
			Msg("Illegal move")
		if !wasDone {
			e.endEpisode(events.ResultIllegalMove, RewardIllegal())
		}
		return e.result(RewardIllegal(), info)
	}

	e.place(int(action), PlayerX)

	if IsWin(e.board, PlayerX) {
		e.done = true
		e.endEpisode(events.ResultWin, RewardWin())
		return e.result(RewardWin(), info)
	}
	if e.board.Full() {
		e.done = true
		e.endEpisode(events.ResultDraw, RewardDraw())
		return e.result(RewardDraw(), info)
	}

	e.turn = PlayerO

	// Opponent reply resolves before control returns; callers never
	// observe the intermediate single-ply state.
	if empty := e.board.EmptyCells(); len(empty) > 0 {
		e.place(e.opponent.Pick(empty), PlayerO)

		if IsWin(e.board, PlayerO) {
			e.done = true
			e.endEpisode(events.ResultLoss, RewardLoss())
			return e.result(RewardLoss(), info)
		}
		if e.board.Full() {
			e.done = true
			e.endEpisode(events.ResultDraw, RewardDraw())
			return e.result(RewardDraw(), info)
		}
	}

	e.turn = PlayerX
	return e.result(0.0, info)
}

func (e *Environment) place(idx int, player Cell) {
	e.board[idx] = player
	e.ply++
	e.publish(events.NewMovePlayedEvent(e.id, int(player), idx, e.ply))
}

func (e *Environment) endEpisode(result string, reward float64) {
	e.publish(events.NewEpisodeEndedEvent(e.id, result, reward, e.ply, time.Since(e.started)))
	e.logger.Debug().
		Str("episode_id", e.id).
		Str("result", result).
		Float64("reward", reward).
		Int("plies", e.ply).
		Msg("Episode ended")
}

func (e *Environment) result(reward float64, info Info) StepResult {
	return StepResult{
		Observation: e.board,
		Reward:      reward,
		Terminated:  e.done,
		Truncated:   false,
		Info:        info,
	}
}

func (e *Environment) publish(ev events.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}
