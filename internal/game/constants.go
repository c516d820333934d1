package game

import (
	"github.com/gridmind/TicTacToeRL/internal/config"
)

// Reward values resolve through the config layer so training runs can
// reshape them without rebuilding. Defaults follow the standard contract:
// +1 win, -1 loss, 0 draw/ongoing, -1 illegal move.

func RewardWin() float64 {
	return config.Get().Game.Rewards.Win
}

func RewardLoss() float64 {
	return config.Get().Game.Rewards.Loss
}

func RewardDraw() float64 {
	return config.Get().Game.Rewards.Draw
}

func RewardIllegal() float64 {
	return config.Get().Game.Rewards.IllegalMove
}
