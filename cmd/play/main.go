package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gridmind/TicTacToeRL/internal/agent"
	"github.com/gridmind/TicTacToeRL/internal/config"
	"github.com/gridmind/TicTacToeRL/internal/game"
	"github.com/gridmind/TicTacToeRL/internal/game/events"
	"github.com/gridmind/TicTacToeRL/internal/game/events/subscribers"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Int64("seed", 0, "RNG seed (0 for time-based)")
	verbose := flag.Bool("verbose", false, "Log every environment event")
	flag.Parse()

	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", *seed).Msg("Starting demo episode")
	rng := rand.New(rand.NewSource(*seed))

	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("demo_logger", log.Logger, zerolog.DebugLevel))

	env := game.NewEnvironment(game.NewRandomOpponent(rng), bus)
	player := agent.NewRandomAgent(rng)

	fmt.Print(env.Render())

	var last game.StepResult
	for step := 1; !env.Done(); step++ {
		action := player.SelectAction(env.Board())
		last = env.Step(action)

		fmt.Printf("step %d: action=%d reward=%.1f terminated=%v\n", step, action, last.Reward, last.Terminated)
		fmt.Print(env.Render())
	}

	switch {
	case last.Reward > 0:
		log.Info().Msg("Agent wins")
	case last.Reward < 0:
		log.Info().Msg("Agent loses")
	default:
		log.Info().Msg("Draw")
	}
}
