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
	"github.com/gridmind/TicTacToeRL/internal/experience"
	"github.com/gridmind/TicTacToeRL/internal/game"
	"github.com/gridmind/TicTacToeRL/internal/game/events"
	"github.com/gridmind/TicTacToeRL/internal/game/events/subscribers"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	episodes := flag.Int("episodes", -1, "Number of episodes to run (-1 to use config default)")
	seed := flag.Int64("seed", -1, "RNG seed (-1 to use config default, 0 for time-based)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *episodes == -1 {
		*episodes = cfg.Runner.Episodes
	}
	if *seed == -1 {
		*seed = cfg.Runner.Seed
	}
	if *logLevel == "" {
		*logLevel = cfg.Runner.LogLevel
	}

	setupLogging(*logLevel, cfg.Runner.LogFormat)

	// Hot-reload lets long runs pick up reward reshaping without restart
	config.WatchConfig(func() {
		log.Info().Str("file", config.ConfigFilePath()).Msg("Config reloaded")
	})

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	log.Info().
		Int("episodes", *episodes).
		Int64("seed", *seed).
		Bool("experience_enabled", cfg.Experience.Enabled).
		Msg("Starting episode runner")

	rng := rand.New(rand.NewSource(*seed))

	bus := events.NewEventBus()
	eventLogger := subscribers.NewLoggerSubscriber("runner_logger", log.Logger, zerolog.DebugLevel)
	eventLogger.SetEventFilter([]string{events.TypeEpisodeEnded, events.TypeIllegalMove})
	bus.Subscribe(eventLogger)

	env := game.NewEnvironment(game.NewRandomOpponent(rng), bus)
	player := agent.NewRandomAgent(rng)

	var buffer *experience.Buffer
	var collector *experience.Collector
	if cfg.Experience.Enabled {
		buffer = experience.NewBuffer(cfg.Experience.Capacity, log.Logger)
		collector = experience.NewCollector(buffer, log.Logger)
	}

	var stats game.Stats
	start := time.Now()

	for ep := 0; ep < *episodes; ep++ {
		env.Reset()
		if collector != nil {
			collector.StartEpisode(env.ID())
		}

		var last game.StepResult
		steps := 0
		for !env.Done() {
			prev := env.Board()
			action := player.SelectAction(prev)
			last = env.Step(action)
			steps++

			if collector != nil {
				if err := collector.Record(prev, action, last); err != nil {
					log.Error().Err(err).Msg("Failed to record transition")
				}
			}
		}

		stats.RecordEpisode(last, steps)

		if cfg.Runner.RenderEvery > 0 && (ep+1)%cfg.Runner.RenderEvery == 0 {
			fmt.Printf("Episode %d final board:\n%s", ep+1, env.Render())
		}
	}

	summary := log.Info().
		Int("episodes", stats.Episodes).
		Int("wins", stats.Wins).
		Int("losses", stats.Losses).
		Int("draws", stats.Draws).
		Int("illegal_moves", stats.IllegalMoves).
		Float64("win_rate", stats.WinRate()).
		Float64("mean_reward", stats.MeanReward()).
		Dur("elapsed", time.Since(start))
	if buffer != nil {
		summary = summary.
			Int("buffered_transitions", buffer.Len()).
			Int64("total_collected", buffer.TotalAdded()).
			Int64("dropped", buffer.TotalDropped())
	}
	summary.Msg("Run complete")
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" || os.Getenv("APP_ENV") == "production" {
		// JSON output for production
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
