package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game       GameConfig       `mapstructure:"game"`
	Runner     RunnerConfig     `mapstructure:"runner"`
	Experience ExperienceConfig `mapstructure:"experience"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Rewards RewardsConfig `mapstructure:"rewards"`
}

// RewardsConfig holds the reward shaping for episode outcomes, from the
// acting agent's perspective. Defaults match the standard contract:
// +1 win, -1 loss, 0 draw, -1 illegal move.
type RewardsConfig struct {
	Win         float64 `mapstructure:"win"`
	Loss        float64 `mapstructure:"loss"`
	Draw        float64 `mapstructure:"draw"`
	IllegalMove float64 `mapstructure:"illegal_move"`
}

// RunnerConfig holds episode runner configuration
type RunnerConfig struct {
	Episodes    int    `mapstructure:"episodes"`
	Seed        int64  `mapstructure:"seed"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	RenderEvery int    `mapstructure:"render_every"`
}

// ExperienceConfig holds experience collection settings
type ExperienceConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Capacity int  `mapstructure:"capacity"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Reward defaults
	v.SetDefault("game.rewards.win", 1.0)
	v.SetDefault("game.rewards.loss", -1.0)
	v.SetDefault("game.rewards.draw", 0.0)
	v.SetDefault("game.rewards.illegal_move", -1.0)

	// Runner defaults; seed 0 means time-seeded
	v.SetDefault("runner.episodes", 100)
	v.SetDefault("runner.seed", 0)
	v.SetDefault("runner.log_level", "info")
	v.SetDefault("runner.log_format", "console")
	v.SetDefault("runner.render_every", 0)

	// Experience defaults
	v.SetDefault("experience.enabled", true)
	v.SetDefault("experience.capacity", 10000)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/tictactoe-rl")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("TTT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If we have a specific config path and it doesn't exist, that's ok - use defaults
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Rewards.Win <= c.Game.Rewards.Loss {
		return fmt.Errorf("game.rewards.win must exceed game.rewards.loss")
	}

	if c.Runner.Episodes <= 0 {
		return fmt.Errorf("runner.episodes must be positive")
	}
	if c.Runner.RenderEvery < 0 {
		return fmt.Errorf("runner.render_every must be non-negative")
	}
	switch c.Runner.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("runner.log_level must be one of debug, info, warn, error")
	}
	switch c.Runner.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("runner.log_format must be console or json")
	}

	if c.Experience.Capacity <= 0 {
		return fmt.Errorf("experience.capacity must be positive")
	}

	return nil
}
