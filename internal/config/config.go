// Package config loads engine configuration from a TOML file with
// environment variable overrides, and can watch the file for live reload.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunable settings of the engine core.
type Config struct {
	// TickRate is the driver loop frequency in ticks per second.
	TickRate int `toml:"tick_rate" env:"REVERIE_TICK_RATE"`

	// QueueCapacity bounds the dispatcher's pending event queue.
	QueueCapacity int `toml:"queue_capacity" env:"REVERIE_QUEUE_CAPACITY"`

	// EventBudget caps how many queued events one tick may process.
	// 0 means no limit.
	EventBudget int `toml:"event_budget" env:"REVERIE_EVENT_BUDGET"`

	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `toml:"log_level" env:"REVERIE_LOG_LEVEL"`

	// Debug enables per-dispatch debug logging in the dispatcher.
	Debug bool `toml:"debug" env:"REVERIE_DEBUG"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		TickRate:      20,
		QueueCapacity: 1000,
		EventBudget:   50,
		LogLevel:      "info",
	}
}

// Load reads configuration from the given TOML file, then applies
// environment variable overrides. A missing file is not an error; the
// defaults apply. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No file, defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("queue_capacity must be positive, got %d", c.QueueCapacity)
	}
	if c.EventBudget < 0 {
		return fmt.Errorf("event_budget must be non-negative, got %d", c.EventBudget)
	}
	return nil
}
