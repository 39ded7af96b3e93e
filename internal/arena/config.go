package arena

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrConfig marks an invalid arena configuration.
var ErrConfig = errors.New("invalid arena configuration")

// Config controls how matches are run and paced. Pacing delays exist
// for spectation; zero delays run a game as fast as it decides.
type Config struct {
	Games         int           // number of games to run
	Seed          uint64        // base seed; 0 derives one from the clock
	ActionDelay   time.Duration // pause before each applied action
	EightCutDelay time.Duration // pause before a pending eight-cut clears
	MaxSteps      int           // watchdog ceiling per game
	LogLevel      string
}

// DefaultConfig returns the tuning used when the environment sets
// nothing.
func DefaultConfig() Config {
	return Config{
		Games:         1,
		EightCutDelay: 500 * time.Millisecond,
		MaxSteps:      2000,
		LogLevel:      "info",
	}
}

// FromEnv builds a Config from ARENA_* environment variables on top
// of the defaults.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if v := os.Getenv("ARENA_GAMES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: ARENA_GAMES=%q: %v", ErrConfig, v, err)
		}
		cfg.Games = n
	}
	if v := os.Getenv("ARENA_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: ARENA_SEED=%q: %v", ErrConfig, v, err)
		}
		cfg.Seed = n
	}
	if v := os.Getenv("ARENA_DELAY_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: ARENA_DELAY_MS=%q: %v", ErrConfig, v, err)
		}
		cfg.ActionDelay = time.Duration(n) * time.Millisecond
	}
	if v := os.Getenv("ARENA_EIGHT_CUT_DELAY_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: ARENA_EIGHT_CUT_DELAY_MS=%q: %v", ErrConfig, v, err)
		}
		cfg.EightCutDelay = time.Duration(n) * time.Millisecond
	}
	if v := os.Getenv("ARENA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations a runner cannot honor.
func (c Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be at least 1, got %d", ErrConfig, c.Games)
	}
	if c.ActionDelay < 0 || c.EightCutDelay < 0 {
		return fmt.Errorf("%w: negative delay", ErrConfig)
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("%w: max steps must be at least 1, got %d", ErrConfig, c.MaxSteps)
	}
	return nil
}
