// Package config holds the runtime settings of termsnake. The game takes no
// command line flags; every setting has a default that an environment
// variable can override.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
)

type Config struct {
	TickInterval time.Duration // pause between the end of one tick and the next
	QuitGrace    time.Duration // wait after restoring the terminal before exiting
	Seed         int64         // 0 picks a seed from the clock
	LogPath      string
	LogLevel     string
	Cover        bool // show the title screen first
	Status       bool // draw the state dump on the bottom row
}

func Default() Config {
	return Config{
		TickInterval: 50 * time.Millisecond,
		QuitGrace:    100 * time.Millisecond,
		LogPath:      filepath.Join(os.TempDir(), "termsnake.log"),
		LogLevel:     "info",
		Cover:        true,
		Status:       true,
	}
}

// Load applies the SNAKE_* variables found through getenv on top of the
// defaults. Every malformed variable is reported, not just the first one.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()

	var merr *multierror.Error

	if err := duration(getenv, "SNAKE_TICK", &cfg.TickInterval); err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := duration(getenv, "SNAKE_GRACE", &cfg.QuitGrace); err != nil {
		merr = multierror.Append(merr, err)
	}

	if v := getenv("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("SNAKE_SEED: %w", err))
		} else {
			cfg.Seed = seed
		}
	}

	if v := getenv("SNAKE_LOG"); v != "" {
		cfg.LogPath = v
	}
	if v := getenv("SNAKE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := boolean(getenv, "SNAKE_COVER", &cfg.Cover); err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := boolean(getenv, "SNAKE_STATUS", &cfg.Status); err != nil {
		merr = multierror.Append(merr, err)
	}

	return cfg, merr.ErrorOrNil()
}

// SeedOrNow returns the configured seed, or one derived from now when none
// was set.
func (c Config) SeedOrNow(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}

func duration(getenv func(string) string, key string, dst *time.Duration) error {
	v := getenv(key)
	if v == "" {
		return nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s: duration must be positive, got %v", key, d)
	}

	*dst = d
	return nil
}

func boolean(getenv func(string) string, key string, dst *bool) error {
	v := getenv(key)
	if v == "" {
		return nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	*dst = b
	return nil
}
