package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/termsnake/config"
)

// setupLogging points the global logger at the log file named in cfg, since
// the terminal itself is taken by the game. Every line carries an id of the
// current run. When the file cannot be opened logging is turned off and nil
// is returned.
func setupLogging(cfg config.Config) *os.File {
	level, levelErr := zerolog.ParseLevel(cfg.LogLevel)
	if levelErr != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return nil
	}

	log.Logger = zerolog.New(f).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()

	if levelErr != nil {
		log.Warn().Err(levelErr).Str("level", cfg.LogLevel).Msg("Unknown log level, using info")
	}
	return f
}
