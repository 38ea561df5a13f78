// Package logger configures the global zerolog logger for the dfpwm command.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnv names the environment variable that selects the log level.
const LevelEnv = "LOG_LEVEL"

// ParseLevel maps debug, info, warn and error to zerolog levels. Anything
// else selects info.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init points the global logger at a console writer on w, with the level
// taken from LOG_LEVEL, and returns it.
func Init(w io.Writer) zerolog.Logger {
	level := ParseLevel(os.Getenv(LevelEnv))

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()

	log.Debug().
		Str("level", level.String()).
		Msg("logger initialized")

	return log.Logger
}
