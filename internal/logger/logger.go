package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	// Silent unless debug output is requested on the command line
	Configure(false, "info")
}

// Configure sets up the global logger. When enabled is false all log output
// is discarded, which keeps command output clean for piping.
func Configure(enabled bool, level string) {
	var output io.Writer = io.Discard
	if enabled {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	log = zerolog.New(output).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(parseLevel(level))
}

// New returns the configured logger instance
func New() zerolog.Logger {
	return log
}

// Component returns a logger tagged with a component name
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
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
