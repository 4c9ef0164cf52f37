package xlog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing human-readable console output to
// stderr at the given level. An unrecognized level string falls back to
// zerolog.InfoLevel rather than erroring, since log-level configuration
// should never be able to abort a run.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
