package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the application logger: human-readable console output during
// development, JSON everywhere else.
func New(env string) zerolog.Logger {
	if env == "development" {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(writer).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
