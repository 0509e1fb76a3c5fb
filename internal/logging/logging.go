package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the application logger. JSON to stdout by default;
// LOG_FORMAT=console switches to the human-readable writer for local
// development.
func New(level, format string) *zerolog.Logger {
	parsed := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		parsed = lvl
	}

	output := zerolog.New(os.Stdout)
	if strings.EqualFold(strings.TrimSpace(format), "console") {
		output = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	log := output.
		Level(parsed).
		With().
		Timestamp().
		Str("app", "fadebook-api").
		Logger()

	return &log
}
