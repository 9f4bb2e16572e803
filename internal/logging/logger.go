package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/royalrinse/carwash-booking/internal/config"
)

// New constructs the service logger. Defaults to JSON on stdout at info level
// when the config values are empty or unparseable.
func New(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err == nil {
		level = parsed
	}

	output := io.Writer(os.Stdout)
	if strings.ToLower(strings.TrimSpace(cfg.LogFormat)) == "console" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("app", "carwash-booking").
		Logger()
}
