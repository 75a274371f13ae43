// Package logger configures the application's structured logging.
//
// It uses zerolog: a human-friendly console writer outside production,
// JSON to stderr in production. The returned logger is the root every
// request-scoped child logger derives from.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/mayett515/masterblog-api/internal/config"
)

// New builds the application's root logger from config.
//
// An unparseable log level falls back to info rather than failing
// startup.
func New(cfg *config.Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if !cfg.IsProduction() {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "masterblog-api").
		Str("env", cfg.Primary.Env).
		Logger()

	return &logger
}
