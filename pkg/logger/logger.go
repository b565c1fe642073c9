package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config holds logger configuration.
type Config struct {
	Level             slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN         string     `env:"SENTRY_DSN"`
	SentryEnvironment string     `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// SentryMinLevel is the lowest level forwarded to Sentry as a log entry.
	// Errors always create Sentry issues.
	SentryMinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"warn"`
}

// New creates a JSON logger writing to w at the given level.
// A nil writer means stdout.
func New(w io.Writer, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(newContextHandler(h, extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
