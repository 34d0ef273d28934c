package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls handler format, level and optional Sentry forwarding.
// Field tags follow caarlos0/env so the struct can be embedded in service config.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Sentry SentryConfig
}

// New builds a logger writing to w (stdout when nil). Context extractors
// run on every record, for every destination.
func New(cfg Config, w io.Writer, extractors ...ContextExtractor) (*slog.Logger, error) {
	if w == nil {
		w = os.Stdout
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var out slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "json":
		out = slog.NewJSONHandler(w, opts)
	case "text":
		out = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	if sentryHandler := newSentryHandler(cfg.Sentry, out); sentryHandler != nil {
		out = newFanout(out, sentryHandler)
	}

	return slog.New(newContextHandler(out, extractors...)), nil
}

// NewNope returns a logger that discards everything.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps debug, info, warn/warning and error to slog levels.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
