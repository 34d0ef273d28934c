package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig enables forwarding of warnings and errors to Sentry.
// An empty DSN disables it.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// OnlyErrors stops warnings from being stored as Sentry logs.
	OnlyErrors bool `env:"SENTRY_ONLY_ERRORS"`
}

// newSentryHandler returns nil when Sentry is not configured or fails to
// initialize; the failure is reported through fallback.
func newSentryHandler(cfg SentryConfig, fallback slog.Handler) slog.Handler {
	if cfg.DSN == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(fallback).Error("sentry disabled: init failed", slog.String("error", err.Error()))
		return nil
	}

	logLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.OnlyErrors {
		logLevels = []slog.Level{slog.LevelError}
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background())
}

// Flush waits up to timeout for buffered Sentry events to be sent.
// It is a no-op when Sentry was never initialized.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
