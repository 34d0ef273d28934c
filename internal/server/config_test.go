package server_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textnorm/internal/server"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := server.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 16384, cfg.MaxInputBytes)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "production", cfg.Log.Sentry.Environment)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("ADDR", "127.0.0.1:9000")
		t.Setenv("REQUEST_TIMEOUT", "250ms")
		t.Setenv("MAX_INPUT_BYTES", "512")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("SENTRY_DSN", "https://key@sentry.example/1")

		cfg, err := server.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
		assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
		assert.Equal(t, 512, cfg.MaxInputBytes)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "https://key@sentry.example/1", cfg.Log.Sentry.DSN)
	})

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := server.LoadConfig()
		assert.Error(t, err)
	})
}
