package server

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/textnorm/pkg/logger"
)

// Config is read from the environment.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	// MaxInputBytes bounds the text field of every request.
	MaxInputBytes int `env:"MAX_INPUT_BYTES" envDefault:"16384"`
	Log           logger.Config
}

// LoadConfig parses Config from environment variables.
func LoadConfig() (Config, error) {
	return env.ParseAs[Config]()
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 5 * time.Second
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 10 * time.Second
	}
	if c.MaxInputBytes <= 0 {
		c.MaxInputBytes = 16 << 10
	}
	return c
}
