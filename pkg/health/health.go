package health

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout = 5 * time.Second

	// StatusHealthy indicates all checks passed.
	StatusHealthy = "healthy"
	// StatusUnhealthy indicates one or more checks failed.
	StatusUnhealthy = "unhealthy"
)

// CheckFunc reports a problem by returning an error.
type CheckFunc func(ctx context.Context) error

// Checks maps check names to their functions.
type Checks map[string]CheckFunc

// Response is the aggregated result of a readiness run.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check is the result of a single named check.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures Run and ReadinessHandler.
type Option func(*config)

// WithTimeout bounds the whole run. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger logs every failed check at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout: defaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Expect builds a check that runs fn against a fixed input and fails with
// ErrCheckFailed when the output differs from want.
func Expect(fn func() string, want string) CheckFunc {
	return func(context.Context) error {
		if got := fn(); got != want {
			return fmt.Errorf("%w: expected %q, got %q", ErrCheckFailed, want, got)
		}
		return nil
	}
}

// Run executes all checks in parallel and aggregates their results.
func Run(ctx context.Context, checks Checks, opts ...Option) *Response {
	return run(ctx, checks, newConfig(opts...))
}

func run(ctx context.Context, checks Checks, cfg *config) *Response {
	if len(checks) == 0 {
		return &Response{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		results = make(map[string]Check, len(checks))
		status  = StatusHealthy
	)

	var g errgroup.Group
	for name, check := range checks {
		g.Go(func() error {
			result := Check{Status: StatusHealthy}
			if err := call(ctx, check); err != nil {
				result = Check{Status: StatusUnhealthy, Error: err.Error()}
				cfg.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.Any("error", err),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			results[name] = result
			if result.Status == StatusUnhealthy {
				status = StatusUnhealthy
			}
			return nil
		})
	}
	_ = g.Wait()

	return &Response{Status: status, Checks: results}
}

// call runs check and gives up once ctx is done, so a check that ignores
// its context cannot stall the readiness response.
func call(ctx context.Context, check CheckFunc) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("%w: panic: %v", ErrCheckFailed, r)
			}
		}()
		done <- check(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ErrCheckTimeout
	}
}
