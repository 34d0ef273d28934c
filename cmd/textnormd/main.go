// Command textnormd serves slug, name and email normalization over HTTP.
//
// Configuration comes from the environment; see server.Config and
// logger.Config for variable names.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/textnorm/internal/server"
	"github.com/dmitrymomot/textnorm/pkg/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		log.Fatalf("textnormd: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := server.LoadConfig()
	if err != nil {
		return err
	}

	lg, err := logger.New(cfg.Log, os.Stdout, server.RequestIDExtractor())
	if err != nil {
		return err
	}
	defer logger.Flush(2 * time.Second)
	slog.SetDefault(lg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv, err := server.New(cfg, lg, reg)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
