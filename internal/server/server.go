package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/textnorm/pkg/health"
)

const maxHeaderBytes = 1 << 20

// Server exposes slug, name and email normalization over HTTP.
type Server struct {
	log     *slog.Logger
	metrics *metrics
	router  chi.Router
	cfg     Config
}

// New builds the router and registers metrics with reg.
// The same registry is served on /metrics.
func New(cfg Config, log *slog.Logger, reg *prometheus.Registry) (*Server, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg.withDefaults(),
		log:     log,
		metrics: m,
	}
	s.router = s.routes(reg)
	return s, nil
}

func (s *Server) routes(reg *prometheus.Registry) chi.Router {
	r := chi.NewRouter()
	r.Use(
		requestID,
		middleware.RealIP,
		accessLog(s.log, s.metrics),
		recoverer(s.log),
	)

	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(selfChecks(),
		health.WithTimeout(s.cfg.RequestTimeout),
		health.WithLogger(s.log),
	))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Route("/v1", func(r chi.Router) {
		r.Use(
			middleware.AllowContentType("application/json"),
			middleware.Timeout(s.cfg.RequestTimeout),
		)
		r.Post("/slug", s.handleSlug)
		r.Post("/name", s.handleName)
		r.Post("/email", s.handleEmail)
	})

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully
// within cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener. The listener is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.RequestTimeout * 2,
		IdleTimeout:       s.cfg.ReadTimeout * 6,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.log.Error("server stopped with error", slog.Any("error", err))
		return err
	}
	s.log.Info("shutdown completed")
	return nil
}
