// Package server exposes the dashboard datasets over HTTP as JSON endpoints.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"riskboard/internal/contract"
)

// Server wires the pipeline endpoints onto a chi router.
type Server struct {
	router *chi.Mux
	cfg    *contract.Config
	mgr    contract.CacheManager
}

// NewServer creates a new Server bound to the given base config. Per-request
// filter parameters are layered on top of a clone of this config.
func NewServer(cfg *contract.Config, mgr contract.CacheManager) *Server {
	s := &Server{
		router: chi.NewRouter(),
		cfg:    cfg,
		mgr:    mgr,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures HTTP middleware.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Get("/api/trend", s.handleTrend)
	s.router.Get("/api/scatter", s.handleScatter)
	s.router.Get("/api/error-rates", s.handleErrorRates)
	s.router.Get("/api/summary", s.handleSummary)
	s.router.Get("/api/options", s.handleOptions)
	s.router.Get("/api/runs", s.handleRuns)
}

// Handler returns the root HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the HTTP server until the context is cancelled, then
// drains in-flight requests before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
