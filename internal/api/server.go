// Package api binds the endpoint handlers to HTTP.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"solana-instruction-api/internal/config"
	"solana-instruction-api/internal/handler"
	klog "solana-instruction-api/internal/log"
	"solana-instruction-api/internal/observability"
)

// Server is the HTTP front of the instruction API.
type Server struct {
	cfg      *config.Config
	handlers *handler.Handlers
	metrics  *observability.Metrics
	router   chi.Router
	server   *http.Server
	logger   zerolog.Logger
	ln       net.Listener
}

// New creates a server for cfg. A nil metrics gets a fresh registry.
func New(cfg *config.Config, metrics *observability.Metrics) *Server {
	if metrics == nil {
		metrics = observability.NewMetrics("")
	}

	s := &Server{
		cfg:      cfg,
		handlers: handler.New(cfg.Policy()),
		metrics:  metrics,
		logger:   klog.WithComponent("api"),
	}
	s.router = s.routes()

	s.server = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the listener and serves in a background goroutine.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")
	return nil
}

// Addr returns the listener address (useful when bound to :0).
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.cfg.ListenAddr
}

// Stop gracefully shuts down the server, waiting at most the configured
// shutdown timeout for in-flight requests.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}
