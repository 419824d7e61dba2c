// Package server exposes the todo service over HTTP
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/thenoetrevino/todoapi/internal/app"
	"github.com/thenoetrevino/todoapi/internal/config"
	todoservice "github.com/thenoetrevino/todoapi/internal/services/todo"
)

const defaultShutdownTimeout = 5 * time.Second

// pinger reports storage reachability for the health endpoint
type pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the todo HTTP API
type Server struct {
	cfg        config.ServerConfig
	todos      todoservice.Service
	health     pinger
	logger     *slog.Logger
	metrics    *Metrics
	validator  *payloadValidator
	httpServer *http.Server
}

// NewServer wires the application's services behind the HTTP routes
func NewServer(cfg *config.Config, application *app.App) (*Server, error) {
	validator, err := newPayloadValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to build request validator: %w", err)
	}

	logger := application.Logger()
	s := &Server{
		cfg:       cfg.Server,
		todos:     application.TodoService,
		health:    application,
		logger:    logger,
		metrics:   NewMetrics(),
		validator: validator,
	}

	handler := chain(s.routes(),
		withRequestID,
		withAccessLog(logger, s.metrics),
		withRecovery(logger, s.metrics),
		newCORS(cfg.CORS, logger).Handler,
	)

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Metrics returns the server's request counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start listens on the configured address and serves until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled, then shuts
// down gracefully, waiting up to the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.logger.Info("server starting", "addr", listener.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, shutting down")
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}
