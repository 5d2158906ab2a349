// Package http serves the engine's REST API.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
)

// Server wraps the stdlib server around the gin engine and owns its
// lifecycle.
type Server struct {
	srv    *http.Server
	cfg    config.ServerConfig
	logger logging.Logger
}

// NewServer binds engine to the configured address.
func NewServer(cfg config.ServerConfig, engine *gin.Engine, logger logging.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		cfg:    cfg,
		logger: logger.Named("http.server"),
	}
}

// Run serves until the listener fails or Shutdown is called.  A clean
// shutdown returns nil.
func (s *Server) Run() error {
	s.logger.Info("http server listening", logging.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the configured grace period.
func (s *Server) Shutdown(ctx context.Context) error {
	grace := s.cfg.ShutdownTimeout
	if grace > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, grace)
		defer cancel()
	}
	s.logger.Info("http server shutting down")
	return s.srv.Shutdown(ctx)
}
