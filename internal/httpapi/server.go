// Package httpapi exposes the parse, suggestion and due-date operations over
// HTTP with gin.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeBiancalana/quickdate/internal/config"
	"github.com/MikeBiancalana/quickdate/internal/engine"
	"github.com/MikeBiancalana/quickdate/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Options configures New
type Options struct {
	Server        config.ServerConfig
	TimeEnabled   bool
	DisplayLayout string
	Logger        *slog.Logger
}

// Server serves the HTTP API
type Server struct {
	engine        *engine.Engine
	gin           *gin.Engine
	logger        *slog.Logger
	addr          string
	timeEnabled   bool
	displayLayout string
}

// New creates a server backed by eng
func New(eng *engine.Engine, opts Options) (*Server, error) {
	if eng == nil {
		return nil, errors.New("engine is required")
	}
	mode := opts.Server.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	srv := &Server{
		engine:        eng,
		gin:           gin.New(),
		logger:        logger.OrDefault(opts.Logger),
		addr:          opts.Server.Addr,
		timeEnabled:   opts.TimeEnabled,
		displayLayout: opts.DisplayLayout,
	}

	srv.gin.Use(gin.Recovery(), requestID(), accessLog(srv.logger))
	if opts.Server.RateLimitPerMin > 0 {
		srv.gin.Use(rateLimit(newRateLimiter(opts.Server.RateLimitPerMin), srv.logger))
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv *Server) mapHandlers() {
	srv.gin.GET("/health", srv.healthCheck)

	api := srv.gin.Group("/api/v1")
	api.GET("/parse", srv.handleParse)
	api.GET("/suggestions", srv.handleSuggestions)
	api.GET("/due", srv.handleDue)
}

// Handler returns the router, mainly for tests
func (srv *Server) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (srv *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              srv.addr,
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.logger.Info("http server listening", "addr", srv.addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	srv.logger.Info("http server shutting down")
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
