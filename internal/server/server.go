package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dshills/codecloak/internal/service"
)

// Server is the local HTTP host for cloak and decloak.
type Server struct {
	svc     *service.Service
	version string
	engine  *gin.Engine
}

// New creates a Server backed by svc.
func New(svc *service.Service, version string) *Server {
	if svc == nil {
		panic("server.New: service must not be nil")
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{svc: svc, version: version}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), requestLogger(), securityHeaders())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.Health)

	v1 := s.engine.Group("/v1")
	v1.POST("/cloak", s.Cloak)
	v1.POST("/decloak", s.Decloak)
	v1.GET("/context", s.GetContext)
	v1.DELETE("/context", s.ClearContext)
	v1.GET("/context/stats", s.ContextStats)
	v1.GET("/keywords/:lang", s.ListKeywords)
	v1.POST("/keywords/:lang", s.AddKeyword)
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("Shutdown complete")
	return nil
}
