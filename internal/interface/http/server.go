// Package http exposes the analytics engine over a JSON REST API.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumaster/analytics-engine/config"
	"github.com/edumaster/analytics-engine/pkg/logger"
)

// Server wraps the gin engine and the underlying http.Server.
type Server struct {
	engine *gin.Engine
	server *http.Server
	log    *logger.Logger
}

// NewServer assembles middleware and routes. limiter and metrics may be nil
// when the corresponding feature is disabled.
func NewServer(cfg config.HTTPConfig, handlers *Handlers, limiter Limiter, metrics *Metrics, log *logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(Recovery(log))
	engine.Use(RequestID())
	engine.Use(RequestLogger(log))
	if metrics != nil {
		engine.Use(metrics.Middleware())
	}
	if cfg.RateLimitEnabled && limiter != nil {
		engine.Use(RateLimit(limiter, log))
	}

	engine.GET("/healthz", handlers.Health)
	if metrics != nil {
		engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	v1 := engine.Group("/api/v1")
	users := v1.Group("/users/:userID")
	users.GET("/behavioral-analytics", handlers.GetBehavioralAnalytics)
	users.GET("/prediction", handlers.GetAcademicPrediction)
	users.GET("/dashboard", handlers.GetDashboard)
	users.GET("/reading-analytics", handlers.GetReadingAnalytics)
	users.GET("/quiz-stats", handlers.GetQuizStats)

	return &Server{
		engine: engine,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		log: log,
	}
}

// Start serves until the listener closes. It returns nil on graceful
// shutdown.
func (s *Server) Start() error {
	s.log.Info("http server listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http: server stopped: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
