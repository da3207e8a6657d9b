// Package http exposes the engine over an HTTP API.
//
// Internal errors never reach clients as raw text: handlers log the
// detail and return generic status messages.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/solaceworks/solaced/internal/contexttracker"
	"github.com/solaceworks/solaced/internal/orchestrator"
)

// Server provides the HTTP endpoints for solaced.
type Server struct {
	echo    *echo.Echo
	engine  *orchestrator.Engine
	tracker *contexttracker.Tracker
	logger  *zap.Logger
	config  *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// NewServer creates a new HTTP server.
func NewServer(engine *orchestrator.Engine, tracker *contexttracker.Tracker, logger *zap.Logger, cfg *Config) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if tracker == nil {
		return nil, fmt.Errorf("tracker cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 8080,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:    e,
		engine:  engine,
		tracker: tracker,
		logger:  logger,
		config:  cfg,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.echo.Group("/api/v1")

	v1.POST("/query", s.handleQuery)
	v1.POST("/therapy", s.handleTherapy)
	v1.POST("/sentiment", s.handleSentiment)
	v1.POST("/journal", s.handleJournal)
	v1.POST("/recommendations/mood", s.handleMoodRecommendations)
	v1.POST("/insights/progress", s.handleProgressInsights)

	v1.GET("/resources/search", s.handleSearchResources)
	v1.POST("/documents", s.handleAddDocument)

	v1.GET("/users", s.handleListUsers)
	v1.POST("/context/update", s.handleUpdateContext)
	v1.GET("/context/:userID", s.handleGetContext)
	v1.GET("/context/:userID/memory", s.handleGetMemory)
	v1.GET("/context/:userID/summary", s.handleGetSummary)
	v1.DELETE("/context/:userID", s.handleClearUserData)
	v1.PUT("/context/:userID/preferences", s.handleUpdatePreferences)
	v1.POST("/context/:userID/session", s.handleIncrementSession)
	v1.POST("/context/:userID/goals", s.handleAddGoal)
	v1.POST("/context/:userID/notes", s.handleAddProgressNote)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Echo returns the underlying echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
