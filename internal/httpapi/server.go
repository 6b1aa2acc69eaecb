// Package httpapi provides the HTTP API for boardd.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/boardd/internal/column"
	"github.com/fyrsmithlabs/boardd/internal/task"
)

// Server provides HTTP endpoints for boardd.
type Server struct {
	echo    *echo.Echo
	tasks   task.Service
	columns column.Service
	metrics *Metrics
	logger  *zap.Logger
	addr    string
}

// NewServer creates a new HTTP server serving the task and column services.
func NewServer(tasks task.Service, columns column.Service, logger *zap.Logger, addr string) (*Server, error) {
	if tasks == nil {
		return nil, errors.New("task service is required")
	}
	if columns == nil {
		return nil, errors.New("column service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	m := NewMetrics(logger)

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.Middleware())
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
		tasks:   tasks,
		columns: columns,
		metrics: m,
		logger:  logger,
		addr:    addr,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", s.metrics.Handler())

	s.echo.GET("/tasks", s.handleListTasks)
	s.echo.POST("/tasks", s.handleCreateTask)
	s.echo.PUT("/tasks", s.handleUpdateTask)
	s.echo.DELETE("/tasks", s.handleDeleteTask)

	s.echo.GET("/columns", s.handleListColumns)
	s.echo.POST("/columns", s.handleCreateColumn)
	s.echo.DELETE("/columns", s.handleDeleteColumn)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// httpError maps service errors to HTTP status codes. Storage failures get
// a generic message; the original error is logged server-side only.
func (s *Server) httpError(c echo.Context, err error, generic string) error {
	switch {
	case errors.Is(err, task.ErrMissingID), errors.Is(err, column.ErrMissingID):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		s.logger.Error(generic, zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, generic)
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.addr))
	return s.echo.Start(s.addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
