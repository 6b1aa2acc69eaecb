package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/boardd/internal/task"
)

// handleListTasks returns all tasks as an unordered array.
func (s *Server) handleListTasks(c echo.Context) error {
	tasks, err := s.tasks.List(c.Request().Context())
	if err != nil {
		return s.httpError(c, err, "failed to fetch tasks")
	}
	return c.JSON(http.StatusOK, tasks)
}

// handleCreateTask creates a task from the request body.
func (s *Server) handleCreateTask(c echo.Context) error {
	var req task.CreateRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid create task request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := s.tasks.Create(c.Request().Context(), &req)
	if err != nil {
		return s.httpError(c, err, "failed to create task")
	}
	return c.JSON(http.StatusOK, created)
}

// handleUpdateTask merges a partial update over an existing task.
func (s *Server) handleUpdateTask(c echo.Context) error {
	var req task.UpdateRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid update task request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := s.tasks.Update(c.Request().Context(), &req)
	if err != nil {
		return s.httpError(c, err, "failed to update task")
	}
	return c.JSON(http.StatusOK, updated)
}

// handleDeleteTask removes the task named by the id query parameter.
func (s *Server) handleDeleteTask(c echo.Context) error {
	id := c.QueryParam("id")
	if err := s.tasks.Delete(c.Request().Context(), id); err != nil {
		return s.httpError(c, err, "failed to delete task")
	}
	return c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
