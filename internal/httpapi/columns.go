package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/boardd/internal/column"
)

// handleListColumns returns all columns sorted by order, seeding the four
// defaults when the collection is empty.
func (s *Server) handleListColumns(c echo.Context) error {
	columns, err := s.columns.List(c.Request().Context())
	if err != nil {
		return s.httpError(c, err, "failed to fetch columns")
	}
	return c.JSON(http.StatusOK, columns)
}

// handleCreateColumn creates a column from the request body.
func (s *Server) handleCreateColumn(c echo.Context) error {
	var req column.CreateRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid create column request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := s.columns.Create(c.Request().Context(), &req)
	if err != nil {
		return s.httpError(c, err, "failed to create column")
	}
	return c.JSON(http.StatusOK, created)
}

// handleDeleteColumn removes the column named by the id query parameter.
// No existence check; tasks referencing the column are left orphaned.
func (s *Server) handleDeleteColumn(c echo.Context) error {
	id := c.QueryParam("id")
	if err := s.columns.Delete(c.Request().Context(), id); err != nil {
		return s.httpError(c, err, "failed to delete column")
	}
	return c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
