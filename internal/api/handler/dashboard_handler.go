package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the aggregate ticket counts.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Stats handles GET /v1/tickets/stats.
//
// @Summary      Ticket counts by status
// @Tags         dashboard
// @Produce      json
// @Param        X-Workspace-ID  header    string  false  "Workspace id, falls back to default"
// @Success      200             {object}  domain.Stats
// @Failure      401             {object}  errorResponse
// @Failure      500             {object}  errorResponse
// @Router       /v1/tickets/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	ws, err := ctxWorkspace(c)
	if err != nil {
		return err
	}

	stats, err := ws.Tickets.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
