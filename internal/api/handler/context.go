package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticketapp/ticket-system/internal/api/middleware"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// ctxWorkspace extracts the workspace injected by the Workspace middleware.
// Its absence is a wiring bug, not a client error.
func ctxWorkspace(c echo.Context) (ports.Workspace, error) {
	ws, ok := c.Get(middleware.WorkspaceKey).(ports.Workspace)
	if !ok {
		return ports.Workspace{}, echo.NewHTTPError(http.StatusInternalServerError, "workspace not resolved")
	}
	return ws, nil
}
