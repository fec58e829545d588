package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// RequireSession rejects requests whose workspace has no live session.
// It must run after Workspace.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ws, ok := c.Get(WorkspaceKey).(ports.Workspace)
			if !ok {
				return echo.NewHTTPError(http.StatusInternalServerError, "workspace not resolved")
			}

			authenticated, err := ws.Sessions.IsAuthenticated(c.Request().Context())
			if err != nil {
				return err
			}
			if !authenticated {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			return next(c)
		}
	}
}
