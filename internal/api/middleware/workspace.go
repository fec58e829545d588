package middleware

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/ticketapp/ticket-system/internal/core/ports"
)

const (
	// WorkspaceHeader selects the key namespace a request operates on.
	WorkspaceHeader = "X-Workspace-ID"
	// DefaultWorkspace is used when the header is absent.
	DefaultWorkspace = "default"
	// WorkspaceKey is the echo.Context key holding the resolved ports.Workspace.
	WorkspaceKey = "workspace"
)

var workspaceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Workspace resolves the request's workspace and injects it into context.
func Workspace(opener ports.WorkspaceOpener) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(WorkspaceHeader)
			if id == "" {
				id = DefaultWorkspace
			}
			if !workspaceIDPattern.MatchString(id) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid workspace id"})
			}

			c.Set(WorkspaceKey, opener.Open(id))
			return next(c)
		}
	}
}
