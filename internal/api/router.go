package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/api/handler"
	"github.com/ticketapp/ticket-system/internal/api/metrics"
	"github.com/ticketapp/ticket-system/internal/api/middleware"
	"github.com/ticketapp/ticket-system/internal/core/ports"
	infrahttp "github.com/ticketapp/ticket-system/internal/infrastructure/http"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Workspaces ports.WorkspaceOpener
	// Backend names the key-value backend in readiness output.
	Backend string
	Pinger  ports.Pinger
	Log     zerolog.Logger
	// Registerer receives the HTTP metrics. Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	reg := d.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metrics.Namespace,
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Ops: health probes, metrics, docs (no workspace, no session) ---
	infrahttp.RegisterOps(e, d.Backend, d.Pinger)

	workspace := middleware.Workspace(d.Workspaces)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler()
	auth := e.Group("/auth", workspace)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)

	// --- Ticket routes (session required) ---
	ticketHandler := handler.NewTicketHandler()
	dashboardHandler := handler.NewDashboardHandler()
	v1 := e.Group("/v1", workspace, middleware.RequireSession())
	v1.GET("/tickets", ticketHandler.List)
	v1.POST("/tickets", ticketHandler.Create)
	v1.GET("/tickets/stats", dashboardHandler.Stats)
	v1.PATCH("/tickets/:id", ticketHandler.Update)
	v1.DELETE("/tickets/:id", ticketHandler.Delete)

	return e
}
