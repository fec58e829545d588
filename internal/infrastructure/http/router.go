package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/ticketapp/ticket-system/internal/core/ports"
	"github.com/ticketapp/ticket-system/internal/infrastructure/http/handlers"
)

// RegisterOps mounts the operational endpoints: health probes, Prometheus
// scrape and Swagger UI. None of them require a session.
func RegisterOps(e *echo.Echo, backend string, store ports.Pinger) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(backend, store)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the backend up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
