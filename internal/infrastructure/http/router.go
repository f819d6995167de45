package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/iustudy/blog-platform/docs" // registers the OpenAPI document with swag

	"github.com/iustudy/blog-platform/internal/infrastructure/http/handlers"
)

// RegisterOperationalRoutes mounts the routes that sit outside the blog API:
// probes, the Prometheus scrape endpoint, and the Swagger UI. None of them
// require authentication.
func RegisterOperationalRoutes(e *echo.Echo, checks ...handlers.Check) {
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(checks...)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
