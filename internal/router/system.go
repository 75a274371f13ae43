package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mayett515/masterblog-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// post API, kept in their own file so business routes stay separate.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by uptime monitors / orchestrators).
	e.GET("/status", h.Health.CheckHealth)
}
