package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mayett515/masterblog-api/internal/middleware"
	"github.com/mayett515/masterblog-api/internal/server"
	"github.com/mayett515/masterblog-api/internal/service"
)

// HealthHandler exposes a system endpoint that external systems can
// use to verify the service is alive. Not business logic, but it
// follows the same handler pattern for consistency.
type HealthHandler struct {
	Handler
	posts *service.PostService
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server, posts *service.PostService) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		posts:   posts,
	}
}

// CheckHealth returns the service status, environment, and a check on
// the in-memory post store. The store cannot fail, so this always
// reports healthy; the post count is included for observability.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]any{
			"post_store": map[string]any{
				"status": "healthy",
				"posts":  h.posts.Count(),
			},
		},
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
