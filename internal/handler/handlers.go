package handler

import (
	"github.com/mayett515/masterblog-api/internal/server"
	"github.com/mayett515/masterblog-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Posts  *PostHandler
	Health *HealthHandler
}

// NewHandlers constructs the handler container from the application
// container and the service layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Posts:  NewPostHandler(s, services.Posts),
		Health: NewHealthHandler(s, services.Posts),
	}
}
