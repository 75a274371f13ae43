package service

import (
	"github.com/mayett515/masterblog-api/internal/repository"
	"github.com/mayett515/masterblog-api/internal/server"
)

// Services is the container for all business-logic services.
type Services struct {
	Posts *PostService
}

// NewService constructs the service container on top of the
// repository container.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Posts: NewPostService(repos.Posts),
	}, nil
}
