package repository

import (
	"github.com/mayett515/masterblog-api/internal/server"
)

// Repositories is the container for all repository instances, passed
// into the service layer as one object.
type Repositories struct {
	Posts *PostRepository
}

// NewRepositories constructs the repository container and seeds the
// post store.
func NewRepositories(s *server.Server) *Repositories {
	posts := NewPostRepository()

	s.Logger.Info().
		Int("seed_posts", posts.Count()).
		Msg("in-memory post store initialized")

	return &Repositories{
		Posts: posts,
	}
}
