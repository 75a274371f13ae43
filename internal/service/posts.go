package service

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mayett515/masterblog-api/internal/errs"
	"github.com/mayett515/masterblog-api/internal/repository"
)

// PostService implements the post operations on top of the in-memory
// store. Input validation happens in the handler layer; this layer
// assumes field values are already well-formed.
type PostService struct {
	posts *repository.PostRepository
}

// NewPostService constructs a PostService over the given store.
func NewPostService(posts *repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// List returns all posts. When sortField is non-empty the shared order
// is re-sorted first and the reorder persists across requests.
func (s *PostService) List(sortField repository.SortField, descending bool) []repository.Post {
	if sortField == "" {
		return s.posts.List()
	}

	return s.posts.SortBy(sortField, descending)
}

// Create stores a new post and returns it with its assigned id.
func (s *PostService) Create(title, content string) repository.Post {
	return s.posts.Create(title, content)
}

// Update applies a partial update to the post with the given id.
// A nil field is retained, a non-nil field overwrites (even when
// empty).
func (s *PostService) Update(id int, title, content *string) (repository.Post, error) {
	post, err := s.posts.Update(id, title, content)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return repository.Post{}, errs.NewNotFoundError("Post not found")
		}
		return repository.Post{}, err
	}

	return post, nil
}

// Delete removes the post with the given id and returns the
// confirmation message sent to the client.
func (s *PostService) Delete(id int) (string, error) {
	if err := s.posts.Delete(id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return "", errs.NewNotFoundError("Post not found")
		}
		return "", err
	}

	return fmt.Sprintf("Post with id %d has been deleted successfully.", id), nil
}

// Count returns the number of stored posts.
func (s *PostService) Count() int {
	return s.posts.Count()
}

// Search filters posts by case-insensitive substring match on title
// and content; both queries must match and empty queries match all.
func (s *PostService) Search(titleQuery, contentQuery string) []repository.Post {
	return s.posts.Search(titleQuery, contentQuery)
}
