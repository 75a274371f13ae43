package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mayett515/masterblog-api/internal/errs"
	"github.com/mayett515/masterblog-api/internal/repository"
	"github.com/mayett515/masterblog-api/internal/server"
	"github.com/mayett515/masterblog-api/internal/service"
	"github.com/mayett515/masterblog-api/internal/validation"
)

// PostHandler exposes the post CRUD and search endpoints.
type PostHandler struct {
	Handler
	posts *service.PostService
}

// NewPostHandler constructs a PostHandler with access to shared app
// dependencies and the post service.
func NewPostHandler(s *server.Server, posts *service.PostService) *PostHandler {
	return &PostHandler{
		Handler: NewHandler(s),
		posts:   posts,
	}
}

// --- Request payloads -------------------------------------------------------

// ListPostsRequest carries the optional sort parameters of
// GET /api/posts. Field order matters: an invalid sort field is
// reported before an invalid direction, matching the API contract.
type ListPostsRequest struct {
	Sort      string `query:"sort" validate:"omitempty,oneof=title content"`
	Direction string `query:"direction" validate:"omitempty,oneof=asc desc"`
}

// Validate normalizes the direction (case-insensitive by contract)
// and maps validator failures onto the exact client-facing messages.
func (r *ListPostsRequest) Validate() error {
	r.Direction = strings.ToLower(r.Direction)

	if err := validation.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].StructField() {
			case "Sort":
				return errs.NewBadRequestError("Invalid sort field. Must be 'title' or 'content'.")
			case "Direction":
				return errs.NewBadRequestError("Invalid direction. Must be 'asc' or 'desc'.")
			}
		}
		return err
	}

	return nil
}

// CreatePostRequest is the body of POST /api/posts. Both fields are
// required and must be non-empty.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (r *CreatePostRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return errs.NewBadRequestError("Both 'title' and 'content' are required")
	}
	return nil
}

// UpdatePostRequest is the body of PUT /api/posts/:id. Pointer fields
// distinguish absent (retain current value) from present-but-empty
// (overwrite with "").
type UpdatePostRequest struct {
	ID      int     `param:"id" json:"-"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r *UpdatePostRequest) Validate() error {
	return nil
}

// DeletePostRequest carries the id path parameter of
// DELETE /api/posts/:id.
type DeletePostRequest struct {
	ID int `param:"id"`
}

func (r *DeletePostRequest) Validate() error {
	return nil
}

// SearchPostsRequest carries the optional substring queries of
// GET /api/posts/search.
type SearchPostsRequest struct {
	Title   string `query:"title"`
	Content string `query:"content"`
}

func (r *SearchPostsRequest) Validate() error {
	return nil
}

// DeletePostResponse is the confirmation body of a successful delete.
type DeletePostResponse struct {
	Message string `json:"message"`
}

// --- Endpoints --------------------------------------------------------------

// List returns all posts. When sort is given, the shared order is
// re-sorted in place first and the reorder persists across requests.
func (h *PostHandler) List(c echo.Context, req *ListPostsRequest) ([]repository.Post, error) {
	return h.posts.List(repository.SortField(req.Sort), req.Direction == "desc"), nil
}

// Create stores a new post and returns it with its assigned id.
func (h *PostHandler) Create(c echo.Context, req *CreatePostRequest) (repository.Post, error) {
	return h.posts.Create(req.Title, req.Content), nil
}

// Update applies a partial update to the post with the given id.
func (h *PostHandler) Update(c echo.Context, req *UpdatePostRequest) (repository.Post, error) {
	return h.posts.Update(req.ID, req.Title, req.Content)
}

// Delete removes the post with the given id.
func (h *PostHandler) Delete(c echo.Context, req *DeletePostRequest) (DeletePostResponse, error) {
	message, err := h.posts.Delete(req.ID)
	if err != nil {
		return DeletePostResponse{}, err
	}

	return DeletePostResponse{Message: message}, nil
}

// Search filters posts by case-insensitive substring match on title
// and content.
func (h *PostHandler) Search(c echo.Context, req *SearchPostsRequest) ([]repository.Post, error) {
	return h.posts.Search(req.Title, req.Content), nil
}
