package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayett515/masterblog-api/internal/config"
	"github.com/mayett515/masterblog-api/internal/handler"
	"github.com/mayett515/masterblog-api/internal/middleware"
	"github.com/mayett515/masterblog-api/internal/repository"
	"github.com/mayett515/masterblog-api/internal/router"
	"github.com/mayett515/masterblog-api/internal/server"
	"github.com/mayett515/masterblog-api/internal/service"
)

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

// newTestAPI wires a full application with a fresh seeded store, the
// same way cmd/api does, and returns the echo engine.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)

	log := zerolog.Nop()
	srv := server.New(cfg, &log)

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	require.NoError(t, err)

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	return router.New(srv, handlers, middlewares)
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodePosts(t *testing.T, rec *httptest.ResponseRecorder) []repository.Post {
	t.Helper()

	var posts []repository.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	return posts
}

func TestListPosts_ReturnsSeedData(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/posts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/json")

	posts := decodePosts(t, rec)
	require.Len(t, posts, 3)
	assert.Equal(t, repository.Post{ID: 1, Title: "First post", Content: "This is the first post."}, posts[0])
}

func TestListPosts_SortTitleDescending(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/posts?sort=title&direction=desc", "")

	require.Equal(t, http.StatusOK, rec.Code)
	posts := decodePosts(t, rec)
	require.Len(t, posts, 3)
	assert.Equal(t, "Third post", posts[0].Title)
	assert.Equal(t, "Second post", posts[1].Title)
	assert.Equal(t, "First post", posts[2].Title)
}

func TestListPosts_SortPersistsAcrossRequests(t *testing.T) {
	e := newTestAPI(t)

	doRequest(e, http.MethodGet, "/api/posts?sort=title&direction=desc", "")

	// A later request without sort observes the reorder.
	rec := doRequest(e, http.MethodGet, "/api/posts", "")
	posts := decodePosts(t, rec)
	require.Len(t, posts, 3)
	assert.Equal(t, "Third post", posts[0].Title)
}

func TestListPosts_DirectionCaseInsensitive(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/posts?sort=title&direction=DESC", "")

	require.Equal(t, http.StatusOK, rec.Code)
	posts := decodePosts(t, rec)
	assert.Equal(t, "Third post", posts[0].Title)
}

func TestListPosts_InvalidSortField(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/posts?sort=id", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid sort field. Must be 'title' or 'content'.", body.Error)
}

func TestListPosts_InvalidDirection(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/posts?sort=title&direction=sideways", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid direction. Must be 'asc' or 'desc'.", body.Error)
}

func TestCreatePost_AssignsNextID(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodPost, "/api/posts", `{"title":"X","content":"Y"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var post repository.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, repository.Post{ID: 4, Title: "X", Content: "Y"}, post)

	// The new post is retrievable via list.
	posts := decodePosts(t, doRequest(e, http.MethodGet, "/api/posts", ""))
	require.Len(t, posts, 4)
	assert.Equal(t, 4, posts[3].ID)
}

func TestCreatePost_MissingFields(t *testing.T) {
	e := newTestAPI(t)

	for _, body := range []string{
		`{"title":"X"}`,
		`{"content":"Y"}`,
		`{"title":"","content":"Y"}`,
		`{}`,
	} {
		rec := doRequest(e, http.MethodPost, "/api/posts", body)

		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)

		var errBody errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
		assert.Equal(t, "Both 'title' and 'content' are required", errBody.Error)
	}

	// Failed creates do not alter the collection.
	posts := decodePosts(t, doRequest(e, http.MethodGet, "/api/posts", ""))
	assert.Len(t, posts, 3)
}

func TestCreatePost_MalformedJSON(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodPost, "/api/posts", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePost_PartialUpdate(t *testing.T) {
	e := newTestAPI(t)

	// Title only: content unchanged.
	rec := doRequest(e, http.MethodPut, "/api/posts/2", `{"title":"Renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var post repository.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "Renamed", post.Title)
	assert.Equal(t, "This is the second post.", post.Content)

	// Content only: title unchanged.
	rec = doRequest(e, http.MethodPut, "/api/posts/2", `{"content":"Rewritten"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "Renamed", post.Title)
	assert.Equal(t, "Rewritten", post.Content)
}

func TestUpdatePost_EmptyStringOverwrites(t *testing.T) {
	e := newTestAPI(t)

	// Presence, not truthiness, is checked on the update path.
	rec := doRequest(e, http.MethodPut, "/api/posts/1", `{"title":""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var post repository.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "", post.Title)
	assert.Equal(t, "This is the first post.", post.Content)
}

func TestUpdatePost_NotFound(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodPut, "/api/posts/99", `{"title":"x"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Post not found", body.Error)
}

func TestDeletePost_Success(t *testing.T) {
	e := newTestAPI(t)

	doRequest(e, http.MethodPost, "/api/posts", `{"title":"X","content":"Y"}`)

	rec := doRequest(e, http.MethodDelete, "/api/posts/4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body messageBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Post with id 4 has been deleted successfully.", body.Message)

	posts := decodePosts(t, doRequest(e, http.MethodGet, "/api/posts", ""))
	assert.Len(t, posts, 3)
}

func TestDeletePost_NotFound(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodDelete, "/api/posts/42", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Post not found", body.Error)

	// The collection is untouched.
	posts := decodePosts(t, doRequest(e, http.MethodGet, "/api/posts", ""))
	assert.Len(t, posts, 3)
}

func TestSearchPosts_TitleQuery(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/posts/search?title=FIRST", "")

	require.Equal(t, http.StatusOK, rec.Code)
	posts := decodePosts(t, rec)
	require.Len(t, posts, 1)
	assert.Equal(t, 1, posts[0].ID)
}

func TestSearchPosts_CombinedQueriesAreANDed(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/posts/search?title=second&content=third", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodePosts(t, rec))
}

func TestSearchPosts_EmptyQueriesReturnAll(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/posts/search", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodePosts(t, rec), 3)
}

func TestCORS_PermissiveOnAllRoutes(t *testing.T) {
	e := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set(echo.HeaderOrigin, "https://frontend.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestUnknownRoute_NotFoundBody(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Route not found", body.Error)
}

func TestRequestID_EchoedOnResponse(t *testing.T) {
	e := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set(middleware.RequestIDHeader, "test-correlation-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "test-correlation-id", rec.Header().Get(middleware.RequestIDHeader))
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/status", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

// TestScenario_EndToEnd walks the documented happy path: sorted list,
// create, then delete of the created post.
func TestScenario_EndToEnd(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/api/posts?sort=title&direction=desc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	posts := decodePosts(t, rec)
	require.Equal(t, []string{"Third post", "Second post", "First post"},
		[]string{posts[0].Title, posts[1].Title, posts[2].Title})

	rec = doRequest(e, http.MethodPost, "/api/posts", `{"title":"X","content":"Y"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created repository.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, repository.Post{ID: 4, Title: "X", Content: "Y"}, created)

	rec = doRequest(e, http.MethodDelete, "/api/posts/4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body messageBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Post with id 4 has been deleted successfully.", body.Message)
}
