package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// ErrPostNotFound is returned when no post with the requested id
// exists in the store.
var ErrPostNotFound = errors.New("post not found")

// SortField identifies a post field the store can order by.
type SortField string

const (
	SortByTitle   SortField = "title"
	SortByContent SortField = "content"
)

// Post is the sole domain entity: an id/title/content record.
// Ids are unique, positive, and assigned by the store.
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostRepository holds the shared ordered sequence of posts.
//
// All reads and writes take the mutex; methods return copies, never
// aliases into the underlying slice, so callers can't mutate stored
// state behind the lock's back.
type PostRepository struct {
	mu    sync.Mutex
	posts []Post
}

// NewPostRepository creates a store initialized with the three seed
// posts (ids 1-3).
func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: []Post{
			{ID: 1, Title: "First post", Content: "This is the first post."},
			{ID: 2, Title: "Second post", Content: "This is the second post."},
			{ID: 3, Title: "Third post", Content: "This is the third post."},
		},
	}
}

// List returns a snapshot of all posts in their current order.
func (r *PostRepository) List() []Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot()
}

// SortBy reorders the shared sequence in place by the given field,
// case-insensitively, descending when desc is set, and returns a
// snapshot of the new order.
//
// The reorder persists: subsequent List calls observe the new order.
// Callers treat sorting as a side effect of the list endpoint.
func (r *PostRepository) SortBy(field SortField, desc bool) []Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := func(p Post) string { return strings.ToLower(p.Title) }
	if field == SortByContent {
		key = func(p Post) string { return strings.ToLower(p.Content) }
	}

	sort.SliceStable(r.posts, func(i, j int) bool {
		if desc {
			return key(r.posts[i]) > key(r.posts[j])
		}
		return key(r.posts[i]) < key(r.posts[j])
	})

	return r.snapshot()
}

// Create appends a new post with the next free id.
//
// The id is max(current ids)+1, or 1 for an empty store. Ids of
// deleted posts below the current max are never reused; deleting the
// highest-id post does free its value for the next create.
func (r *PostRepository) Create(title, content string) Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, p := range r.posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	post := Post{ID: maxID + 1, Title: title, Content: content}
	r.posts = append(r.posts, post)

	return post
}

// Update mutates the post with the given id in place.
//
// Nil title/content leave the existing value untouched; non-nil values
// overwrite, including with the empty string. Returns ErrPostNotFound
// if no post has the id.
func (r *PostRepository) Update(id int, title, content *string) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID != id {
			continue
		}
		if title != nil {
			r.posts[i].Title = *title
		}
		if content != nil {
			r.posts[i].Content = *content
		}
		return r.posts[i], nil
	}

	return Post{}, ErrPostNotFound
}

// Delete removes the first post with the given id, preserving the
// order of the rest. Returns ErrPostNotFound if no post has the id.
func (r *PostRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}

	return ErrPostNotFound
}

// Search returns the posts matching both queries, in current order.
//
// Each query is a case-insensitive substring match against its field;
// an empty query matches every post.
func (r *PostRepository) Search(titleQuery, contentQuery string) []Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	titleQuery = strings.ToLower(titleQuery)
	contentQuery = strings.ToLower(contentQuery)

	matched := make([]Post, 0, len(r.posts))
	for _, p := range r.posts {
		if titleQuery != "" && !strings.Contains(strings.ToLower(p.Title), titleQuery) {
			continue
		}
		if contentQuery != "" && !strings.Contains(strings.ToLower(p.Content), contentQuery) {
			continue
		}
		matched = append(matched, p)
	}

	return matched
}

// Count returns the number of stored posts.
func (r *PostRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.posts)
}

// snapshot copies the current sequence. Callers must hold r.mu.
func (r *PostRepository) snapshot() []Post {
	out := make([]Post, len(r.posts))
	copy(out, r.posts)
	return out
}
