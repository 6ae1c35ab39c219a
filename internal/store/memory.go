package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-blog/models"
)

// MemoryDB is a process-local backend shared by the in-memory repositories.
// It is selected when no database DSN is configured and backs the
// end-to-end tests. All access goes through mu.
type MemoryDB struct {
	mu sync.RWMutex

	users        map[int64]models.User
	usersByEmail map[string]int64
	posts        map[int64]models.Post

	lastUserID int64
	lastPostID int64

	now func() time.Time
}

// NewMemoryDB returns an empty in-memory backend.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		users:        make(map[int64]models.User),
		usersByEmail: make(map[string]int64),
		posts:        make(map[int64]models.Post),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// author returns the public author fields of userID. Callers hold mu.
func (m *MemoryDB) author(userID int64) models.Author {
	u := m.users[userID]
	return models.Author{
		ID:     u.UserID,
		Name:   u.Name,
		Avatar: u.Avatar,
		Bio:    u.Bio,
	}
}

// withAuthor returns a copy of post with its author populated and tags
// copied so callers never share slices with the store. Callers hold mu.
func (m *MemoryDB) withAuthor(post models.Post) models.Post {
	post.Author = m.author(post.Author.ID)
	post.Tags = append(models.Tags{}, post.Tags...)
	return post
}
