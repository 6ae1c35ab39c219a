//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=ErrorClassificator

package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with server-assigned
	// fields populated. A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail performs an exact-match lookup. No match yields
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PostRepository persists blog posts. Every returned post has its Author
// populated from the users table.
type PostRepository interface {
	// CreatePost inserts post on behalf of post.Author.ID.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// GetPost returns the post regardless of its status.
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	// ListPosts returns one page of published posts matching filter together
	// with the total number of matches.
	ListPosts(ctx context.Context, filter models.PostFilter) (models.PostList, error)
	// UpdatePost overwrites the editable fields of post. The write only
	// applies when post.Author.ID still owns the row; otherwise
	// [ErrPostNotFound] is returned.
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	// DeletePost removes the post owned by authorID.
	DeletePost(ctx context.Context, postID, authorID int64) error
	// IncrementViews atomically adds one view to a published post and
	// returns the new count.
	IncrementViews(ctx context.Context, postID int64) (int64, error)
}

// ErrorClassificator decides whether a failed store call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
