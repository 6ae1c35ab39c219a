package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// AuthService registers users, verifies credentials and issues and resolves
// session tokens.
type AuthService interface {
	Signup(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	// ResolveSession maps a raw session credential to a principal. Empty,
	// malformed, expired or foreign tokens resolve to the anonymous principal.
	ResolveSession(ctx context.Context, credential string) models.Principal
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	CurrentUser(ctx context.Context, principal models.Principal) (models.User, error)
}

// PostService lists, reads and mutates blog posts on behalf of a principal.
type PostService interface {
	List(ctx context.Context, principal models.Principal, filter models.PostFilter) (models.PostList, error)
	// Get returns a readable post and counts a view when it is published.
	Get(ctx context.Context, principal models.Principal, postID int64) (models.Post, error)
	Create(ctx context.Context, principal models.Principal, fields models.PostFields) (models.Post, error)
	Update(ctx context.Context, principal models.Principal, postID int64, fields models.PostFields) (models.Post, error)
	Delete(ctx context.Context, principal models.Principal, postID int64) error
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// validation.
type PostServiceWrapper interface {
	Wrap(PostService) PostService // returns a decorated PostService applying additional behavior
}

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// them back.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// ViewsObserver is notified about the outcome of every view increment.
type ViewsObserver interface {
	ViewRecorded()
	ViewIncrementFailed()
}
