package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

type memoryUserRepository struct {
	db *MemoryDB
}

// NewMemoryUserRepository constructs a [UserRepository] on top of db.
func NewMemoryUserRepository(db *MemoryDB) UserRepository {
	return &memoryUserRepository{db: db}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, timeoutError(err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.usersByEmail[user.Email]; exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	r.db.lastUserID++
	now := r.db.now()
	user.UserID = r.db.lastUserID
	user.CreatedAt = now
	user.UpdatedAt = now

	r.db.users[user.UserID] = user
	r.db.usersByEmail[user.Email] = user.UserID

	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, timeoutError(err)
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	userID, ok := r.db.usersByEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return r.db.users[userID], nil
}

func (r *memoryUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, timeoutError(err)
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	user, ok := r.db.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
