package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-blog/models"
)

type memoryPostRepository struct {
	db *MemoryDB
}

// NewMemoryPostRepository constructs a [PostRepository] on top of db. It
// follows the PostgreSQL repository semantics, including owner-guarded
// writes and search matching.
func NewMemoryPostRepository(db *MemoryDB) PostRepository {
	return &memoryPostRepository{db: db}
}

func (r *memoryPostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, timeoutError(err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[post.Author.ID]; !ok {
		return models.Post{}, ErrAuthorNotFound
	}

	r.db.lastPostID++
	now := r.db.now()
	post.ID = r.db.lastPostID
	post.Views = 0
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Tags = append(models.Tags{}, post.Tags...)
	post.Author = models.Author{ID: post.Author.ID}

	r.db.posts[post.ID] = post

	return r.db.withAuthor(post), nil
}

func (r *memoryPostRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, timeoutError(err)
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	post, ok := r.db.posts[postID]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	return r.db.withAuthor(post), nil
}

func (r *memoryPostRepository) ListPosts(ctx context.Context, filter models.PostFilter) (models.PostList, error) {
	if err := ctx.Err(); err != nil {
		return models.PostList{}, timeoutError(err)
	}

	terms := SearchTerms(filter.Search)

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	matched := make([]models.Post, 0)
	for _, post := range r.db.posts {
		if post.Status != models.StatusPublished {
			continue
		}
		if filter.Category != "" && post.Category != filter.Category {
			continue
		}
		if filter.AuthorID != 0 && post.Author.ID != filter.AuthorID {
			continue
		}
		if !matchesSearch(post, terms) {
			continue
		}
		matched = append(matched, post)
	}

	slices.SortFunc(matched, func(a, b models.Post) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})

	list := models.PostList{Posts: make([]models.Post, 0), Total: int64(len(matched))}

	offset := filter.Offset()
	if offset < 0 || offset >= len(matched) {
		return list, nil
	}
	end := len(matched)
	if filter.Limit > 0 && filter.Limit < end-offset {
		end = offset + filter.Limit
	}

	for _, post := range matched[offset:end] {
		list.Posts = append(list.Posts, r.db.withAuthor(post))
	}

	return list, nil
}

func (r *memoryPostRepository) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, timeoutError(err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.posts[post.ID]
	if !ok || stored.Author.ID != post.Author.ID {
		return models.Post{}, ErrPostNotFound
	}

	stored.Title = post.Title
	stored.Content = post.Content
	stored.Excerpt = post.Excerpt
	stored.Category = post.Category
	stored.Tags = append(models.Tags{}, post.Tags...)
	stored.CoverImage = post.CoverImage
	stored.Status = post.Status
	stored.ReadTime = post.ReadTime
	stored.UpdatedAt = r.db.now()

	r.db.posts[post.ID] = stored

	return r.db.withAuthor(stored), nil
}

func (r *memoryPostRepository) DeletePost(ctx context.Context, postID, authorID int64) error {
	if err := ctx.Err(); err != nil {
		return timeoutError(err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.posts[postID]
	if !ok || stored.Author.ID != authorID {
		return ErrPostNotFound
	}

	delete(r.db.posts, postID)
	return nil
}

func (r *memoryPostRepository) IncrementViews(ctx context.Context, postID int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, timeoutError(err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.posts[postID]
	if !ok || stored.Status != models.StatusPublished {
		return 0, ErrPostNotFound
	}

	stored.Views++
	r.db.posts[postID] = stored

	return stored.Views, nil
}
