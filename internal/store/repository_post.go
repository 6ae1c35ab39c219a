// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/jackc/pgerrcode"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// Reads join the "users" table so that every returned post carries its
// author's public fields.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts a post owned by post.Author.ID and returns it with the
// author populated. A missing author yields [ErrAuthorNotFound].
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row := p.QueryRowContext(ctx, createPost,
		post.Author.ID,
		post.Title,
		post.Content,
		post.Excerpt,
		post.Category,
		post.Tags,
		post.CoverImage,
		string(post.Status),
		post.ReadTime,
	)

	var created models.Post
	if err := scanPost(row, &created); err != nil {
		log.Err(err).
			Str("func", "postRepository.CreatePost").
			Int64("author_id", post.Author.ID).
			Msg("failed to insert post")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Post{}, ErrAuthorNotFound
		}
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, timeoutError(err))
	}

	return created, nil
}

// GetPost retrieves a single post by id regardless of its status.
func (p *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	var post models.Post
	err := p.retryRead(ctx, func(ctx context.Context) error {
		ctx, cancel := p.withTimeout(ctx)
		defer cancel()

		return scanPost(p.QueryRowContext(ctx, getPostByID, postID), &post)
	})

	switch {
	case err == nil:
		return post, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Post{}, ErrPostNotFound
	default:
		log.Err(err).
			Str("func", "postRepository.GetPost").
			Int64("post_id", postID).
			Msg("failed to get post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, timeoutError(err))
	}
}

// ListPosts returns one page of published posts matching filter and the
// total number of matches. The page and the count are two separate
// statements, so under concurrent writes they may disagree by the posts
// created or deleted in between.
func (p *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) (models.PostList, error) {
	log := logger.FromContext(ctx)

	listQuery, listArgs, err := buildListPostsQuery(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to create list query")
		return models.PostList{}, err
	}

	countQuery, countArgs, err := buildCountPostsQuery(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to create count query")
		return models.PostList{}, err
	}

	var list models.PostList
	err = p.retryRead(ctx, func(ctx context.Context) error {
		ctx, cancel := p.withTimeout(ctx)
		defer cancel()

		posts, err := p.queryPosts(ctx, listQuery, listArgs)
		if err != nil {
			return err
		}

		var total int64
		if err = p.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		list = models.PostList{Posts: posts, Total: total}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.ListPosts").
			Str("category", filter.Category).
			Int64("author_id", filter.AuthorID).
			Int("page", filter.Page).
			Int("limit", filter.Limit).
			Msg("failed to list posts")
		return models.PostList{}, timeoutError(err)
	}

	return list, nil
}

func (p *postRepository) queryPosts(ctx context.Context, query string, args []any) ([]models.Post, error) {
	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err := scanPost(rows, &post); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// UpdatePost overwrites the editable fields of the post identified by
// post.ID, provided it is still owned by post.Author.ID.
func (p *postRepository) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row := p.QueryRowContext(ctx, updatePost,
		post.Title,
		post.Content,
		post.Excerpt,
		post.Category,
		post.Tags,
		post.CoverImage,
		string(post.Status),
		post.ReadTime,
		post.ID,
		post.Author.ID,
	)

	var updated models.Post
	err := scanPost(row, &updated)
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Post{}, ErrPostNotFound
	default:
		log.Err(err).
			Str("func", "postRepository.UpdatePost").
			Int64("post_id", post.ID).
			Msg("failed to update post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, timeoutError(err))
	}
}

// DeletePost removes the post identified by postID if it is owned by authorID.
func (p *postRepository) DeletePost(ctx context.Context, postID, authorID int64) error {
	log := logger.FromContext(ctx)

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	result, err := p.ExecContext(ctx, deletePost, postID, authorID)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.DeletePost").
			Int64("post_id", postID).
			Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, timeoutError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// IncrementViews adds one view to a published post in a single statement
// and returns the new count. Drafts and missing posts yield [ErrPostNotFound].
func (p *postRepository) IncrementViews(ctx context.Context, postID int64) (int64, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var views int64
	err := p.QueryRowContext(ctx, incrementPostViews, postID).Scan(&views)
	switch {
	case err == nil:
		return views, nil
	case errors.Is(err, sql.ErrNoRows):
		return 0, ErrPostNotFound
	default:
		log.Err(err).
			Str("func", "postRepository.IncrementViews").
			Int64("post_id", postID).
			Msg("failed to increment views")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, timeoutError(err))
	}
}

func scanPost(row rowScanner, post *models.Post) error {
	var status string
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Excerpt,
		&post.Category,
		&post.Tags,
		&post.CoverImage,
		&status,
		&post.ReadTime,
		&post.Views,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.Author.ID,
		&post.Author.Name,
		&post.Author.Avatar,
		&post.Author.Bio,
	)
	post.Status = models.PostStatus(status)
	return err
}
