// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type postService struct {
	postRepository store.PostRepository
	views          ViewsObserver

	logger *logger.Logger
}

// NewPostService returns the PostService over postRepository. views may be
// nil.
func NewPostService(postRepository store.PostRepository, views ViewsObserver, logger *logger.Logger) PostService {
	if views == nil {
		views = nopViewsObserver{}
	}
	return &postService{
		postRepository: postRepository,
		views:          views,
		logger:         logger,
	}
}

// List returns one page of published posts. Drafts never appear in listings,
// whoever asks.
func (p *postService) List(ctx context.Context, _ models.Principal, filter models.PostFilter) (models.PostList, error) {
	filter.Search = strings.TrimSpace(filter.Search)

	list, err := p.postRepository.ListPosts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postService.List").Any("filter", filter).Msg("error listing posts")
		return models.PostList{}, fmt.Errorf("error listing posts: %w", err)
	}
	if list.Posts == nil {
		list.Posts = []models.Post{}
	}

	return list, nil
}

// Get returns the post when principal may read it. Reading a published post
// adds one view; a failed increment is logged and the post is returned with
// its previous count.
func (p *postService) Get(ctx context.Context, principal models.Principal, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := p.find(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	if !CanRead(principal, post) {
		return models.Post{}, fmt.Errorf("%w: post %d is not visible", ErrNotFound, postID)
	}

	if post.Status != models.StatusPublished {
		return post, nil
	}

	views, err := p.postRepository.IncrementViews(ctx, postID)
	if err != nil {
		p.views.ViewIncrementFailed()
		log.Warn().Err(err).Str("func", "postService.Get").Int64("post_id", postID).Msg("error incrementing post views")
		return post, nil
	}
	p.views.ViewRecorded()
	post.Views = views

	return post, nil
}

// Create stores a new post authored by principal.
func (p *postService) Create(ctx context.Context, principal models.Principal, fields models.PostFields) (models.Post, error) {
	log := logger.FromContext(ctx)

	authorID, ok := principal.UserID()
	if !ok {
		return models.Post{}, ErrUnauthenticated
	}

	post := applyFields(models.Post{Author: models.Author{ID: authorID}}, fields)

	created, err := p.postRepository.CreatePost(ctx, post)
	if errors.Is(err, store.ErrAuthorNotFound) {
		log.Warn().Err(err).Str("func", "postService.Create").Int64("author_id", authorID).Msg("session user no longer exists")
		return models.Post{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if err != nil {
		log.Err(err).Str("func", "postService.Create").Int64("author_id", authorID).Msg("error creating post")
		return models.Post{}, fmt.Errorf("error creating post: %w", err)
	}

	return created, nil
}

// Update overwrites the editable fields of a post owned by principal.
func (p *postService) Update(ctx context.Context, principal models.Principal, postID int64, fields models.PostFields) (models.Post, error) {
	log := logger.FromContext(ctx)

	if principal.IsAnonymous() {
		return models.Post{}, ErrUnauthenticated
	}

	existing, err := p.find(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	if !CanWrite(principal, existing) {
		log.Debug().Str("func", "postService.Update").Int64("post_id", postID).Msg("update rejected for non-owner")
		return models.Post{}, ErrForbidden
	}

	updated, err := p.postRepository.UpdatePost(ctx, applyFields(existing, fields))
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "postService.Update").Int64("post_id", postID).Msg("error updating post")
		return models.Post{}, fmt.Errorf("error updating post: %w", err)
	}

	return updated, nil
}

// Delete permanently removes a post owned by principal.
func (p *postService) Delete(ctx context.Context, principal models.Principal, postID int64) error {
	log := logger.FromContext(ctx)

	actorID, ok := principal.UserID()
	if !ok {
		return ErrUnauthenticated
	}

	existing, err := p.find(ctx, postID)
	if err != nil {
		return err
	}

	if !CanWrite(principal, existing) {
		log.Debug().Str("func", "postService.Delete").Int64("post_id", postID).Msg("delete rejected for non-owner")
		return ErrForbidden
	}

	err = p.postRepository.DeletePost(ctx, postID, actorID)
	if errors.Is(err, store.ErrPostNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "postService.Delete").Int64("post_id", postID).Msg("error deleting post")
		return fmt.Errorf("error deleting post: %w", err)
	}

	return nil
}

func (p *postService) find(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postService.find").Int64("post_id", postID).Msg("error getting post")
		return models.Post{}, fmt.Errorf("error getting post: %w", err)
	}
	return post, nil
}

// applyFields overwrites the editable fields of post and recomputes the
// derived ones.
func applyFields(post models.Post, fields models.PostFields) models.Post {
	post.Title = strings.TrimSpace(fields.Title)
	post.Content = fields.Content
	post.Excerpt = fields.Excerpt
	post.Category = strings.TrimSpace(fields.Category)
	post.Tags = cleanTags(fields.Tags)
	post.CoverImage = strings.TrimSpace(fields.CoverImage)

	post.Status = fields.Status
	if post.Status == "" {
		post.Status = models.StatusDraft
	}

	post.ReadTime = ReadTime(fields.Content)
	return post
}

// cleanTags trims every tag and drops empty ones, preserving order.
func cleanTags(tags []string) models.Tags {
	cleaned := make(models.Tags, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return cleaned
}

type nopViewsObserver struct{}

func (nopViewsObserver) ViewRecorded()        {}
func (nopViewsObserver) ViewIncrementFailed() {}
