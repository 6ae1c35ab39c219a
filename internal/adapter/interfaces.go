// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the go-blog HTTP API.
//
// The primary abstraction is [BlogClient]. The package ships an HTTP/REST
// implementation ([NewHTTPBlogClient]) built on resty.
//
// Error responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrConflict] for a
// duplicate signup, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// BlogClient talks to a go-blog server. Implementations keep the session
// token returned by Login and attach it as a bearer token to every later
// request.
type BlogClient interface {
	// SetToken stores the bearer token used by subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when logged out.
	Token() string

	// Signup registers a new account. It does not log in.
	Signup(ctx context.Context, credentials models.Credentials) (models.UserProfile, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.UserProfile, error)

	// Logout asks the server to clear the session cookie and forgets the
	// stored token.
	Logout(ctx context.Context) error

	// Me returns the profile of the logged-in user.
	Me(ctx context.Context) (models.UserProfile, error)

	ListPosts(ctx context.Context, query ListQuery) (models.PostListResponse, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, fields models.PostFields) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, fields models.PostFields) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

// ListQuery holds the optional listing parameters. Zero values are omitted
// from the request so the server defaults apply.
type ListQuery struct {
	Page     int
	Limit    int
	Category string
	AuthorID int64
	Search   string
}
