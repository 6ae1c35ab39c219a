// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and as the
// owner of blog posts.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. It is stored trimmed and
	// lower-cased.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash stores the one-way hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Avatar is an optional reference to the user's avatar image.
	Avatar string `json:"avatar"`

	// Bio is an optional short profile text shown next to authored posts.
	Bio string `json:"bio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the sanitized projection of the user that is safe to send
// to clients.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:     u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
	}
}

// UserProfile is the public projection of a [User]. It never carries the
// password hash.
type UserProfile struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Credentials is the request body of the signup and login endpoints.
// Password is plaintext and must be discarded right after hashing or
// verification.
type Credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
