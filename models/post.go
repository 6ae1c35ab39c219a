// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// PostStatus is the publication state of a post.
type PostStatus string

const (
	// StatusDraft posts are visible to their author only.
	StatusDraft PostStatus = "draft"

	// StatusPublished posts are visible to everyone and count views.
	StatusPublished PostStatus = "published"
)

// IsValid reports whether s is one of the known statuses.
func (s PostStatus) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Author is the populated author reference embedded into read responses.
type Author struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio,omitempty"`
}

// Post is a blog article owned by a single [User].
type Post struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Excerpt    string     `json:"excerpt"`
	Category   string     `json:"category"`
	Tags       Tags       `json:"tags"`
	CoverImage string     `json:"cover_image"`
	Status     PostStatus `json:"status"`

	// ReadTime is the estimated reading time in minutes. It is derived from
	// Content and never set by clients.
	ReadTime int `json:"read_time"`

	// Views only grows. It is incremented on every read of a published post.
	Views int64 `json:"views"`

	Author Author `json:"author"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// Tags is an ordered tag list persisted as a JSON array.
type Tags []string

// Value implements [driver.Valuer].
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", src)
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return fmt.Errorf("error decoding tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	*t = tags
	return nil
}

// PostFields is the client-editable part of a post, used by both create and
// update requests.
type PostFields struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Excerpt    string     `json:"excerpt"`
	Category   string     `json:"category"`
	Tags       []string   `json:"tags"`
	CoverImage string     `json:"cover_image"`
	Status     PostStatus `json:"status"`
}

// PostFilter holds the listing criteria. All filters are optional and
// combinable; zero values mean "any".
type PostFilter struct {
	Category string
	AuthorID int64
	Search   string

	Page  int
	Limit int
}

// Offset returns the number of rows to skip for the requested page. Pages
// whose offset does not fit in an int saturate at math.MaxInt, which every
// backend treats as past the end.
func (f PostFilter) Offset() int {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}

// PostList is one page of listing results together with the number of
// posts matching the filter before pagination.
type PostList struct {
	Posts []Post
	Total int64
}

// Pages returns ceil(total/limit).
func (l PostList) Pages(limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (l.Total + int64(limit) - 1) / int64(limit)
}
