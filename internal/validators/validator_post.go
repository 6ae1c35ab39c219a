// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

// PostValidator checks post bodies and listing filters.
type PostValidator struct {
	maxPageLimit int
}

// NewPostValidator returns a Validator for [models.PostFields] and
// [models.PostFilter]. Listing pages larger than maxPageLimit are rejected;
// a non-positive maxPageLimit disables that bound.
func NewPostValidator(maxPageLimit int) Validator {
	return &PostValidator{maxPageLimit: maxPageLimit}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.PostFields / *models.PostFields
//   - models.PostFilter / *models.PostFilter
//
// Returns ErrUnsupportedType for anything else.
func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PostFields:
		return v.validatePostFields(ctx, value, fields...)
	case *models.PostFields:
		return v.validatePostFields(ctx, *value, fields...)

	case models.PostFilter:
		return v.validatePostFilter(ctx, value, fields...)
	case *models.PostFilter:
		return v.validatePostFilter(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validatePostFields validates a create or update body.
//
// Default validated fields: title, content, excerpt, category, status.
func (v *PostValidator) validatePostFields(_ context.Context, p models.PostFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldExcerpt, FieldCategory, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(p.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(p.Content) == "" {
				return ErrEmptyContent
			}
		case FieldExcerpt:
			if strings.TrimSpace(p.Excerpt) == "" {
				return ErrEmptyExcerpt
			}
		case FieldCategory:
			if strings.TrimSpace(p.Category) == "" {
				return ErrEmptyCategory
			}
		case FieldStatus:
			if p.Status != "" && !p.Status.IsValid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePostFilter validates listing criteria after defaults have been
// applied.
//
// Default validated fields: page, limit, author.
func (v *PostValidator) validatePostFilter(_ context.Context, filter models.PostFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldLimit, FieldAuthor}
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if filter.Page < 1 {
				return ErrInvalidPage
			}
		case FieldLimit:
			if filter.Limit < 1 {
				return ErrInvalidLimit
			}
			if v.maxPageLimit > 0 && filter.Limit > v.maxPageLimit {
				return ErrLimitTooLarge
			}
		case FieldAuthor:
			if filter.AuthorID < 0 {
				return ErrInvalidAuthorID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
