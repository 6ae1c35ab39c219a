package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// postValidationService rejects malformed input before it reaches the
// wrapped PostService.
type postValidationService struct {
	inner     PostService
	validator validators.Validator
}

// NewPostValidationService returns a wrapper validating post bodies and
// listing filters. Pages larger than maxPageLimit are rejected.
func NewPostValidationService(maxPageLimit int) PostServiceWrapper {
	return &postValidationService{
		validator: validators.NewPostValidator(maxPageLimit),
	}
}

func (v *postValidationService) List(ctx context.Context, principal models.Principal, filter models.PostFilter) (models.PostList, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return models.PostList{}, NewValidationError(err)
	}

	return v.inner.List(ctx, principal, filter)
}

func (v *postValidationService) Get(ctx context.Context, principal models.Principal, postID int64) (models.Post, error) {
	if postID <= 0 {
		return models.Post{}, fmt.Errorf("%w: invalid post id %d", ErrNotFound, postID)
	}

	return v.inner.Get(ctx, principal, postID)
}

func (v *postValidationService) Create(ctx context.Context, principal models.Principal, fields models.PostFields) (models.Post, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Post{}, NewValidationError(err)
	}

	return v.inner.Create(ctx, principal, fields)
}

func (v *postValidationService) Update(ctx context.Context, principal models.Principal, postID int64, fields models.PostFields) (models.Post, error) {
	if postID <= 0 {
		return models.Post{}, fmt.Errorf("%w: invalid post id %d", ErrNotFound, postID)
	}
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Post{}, NewValidationError(err)
	}

	return v.inner.Update(ctx, principal, postID, fields)
}

func (v *postValidationService) Delete(ctx context.Context, principal models.Principal, postID int64) error {
	if postID <= 0 {
		return fmt.Errorf("%w: invalid post id %d", ErrNotFound, postID)
	}

	return v.inner.Delete(ctx, principal, postID)
}

func (v *postValidationService) Wrap(wrapper PostService) PostService {
	v.inner = wrapper
	return v
}
