package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("email is malformed")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")

	ErrEmptyTitle    = errors.New("title is required")
	ErrEmptyContent  = errors.New("content is required")
	ErrEmptyExcerpt  = errors.New("excerpt is required")
	ErrEmptyCategory = errors.New("category is required")
	ErrInvalidStatus = errors.New("status must be draft or published")

	ErrInvalidPage     = errors.New("page must be a positive integer")
	ErrInvalidLimit    = errors.New("limit must be a positive integer")
	ErrLimitTooLarge   = errors.New("limit exceeds the maximum page size")
	ErrInvalidAuthorID = errors.New("invalid author id")
)
