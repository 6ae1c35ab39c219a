package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// CredentialsValidator checks signup and login bodies.
type CredentialsValidator struct {
	minPasswordLength int
}

// NewCredentialsValidator returns a Validator for [models.Credentials].
// Passwords shorter than minPasswordLength runes are rejected.
func NewCredentialsValidator(minPasswordLength int) Validator {
	return &CredentialsValidator{minPasswordLength: minPasswordLength}
}

// Validate checks models.Credentials (value or pointer). Without explicit
// fields the signup set (name, email, password) is validated.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(c.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			email := strings.TrimSpace(c.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if !isEmail(email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(c.Password) < v.minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail accepts a bare addr-spec only, no display names.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
