package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidator(t *testing.T) {
	valid := models.Credentials{Name: "Ann", Email: "ann@example.com", Password: "secret"}

	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{name: "valid signup", creds: valid},
		{name: "padded email", creds: models.Credentials{Name: "Ann", Email: "  ann@example.com ", Password: "secret"}},
		{name: "missing name", creds: models.Credentials{Email: "ann@example.com", Password: "secret"}, wantErr: ErrEmptyName},
		{name: "missing email", creds: models.Credentials{Name: "Ann", Password: "secret"}, wantErr: ErrEmptyEmail},
		{name: "malformed email", creds: models.Credentials{Name: "Ann", Email: "ann.example.com", Password: "secret"}, wantErr: ErrInvalidEmail},
		{name: "display name email", creds: models.Credentials{Name: "Ann", Email: "Ann <ann@example.com>", Password: "secret"}, wantErr: ErrInvalidEmail},
		{name: "missing password", creds: models.Credentials{Name: "Ann", Email: "ann@example.com"}, wantErr: ErrEmptyPassword},
		{name: "short password", creds: models.Credentials{Name: "Ann", Email: "ann@example.com", Password: "12345"}, wantErr: ErrPasswordTooShort},
		{name: "multibyte password counts runes", creds: models.Credentials{Name: "Ann", Email: "ann@example.com", Password: "пароль"}},
		{
			name:   "login scope skips name",
			creds:  models.Credentials{Email: "ann@example.com", Password: "secret"},
			fields: []string{FieldEmail, FieldPassword},
		},
		{name: "unknown field", creds: valid, fields: []string{FieldTitle}, wantErr: ErrUnknownField},
	}

	v := NewCredentialsValidator(6)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCredentialsValidator_Dispatch(t *testing.T) {
	v := NewCredentialsValidator(6)
	c := models.Credentials{Name: "Ann", Email: "ann@example.com", Password: "secret"}

	assert.NoError(t, v.Validate(context.Background(), &c))
	require.ErrorIs(t, v.Validate(context.Background(), models.PostFields{}), ErrUnsupportedType)
}
