package service

import (
	"fmt"

	"github.com/MKhiriev/go-blog/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher peppers passwords with HMAC-SHA256 before handing them to
// bcrypt.
type bcryptHasher struct {
	pepperKey string
	cost      int
}

// NewPasswordHasher returns a bcrypt PasswordHasher. A cost outside
// bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewPasswordHasher(pepperKey string, cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{pepperKey: pepperKey, cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(utils.HashString(password, h.pepperKey)), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(utils.HashString(password, h.pepperKey))) == nil
}
