package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher("pepper", bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, h.Verify(hash, "correct horse"))
	assert.False(t, h.Verify(hash, "wrong horse"))
	assert.False(t, h.Verify("not-a-hash", "correct horse"))

	other, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes must be salted")

	assert.False(t, NewPasswordHasher("other-pepper", bcrypt.MinCost).Verify(hash, "correct horse"))
}

func TestPasswordHasher_LongPassword(t *testing.T) {
	h := NewPasswordHasher("pepper", bcrypt.MinCost)

	long := strings.Repeat("x", 100)
	hash, err := h.Hash(long)
	require.NoError(t, err)
	assert.True(t, h.Verify(hash, long))
	assert.False(t, h.Verify(hash, long[:72]))
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	h := NewPasswordHasher("pepper", 0).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
