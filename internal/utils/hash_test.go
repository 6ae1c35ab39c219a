package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	tests := []struct {
		name string
		data string
		key  string
		want string
	}{
		{
			// RFC 4231 test case 2
			name: "known vector",
			data: "what do ya want for nothing?",
			key:  "Jefe",
			want: "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		},
		{
			name: "empty data and key",
			data: "",
			key:  "",
			want: "b613679a0814d9ec772f95d778c35fc5ff1697c493715653c6c712144292c5ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashString(tt.data, tt.key))
		})
	}
}

func TestHashString_Properties(t *testing.T) {
	a := HashString("password", "key")

	assert.Len(t, a, 64)
	assert.Equal(t, a, HashString("password", "key"))
	assert.NotEqual(t, a, HashString("password", "other-key"))
	assert.NotEqual(t, a, HashString("Password", "key"))
}
