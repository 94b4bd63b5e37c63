package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_Deterministic(t *testing.T) {
	h1 := HashPassword("secret123")
	h2 := HashPassword("secret123")
	assert.Equal(t, h1, h2, "cùng mật khẩu phải cho cùng hash")
	assert.Len(t, h1, 64, "hash SHA-256 hex phải dài 64 ký tự")
	assert.NotEqual(t, h1, HashPassword("secret124"))
}

func TestVerifyPassword(t *testing.T) {
	hashed := HashPassword("secret123")

	assert.True(t, VerifyPassword("secret123", hashed))
	assert.False(t, VerifyPassword("wrong", hashed))
	assert.False(t, VerifyPassword("secret123", "not-a-hash"))
	assert.False(t, VerifyPassword("", hashed))
}
