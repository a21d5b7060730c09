package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, hasher.Check("secret-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// Each hash carries its own salt, so the outputs differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("password", ""))
}
