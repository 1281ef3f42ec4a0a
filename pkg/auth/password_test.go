package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "correct horse battery", hashed)

	// bcrypt salts, so hashing twice never collides
	hashed2, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, hashed2)
}

func TestCheckPassword(t *testing.T) {
	hashed, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hashed, "correct horse battery"))
	assert.False(t, CheckPassword(hashed, "wrong password"))
	assert.False(t, CheckPassword(hashed, ""))
	assert.False(t, CheckPassword("", "correct horse battery"))
}
