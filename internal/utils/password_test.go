package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("crumpets-4ever")
	require.NoError(t, err)
	assert.NotEqual(t, "crumpets-4ever", hash)

	assert.True(t, CheckPasswordHash("crumpets-4ever", hash))
	assert.False(t, CheckPasswordHash("crumpets-4evah", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// bcrypt embeds a fresh salt per call
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("same-password", first))
	assert.True(t, CheckPasswordHash("same-password", second))
}

func TestGenerateSecureRandomString(t *testing.T) {
	token, err := GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, token, 64)

	other, err := GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}
