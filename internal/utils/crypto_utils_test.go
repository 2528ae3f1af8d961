package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DesignDeskHQ/design_desk_app/internal/utils"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, utils.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, utils.CheckPasswordHash("wrong password", hash))
}

func TestHashRefreshToken_Deterministic(t *testing.T) {
	hash := utils.HashRefreshToken("some-refresh-token")

	// Hex-encoded SHA-256 digest.
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, utils.HashRefreshToken("some-refresh-token"))
	assert.True(t, utils.CompareRefreshTokenHash("some-refresh-token", hash))
	assert.False(t, utils.CompareRefreshTokenHash("other-token", hash))
}

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s, 64)

	other, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}
