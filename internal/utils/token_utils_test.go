package utils_test

import (
	"testing"
	"time"

	"github.com/jslogistics/jsl-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	userID := "user-123"

	token, err := utils.GenerateJWT(userID, secret, time.Hour, "jsl-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "jsl-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", "the-right-secret", time.Hour, "jsl-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	token, err := utils.GenerateJWT("user-123", secret, -time.Minute, "jsl-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, secret)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-password", hash))
	assert.False(t, utils.CheckPasswordHash("another-password", hash))
}
