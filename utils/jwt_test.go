package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	tok, err := GenerateJWT("s3cret", 42, "asha@example.com", "seller", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Subject)
	assert.Equal(t, "seller", claims.Role)
}

func TestJWTRejectsWrongSecretAndExpiry(t *testing.T) {
	tok, err := GenerateJWT("s3cret", 1, "a@b.com", "buyer", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT("other", tok)
	assert.Error(t, err)

	expired, err := GenerateJWT("s3cret", 1, "a@b.com", "buyer", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT("s3cret", expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTRejectsMissingSubject(t *testing.T) {
	tok, err := GenerateJWT("s3cret", 1, "", "buyer", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT("s3cret", tok)
	assert.Error(t, err)
}
