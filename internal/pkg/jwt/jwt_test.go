package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	service := NewJWTService(testSecret, "1h")

	tokenString, expiresAt, err := service.GenerateAccessToken("山田太郎", true)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := service.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "山田太郎", claims["employee_name"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	service := NewJWTService(testSecret, "not-a-duration")

	_, _, err := service.GenerateAccessToken("山田太郎", false)
	assert.Error(t, err)
}

func TestDecode_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(testSecret, "1h")
	verifier := NewJWTService("a-different-secret", "1h")

	tokenString, _, err := issuer.GenerateAccessToken("山田太郎", false)
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}
