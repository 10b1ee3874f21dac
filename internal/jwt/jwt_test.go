package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	service := New("test-secret", time.Hour)

	tokenStr, err := service.NewAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := service.DecodeToken(tokenStr)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, true, claims["admin"])
	assert.NotEmpty(t, claims["jti"], "Each token should carry a unique id")
}

func TestDecodeTokenRejectsWrongKey(t *testing.T) {
	tokenStr, err := New("first-secret", time.Hour).NewAdminToken()
	require.NoError(t, err)

	_, err = New("second-secret", time.Hour).DecodeToken(tokenStr)
	require.Error(t, err)
}

func TestDecodeTokenRejectsExpired(t *testing.T) {
	tokenStr, err := New("test-secret", -time.Minute).NewAdminToken()
	require.NoError(t, err)

	_, err = New("test-secret", time.Hour).DecodeToken(tokenStr)
	require.Error(t, err)
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	_, err := New("test-secret", time.Hour).DecodeToken("not.a.token")
	require.Error(t, err)
}
