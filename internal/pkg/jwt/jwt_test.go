package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	service := New("test-secret", time.Hour)

	token, err := service.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	token, err := New("first-secret", time.Hour).GenerateToken(42)
	require.NoError(t, err)

	_, err = New("other-secret", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	service := New("test-secret", -time.Minute)

	token, err := service.GenerateToken(42)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestService_ValidateToken_Garbage(t *testing.T) {
	service := New("test-secret", time.Hour)

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
}
