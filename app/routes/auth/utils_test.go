package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Angel-Lizarzado/Transporte/app/config"
)

func setTestSecret(t *testing.T, secret string) {
	t.Helper()
	config.AppConfig = &config.Config{JWTSecret: []byte(secret), Logger: zap.NewNop()}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("hunter2!", hash))
	assert.False(t, CheckPasswordHash("hunter3!", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	setTestSecret(t, "test-secret")

	token, err := GenerateJWT("user-1", "admin@example.com", "org-1", "owner")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "org-1", claims.OrganizationID)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, "transporte-escolar", claims.Issuer)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	setTestSecret(t, "secret-a")
	token, err := GenerateJWT("user-1", "admin@example.com", "org-1", "owner")
	require.NoError(t, err)

	setTestSecret(t, "secret-b")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	setTestSecret(t, "test-secret")

	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}
