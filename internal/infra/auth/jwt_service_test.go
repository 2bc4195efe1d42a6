package auth

import (
	"testing"
	"time"

	"cakeshop/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"customer", "admin"}

	token, err := svc.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-one-secret-one-secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-two-secret-two-secret-two"))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), []string{"customer"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := impl.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(""))
	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
