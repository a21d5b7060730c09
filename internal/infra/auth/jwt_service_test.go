package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/config"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	access, refresh, err := svc.GenerateTokens("user@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Principal)
	assert.Equal(t, "user", claims.Role)

	claims, err = svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Principal)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	access, refresh, err := svc.GenerateTokens("user@example.com", "user")
	require.NoError(t, err)

	// Access tokens must not pass refresh validation and vice versa.
	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens("user@example.com", "user")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access + "tampered")
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "other-access-secret"
	otherCfg.SecretKey.Refresh = "other-refresh-secret"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	access, _, err := otherSvc.GenerateTokens("user@example.com", "user")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}
