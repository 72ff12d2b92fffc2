package auth

import (
	"testing"

	"storefront/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	service, err := NewJWTService(testConfig("test-access-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"admin", "customer"}

	token, err := service.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, parsedRoles, err := service.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
	assert.Equal(t, roles, parsedRoles)
}

func TestJWTService_RoundTrip_NoRoles(t *testing.T) {
	service, err := NewJWTService(testConfig("test-access-secret"))
	require.NoError(t, err)

	userID := uuid.New()

	token, err := service.GenerateAccessToken(userID, nil)
	require.NoError(t, err)

	parsedID, parsedRoles, err := service.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
	assert.Empty(t, parsedRoles)
}

func TestJWTService_ParseAccessToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("other-secret"))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, _, err = verifier.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_ParseAccessToken_Garbage(t *testing.T) {
	service, err := NewJWTService(testConfig("test-access-secret"))
	require.NoError(t, err)

	_, _, err = service.ParseAccessToken("not.a.token")
	assert.Error(t, err)
}
