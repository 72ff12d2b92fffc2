package service

import (
	"github.com/google/uuid"
)

// TokenService validates access tokens issued by the identity provider.
// Authentication mechanics (registration, login, refresh) live outside this
// service; the storefront only needs the verified user identity and roles.
type TokenService interface {
	// ParseAccessToken validates the token and returns the user ID and roles.
	ParseAccessToken(token string) (uuid.UUID, []string, error)

	// GenerateAccessToken issues a signed access token. Used by tooling and tests.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)
}
