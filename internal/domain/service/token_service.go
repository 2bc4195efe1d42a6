package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for the customer with the given roles.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
