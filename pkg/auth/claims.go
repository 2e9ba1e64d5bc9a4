package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	AccountID uuid.UUID
	Handle    string
	Admin     bool
	JTI       string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	AccountID uuid.UUID `json:"account_id"`
	Handle    string    `json:"handle"`
	Admin     bool      `json:"admin,omitempty"`
	jwt.RegisteredClaims
}
