package model

import "github.com/google/uuid"

// TokenManager generates and validates session and reset tokens.
// Access and refresh tokens are self-verifying; reset tokens are opaque
// random strings checked by equality against a stored value.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
	ParseRefreshToken(token string) (uuid.UUID, error)
	GenerateResetToken() (string, error)
}
