package model

import "github.com/google/uuid"

// TokenManager issues and verifies signed bearer tokens. Tokens are
// self-contained; nothing is persisted.
type TokenManager interface {
	GenerateToken(userID uuid.UUID) (string, error)
	ParseToken(tokenString string) (uuid.UUID, error)
}
