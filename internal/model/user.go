package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, params UpdateUserParams) (User, error)
}

// User represents a stored user with credential material.
// PasswordHash holds the encoded salted hash, never the plain secret.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterParams carries the fields of a registration request.
type RegisterParams struct {
	Email    string
	Username string
	Password string
}

// UpdateProfileParams carries a partial profile update. Nil fields are
// left unchanged.
type UpdateProfileParams struct {
	UserID   uuid.UUID
	Username *string
	Email    *string
	Password *string
}

// UpdateUserParams is the store-level form of a partial user update.
// Nil fields are left unchanged.
type UpdateUserParams struct {
	ID           uuid.UUID
	Username     *string
	Email        *string
	PasswordHash *string
}

// AuthResult is returned by registration and login: the issued bearer
// token together with the user it authenticates.
type AuthResult struct {
	Token string
	User  User
}
