// Package context carries the authenticated user identity through the
// request context.
package context

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

// userIDKey is the context key under which the authenticated user ID is
// stored.
const userIDKey ctxKey = iota

// Manager represents a request-context manager for user ID operations.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a child context carrying the user ID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the user ID placed by the
// authentication middleware. The boolean reports whether one was set.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
