package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TodoStore defines persistence operations for todos. Delete and
// SetCompleted are owner-scoped at the query level; a foreign owner
// observes ErrNotFound.
type TodoStore interface {
	Create(ctx context.Context, todo Todo) (Todo, error)
	GetByID(ctx context.Context, id uuid.UUID) (Todo, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Todo, error)
	GetByOwnerIDAndDate(ctx context.Context, ownerID uuid.UUID, date string) ([]Todo, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	SetCompleted(ctx context.Context, id, ownerID uuid.UUID, completed bool) (Todo, error)
}

// Todo represents a task owned by exactly one user. DatePosted is a
// validated YYYY-MM-DD string; TimePosted is free-form and ordered
// lexicographically.
type Todo struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Completed   bool
	Important   bool
	DatePosted  string
	TimePosted  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateTodoParams carries the fields of a todo creation request.
// Completed and Important default to false when omitted by the client.
type CreateTodoParams struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	DatePosted  string
	TimePosted  string
	Completed   bool
	Important   bool
}
