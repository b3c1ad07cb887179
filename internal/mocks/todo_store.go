package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskdeck/taskdeck-server/internal/model"
)

// TodoStore is a mock implementation of model.TodoStore.
type TodoStore struct {
	mock.Mock
}

func (m *TodoStore) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	args := m.Called(ctx, todo)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoStore) GetByID(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoStore) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Todo, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *TodoStore) GetByOwnerIDAndDate(ctx context.Context, ownerID uuid.UUID, date string) ([]model.Todo, error) {
	args := m.Called(ctx, ownerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *TodoStore) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *TodoStore) SetCompleted(ctx context.Context, id, ownerID uuid.UUID, completed bool) (model.Todo, error) {
	args := m.Called(ctx, id, ownerID, completed)
	return args.Get(0).(model.Todo), args.Error(1)
}
