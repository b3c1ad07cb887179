package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck-server/internal/logger"
	"github.com/taskdeck/taskdeck-server/internal/model"
)

// datePattern validates the stored calendar date. date_posted is a plain
// string; no timestamp parsing happens anywhere.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Todo struct {
	todoStore model.TodoStore
	logger    *logger.Logger
}

func NewTodo(todoStore model.TodoStore, logger *logger.Logger) *Todo {
	return &Todo{
		todoStore: todoStore,
		logger:    logger,
	}
}

// Create validates the fields and persists a todo owned by the caller.
func (s *Todo) Create(ctx context.Context, params model.CreateTodoParams) (model.Todo, error) {
	if params.Title == "" || params.DatePosted == "" {
		return model.Todo{}, model.NewValidationError("Title and date are required")
	}
	if !datePattern.MatchString(params.DatePosted) {
		return model.Todo{}, model.NewValidationError("Date must be in YYYY-MM-DD format")
	}
	if params.Description == "" {
		return model.Todo{}, model.NewValidationError("Description is required")
	}
	if params.TimePosted == "" {
		return model.Todo{}, model.NewValidationError("Time is required")
	}

	todo := model.Todo{
		ID:          uuid.New(),
		OwnerID:     params.OwnerID,
		Title:       params.Title,
		Description: params.Description,
		Completed:   params.Completed,
		Important:   params.Important,
		DatePosted:  params.DatePosted,
		TimePosted:  params.TimePosted,
	}

	savedTodo, err := s.todoStore.Create(ctx, todo)
	if err != nil {
		s.logger.Error("Todo service: failed to create todo",
			"owner_id", params.OwnerID,
			"error", err.Error())
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Info("Todo service: todo created",
		"owner_id", params.OwnerID,
		"todo_id", savedTodo.ID)

	return savedTodo, nil
}

// List returns the caller's todos, optionally restricted to an exact
// date match, ordered by time_posted ascending.
func (s *Todo) List(ctx context.Context, ownerID uuid.UUID, date string) ([]model.Todo, error) {
	var (
		todos []model.Todo
		err   error
	)
	if date != "" {
		todos, err = s.todoStore.GetByOwnerIDAndDate(ctx, ownerID, date)
	} else {
		todos, err = s.todoStore.GetByOwnerID(ctx, ownerID)
	}
	if err != nil {
		s.logger.Error("Todo service: failed to list todos",
			"owner_id", ownerID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

// Get loads a todo by id. A todo owned by someone else is reported as
// not found.
func (s *Todo) Get(ctx context.Context, ownerID, todoID uuid.UUID) (model.Todo, error) {
	todo, err := s.todoStore.GetByID(ctx, todoID)
	if err != nil {
		return model.Todo{}, err
	}

	if todo.OwnerID != ownerID {
		return model.Todo{}, model.ErrNotFound
	}

	return todo, nil
}

// Delete removes the caller's todo permanently.
func (s *Todo) Delete(ctx context.Context, ownerID, todoID uuid.UUID) error {
	if err := s.todoStore.Delete(ctx, todoID, ownerID); err != nil {
		return err
	}

	s.logger.Info("Todo service: todo deleted",
		"owner_id", ownerID,
		"todo_id", todoID)

	return nil
}

// SetCompleted sets the completion flag on the caller's todo and returns
// the updated record.
func (s *Todo) SetCompleted(ctx context.Context, ownerID, todoID uuid.UUID, completed bool) (model.Todo, error) {
	todo, err := s.todoStore.SetCompleted(ctx, todoID, ownerID, completed)
	if err != nil {
		return model.Todo{}, err
	}

	s.logger.Info("Todo service: todo completion updated",
		"owner_id", ownerID,
		"todo_id", todoID,
		"completed", completed)

	return todo, nil
}
