package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskdeck/taskdeck-server/internal/model"
)

var _ model.TodoStore = (*TodoRepository)(nil)

type TodoRepository struct {
	db *Connection
}

func NewTodoRepository(db *Connection) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

func (r *TodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	query := `INSERT INTO todos (id, owner_id, title, description, completed, important, date_posted, time_posted)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, owner_id, title, description, completed, important, date_posted, time_posted, created_at, updated_at`

	var savedTodo model.Todo
	err := r.db.QueryRow(ctx, query,
		todo.ID, todo.OwnerID, todo.Title, todo.Description,
		todo.Completed, todo.Important, todo.DatePosted, todo.TimePosted,
	).Scan(
		&savedTodo.ID, &savedTodo.OwnerID, &savedTodo.Title, &savedTodo.Description,
		&savedTodo.Completed, &savedTodo.Important, &savedTodo.DatePosted, &savedTodo.TimePosted,
		&savedTodo.CreatedAt, &savedTodo.UpdatedAt,
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return savedTodo, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	query := `SELECT id, owner_id, title, description, completed, important, date_posted, time_posted, created_at, updated_at
			  FROM todos WHERE id = $1`

	var todo model.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&todo.ID, &todo.OwnerID, &todo.Title, &todo.Description,
		&todo.Completed, &todo.Important, &todo.DatePosted, &todo.TimePosted,
		&todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo by id: %w", err)
	}

	return todo, nil
}

// GetByOwnerID returns all todos of the owner ordered by time_posted
// ascending. The ordering is lexicographic; time_posted is a plain string.
func (r *TodoRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Todo, error) {
	query := `SELECT id, owner_id, title, description, completed, important, date_posted, time_posted, created_at, updated_at
			  FROM todos WHERE owner_id = $1
			  ORDER BY time_posted ASC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos by owner id: %w", err)
	}
	defer rows.Close()

	return scanTodos(rows)
}

// GetByOwnerIDAndDate restricts the owner's todos to an exact string
// match on date_posted.
func (r *TodoRepository) GetByOwnerIDAndDate(ctx context.Context, ownerID uuid.UUID, date string) ([]model.Todo, error) {
	query := `SELECT id, owner_id, title, description, completed, important, date_posted, time_posted, created_at, updated_at
			  FROM todos WHERE owner_id = $1 AND date_posted = $2
			  ORDER BY time_posted ASC`

	rows, err := r.db.Query(ctx, query, ownerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos by owner id and date: %w", err)
	}
	defer rows.Close()

	return scanTodos(rows)
}

// Delete removes the todo permanently. The owner predicate makes a
// foreign id indistinguishable from a missing one.
func (r *TodoRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	const query = `DELETE FROM todos WHERE id = $1 AND owner_id = $2`

	cmd, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// SetCompleted sets the completion flag and returns the updated row.
// Unconditional last-write-wins; concurrent writers are not detected.
func (r *TodoRepository) SetCompleted(ctx context.Context, id, ownerID uuid.UUID, completed bool) (model.Todo, error) {
	query := `UPDATE todos SET completed = $3, updated_at = NOW()
			  WHERE id = $1 AND owner_id = $2
			  RETURNING id, owner_id, title, description, completed, important, date_posted, time_posted, created_at, updated_at`

	var todo model.Todo
	err := r.db.QueryRow(ctx, query, id, ownerID, completed).Scan(
		&todo.ID, &todo.OwnerID, &todo.Title, &todo.Description,
		&todo.Completed, &todo.Important, &todo.DatePosted, &todo.TimePosted,
		&todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to set todo completion: %w", err)
	}

	return todo, nil
}

func scanTodos(rows pgx.Rows) ([]model.Todo, error) {
	var todos []model.Todo
	for rows.Next() {
		var todo model.Todo
		err := rows.Scan(
			&todo.ID, &todo.OwnerID, &todo.Title, &todo.Description,
			&todo.Completed, &todo.Important, &todo.DatePosted, &todo.TimePosted,
			&todo.CreatedAt, &todo.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}
