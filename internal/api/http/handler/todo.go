package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck-server/internal/logger"
	"github.com/taskdeck/taskdeck-server/internal/model"
)

// TodoService defines owner-scoped todo operations.
type TodoService interface {
	Create(ctx context.Context, params model.CreateTodoParams) (model.Todo, error)
	List(ctx context.Context, ownerID uuid.UUID, date string) ([]model.Todo, error)
	Get(ctx context.Context, ownerID, todoID uuid.UUID) (model.Todo, error)
	Delete(ctx context.Context, ownerID, todoID uuid.UUID) error
	SetCompleted(ctx context.Context, ownerID, todoID uuid.UUID, completed bool) (model.Todo, error)
}

// Todo handles HTTP endpoints for todo management.
type Todo struct {
	todoService    TodoService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTodo creates a new Todo handler.
func NewTodo(todoService TodoService, contextManager model.ContextManager, logger *logger.Logger) *Todo {
	return &Todo{
		todoService:    todoService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type todoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Important   bool   `json:"important"`
	DatePosted  string `json:"datePosted"`
	TimePosted  string `json:"timePosted"`
}

type patchTodoRequest struct {
	Completed *bool `json:"completed"`
}

type todoResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Important   bool   `json:"important"`
	DatePosted  string `json:"datePosted"`
	TimePosted  string `json:"timePosted"`
}

func toTodoResponse(todo model.Todo) todoResponse {
	return todoResponse{
		ID:          todo.ID.String(),
		UserID:      todo.OwnerID.String(),
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		Important:   todo.Important,
		DatePosted:  todo.DatePosted,
		TimePosted:  todo.TimePosted,
	}
}

func (h *Todo) ownerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "please authenticate")
		return uuid.Nil, false
	}
	return userID, true
}

// Create adds a new todo owned by the authenticated user.
func (h *Todo) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.Debug("Todo handler: processing create request", "owner_id", ownerID)

	created, err := h.todoService.Create(r.Context(), model.CreateTodoParams{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Important:   req.Important,
		DatePosted:  req.DatePosted,
		TimePosted:  req.TimePosted,
	})
	if err != nil {
		h.logger.Error("Todo handler: create failed",
			"owner_id", ownerID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Todo handler: create completed",
		"owner_id", ownerID,
		"todo_id", created.ID)

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Todo created successfully",
		"todo":    toTodoResponse(created),
	})
}

// List returns the caller's todos, optionally filtered by exact date.
func (h *Todo) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	date := r.URL.Query().Get("date")

	todos, err := h.todoService.List(r.Context(), ownerID, date)
	if err != nil {
		h.logger.Error("Todo handler: list failed",
			"owner_id", ownerID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	// Empty list serializes as [] rather than null.
	response := make([]todoResponse, 0, len(todos))
	for _, todo := range todos {
		response = append(response, toTodoResponse(todo))
	}

	writeJSON(w, http.StatusOK, response)
}

// Get returns a single todo owned by the caller.
func (h *Todo) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	todoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	todo, err := h.todoService.Get(r.Context(), ownerID, todoID)
	if err != nil {
		h.logger.Error("Todo handler: get failed",
			"owner_id", ownerID,
			"todo_id", todoID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(todo))
}

// Delete removes a todo owned by the caller.
func (h *Todo) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	todoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.todoService.Delete(r.Context(), ownerID, todoID); err != nil {
		h.logger.Error("Todo handler: delete failed",
			"owner_id", ownerID,
			"todo_id", todoID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Todo handler: delete completed",
		"owner_id", ownerID,
		"todo_id", todoID)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Todo deleted successfully"})
}

// Patch updates the completed flag of a todo owned by the caller.
func (h *Todo) Patch(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	todoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req patchTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Completed == nil {
		writeError(w, http.StatusBadRequest, "completed field is required")
		return
	}

	updated, err := h.todoService.SetCompleted(r.Context(), ownerID, todoID, *req.Completed)
	if err != nil {
		h.logger.Error("Todo handler: patch failed",
			"owner_id", ownerID,
			"todo_id", todoID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Todo handler: patch completed",
		"owner_id", ownerID,
		"todo_id", todoID,
		"completed", updated.Completed)

	writeJSON(w, http.StatusOK, map[string]any{"todo": toTodoResponse(updated)})
}
