package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appcontext "github.com/taskdeck/taskdeck-server/internal/api/http/context"
	"github.com/taskdeck/taskdeck-server/internal/model"
	"github.com/taskdeck/taskdeck-server/internal/testutil"
)

type mockTodoService struct {
	mock.Mock
}

func (m *mockTodoService) Create(ctx context.Context, params model.CreateTodoParams) (model.Todo, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *mockTodoService) List(ctx context.Context, ownerID uuid.UUID, date string) ([]model.Todo, error) {
	args := m.Called(ctx, ownerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *mockTodoService) Get(ctx context.Context, ownerID, todoID uuid.UUID) (model.Todo, error) {
	args := m.Called(ctx, ownerID, todoID)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *mockTodoService) Delete(ctx context.Context, ownerID, todoID uuid.UUID) error {
	args := m.Called(ctx, ownerID, todoID)
	return args.Error(0)
}

func (m *mockTodoService) SetCompleted(ctx context.Context, ownerID, todoID uuid.UUID, completed bool) (model.Todo, error) {
	args := m.Called(ctx, ownerID, todoID, completed)
	return args.Get(0).(model.Todo), args.Error(1)
}

func newTodoHandler(svc *mockTodoService) (*Todo, *appcontext.Manager) {
	contextManager := appcontext.NewManager()
	return NewTodo(svc, contextManager, testutil.MakeNoopLogger()), contextManager
}

func authedRequest(contextManager *appcontext.Manager, userID uuid.UUID, method, target, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(contextManager.SetUserIDToContext(req.Context(), userID))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func sampleTodo(ownerID uuid.UUID) model.Todo {
	return model.Todo{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       "Buy milk",
		Description: "Two liters",
		DatePosted:  "2025-06-06",
		TimePosted:  "10:00",
	}
}

func TestTodoHandler_Create(t *testing.T) {
	ownerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		created := sampleTodo(ownerID)
		svc := &mockTodoService{}
		svc.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateTodoParams) bool {
			return p.OwnerID == ownerID && p.Title == "Buy milk" && !p.Completed
		})).Return(created, nil).Once()

		h, contextManager := newTodoHandler(svc)

		req := authedRequest(contextManager, ownerID, http.MethodPost, "/api/todos",
			`{"title":"Buy milk","description":"Two liters","datePosted":"2025-06-06","timePosted":"10:00"}`)
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Todo created successfully", body["message"])
		todo := body["todo"].(map[string]any)
		assert.Equal(t, created.ID.String(), todo["id"])
		assert.Equal(t, ownerID.String(), todo["userId"])
		svc.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &mockTodoService{}
		svc.On("Create", mock.Anything, mock.Anything).
			Return(model.Todo{}, model.NewValidationError("Title and date are required")).Once()

		h, contextManager := newTodoHandler(svc)

		req := authedRequest(contextManager, ownerID, http.MethodPost, "/api/todos", `{"description":"D"}`)
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Title and date are required", decodeBody(t, rec)["message"])
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, _ := newTodoHandler(&mockTodoService{})

		req := httptest.NewRequest(http.MethodPost, "/api/todos", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTodoHandler_List(t *testing.T) {
	ownerID := uuid.New()

	t.Run("returns todos", func(t *testing.T) {
		todos := []model.Todo{sampleTodo(ownerID), sampleTodo(ownerID)}
		svc := &mockTodoService{}
		svc.On("List", mock.Anything, ownerID, "").Return(todos, nil).Once()

		h, contextManager := newTodoHandler(svc)

		req := authedRequest(contextManager, ownerID, http.MethodGet, "/api/todos", "")
		rec := httptest.NewRecorder()
		h.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body []map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Len(t, body, 2)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		svc := &mockTodoService{}
		svc.On("List", mock.Anything, ownerID, "").Return([]model.Todo{}, nil).Once()

		h, contextManager := newTodoHandler(svc)

		req := authedRequest(contextManager, ownerID, http.MethodGet, "/api/todos", "")
		rec := httptest.NewRecorder()
		h.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("date filter is forwarded", func(t *testing.T) {
		svc := &mockTodoService{}
		svc.On("List", mock.Anything, ownerID, "2025-06-06").Return([]model.Todo{}, nil).Once()

		h, contextManager := newTodoHandler(svc)

		req := authedRequest(contextManager, ownerID, http.MethodGet, "/api/todos?date=2025-06-06", "")
		rec := httptest.NewRecorder()
		h.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestTodoHandler_Get(t *testing.T) {
	ownerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		todo := sampleTodo(ownerID)
		svc := &mockTodoService{}
		svc.On("Get", mock.Anything, ownerID, todo.ID).Return(todo, nil).Once()

		h, contextManager := newTodoHandler(svc)

		req := authedRequest(contextManager, ownerID, http.MethodGet, "/api/todos/"+todo.ID.String(), "")
		req = withURLParam(req, "id", todo.ID.String())
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, todo.ID.String(), decodeBody(t, rec)["id"])
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		h, contextManager := newTodoHandler(&mockTodoService{})

		req := authedRequest(contextManager, ownerID, http.MethodGet, "/api/todos/not-a-uuid", "")
		req = withURLParam(req, "id", "not-a-uuid")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("foreign todo is not found", func(t *testing.T) {
		todoID := uuid.New()
		svc := &mockTodoService{}
		svc.On("Get", mock.Anything, ownerID, todoID).Return(model.Todo{}, model.ErrNotFound).Once()

		h, contextManager := newTodoHandler(svc)

		req := authedRequest(contextManager, ownerID, http.MethodGet, "/api/todos/"+todoID.String(), "")
		req = withURLParam(req, "id", todoID.String())
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not found", decodeBody(t, rec)["message"])
	})
}

func TestTodoHandler_Delete(t *testing.T) {
	ownerID := uuid.New()
	todoID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc := &mockTodoService{}
		svc.On("Delete", mock.Anything, ownerID, todoID).Return(nil).Once()

		h, contextManager := newTodoHandler(svc)

		req := authedRequest(contextManager, ownerID, http.MethodDelete, "/api/todos/"+todoID.String(), "")
		req = withURLParam(req, "id", todoID.String())
		rec := httptest.NewRecorder()
		h.Delete(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Todo deleted successfully", decodeBody(t, rec)["message"])
	})

	t.Run("missing todo", func(t *testing.T) {
		svc := &mockTodoService{}
		svc.On("Delete", mock.Anything, ownerID, todoID).Return(model.ErrNotFound).Once()

		h, contextManager := newTodoHandler(svc)

		req := authedRequest(contextManager, ownerID, http.MethodDelete, "/api/todos/"+todoID.String(), "")
		req = withURLParam(req, "id", todoID.String())
		rec := httptest.NewRecorder()
		h.Delete(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTodoHandler_Patch(t *testing.T) {
	ownerID := uuid.New()
	todoID := uuid.New()

	t.Run("success", func(t *testing.T) {
		updated := sampleTodo(ownerID)
		updated.ID = todoID
		updated.Completed = true

		svc := &mockTodoService{}
		svc.On("SetCompleted", mock.Anything, ownerID, todoID, true).Return(updated, nil).Once()

		h, contextManager := newTodoHandler(svc)

		req := authedRequest(contextManager, ownerID, http.MethodPatch, "/api/todos/"+todoID.String(), `{"completed":true}`)
		req = withURLParam(req, "id", todoID.String())
		rec := httptest.NewRecorder()
		h.Patch(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		todo := decodeBody(t, rec)["todo"].(map[string]any)
		assert.Equal(t, true, todo["completed"])
		svc.AssertExpectations(t)
	})

	t.Run("missing completed field", func(t *testing.T) {
		h, contextManager := newTodoHandler(&mockTodoService{})

		req := authedRequest(contextManager, ownerID, http.MethodPatch, "/api/todos/"+todoID.String(), `{}`)
		req = withURLParam(req, "id", todoID.String())
		rec := httptest.NewRecorder()
		h.Patch(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "completed field is required", decodeBody(t, rec)["message"])
	})

	t.Run("explicit false is accepted", func(t *testing.T) {
		updated := sampleTodo(ownerID)
		updated.ID = todoID

		svc := &mockTodoService{}
		svc.On("SetCompleted", mock.Anything, ownerID, todoID, false).Return(updated, nil).Once()

		h, contextManager := newTodoHandler(svc)

		req := authedRequest(contextManager, ownerID, http.MethodPatch, "/api/todos/"+todoID.String(), `{"completed":false}`)
		req = withURLParam(req, "id", todoID.String())
		rec := httptest.NewRecorder()
		h.Patch(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})
}
