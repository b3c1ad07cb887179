package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appcontext "github.com/taskdeck/taskdeck-server/internal/api/http/context"
	"github.com/taskdeck/taskdeck-server/internal/testutil"
)

type mockTokenParser struct {
	mock.Mock
}

func (m *mockTokenParser) ParseToken(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func newAuthMiddleware(parser *mockTokenParser) (*Authenticate, *appcontext.Manager) {
	contextManager := appcontext.NewManager()
	return NewAuthenticate(parser, contextManager, testutil.MakeNoopLogger()), contextManager
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["message"]
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, _ := newAuthMiddleware(&mockTokenParser{})

	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication required", decodeMessage(t, rec))
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		parsed uuid.UUID
		err    error
	}{
		{"no bearer prefix", "some-token", uuid.Nil, nil},
		{"empty bearer token", "Bearer ", uuid.Nil, nil},
		{"parse error", "Bearer bad", uuid.Nil, assert.AnError},
		{"nil user id", "Bearer nil-subject", uuid.Nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &mockTokenParser{}
			parser.On("ParseToken", mock.Anything).Return(tt.parsed, tt.err).Maybe()

			m, _ := newAuthMiddleware(parser)
			handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not be called")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "please authenticate", decodeMessage(t, rec))
		})
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	parser := &mockTokenParser{}
	parser.On("ParseToken", "good-token").Return(userID, nil).Once()

	m, contextManager := newAuthMiddleware(parser)

	called := false
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got, ok := contextManager.GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, userID, got)
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	parser.AssertExpectations(t)
}
