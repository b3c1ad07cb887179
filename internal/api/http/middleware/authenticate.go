// Package middleware provides HTTP middlewares for authentication and
// request logging.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck-server/internal/logger"
	"github.com/taskdeck/taskdeck-server/internal/model"
)

// TokenParser resolves the user ID from a bearer token string.
type TokenParser interface {
	ParseToken(tokenString string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the user ID into the
// request context. Stateless; the only side effect is the context value.
type Authenticate struct {
	tokenParser    TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenParser: tokenParser, contextManager: contextManager, logger: logger}
}

// Handle reads the Authorization header, validates the token and calls
// the next handler with the user ID in context. A missing header and an
// invalid token produce distinct messages but the same status.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeUnauthorized(w, "authentication required")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			writeUnauthorized(w, "please authenticate")
			return
		}

		userID, err := m.tokenParser.ParseToken(tokenString)
		if err != nil || userID == uuid.Nil {
			m.logger.Debug("authentication failed", "path", r.URL.Path)
			writeUnauthorized(w, "please authenticate")
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
