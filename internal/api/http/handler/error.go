// Package handler contains HTTP handlers translating JSON requests into
// service calls and service errors into response codes.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskdeck/taskdeck-server/internal/model"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// handleError maps service errors onto HTTP responses. Anything not
// classified by the model error types becomes an opaque 500.
func handleError(w http.ResponseWriter, err error) {
	var validation *model.ValidationError
	var conflict *model.ConflictError
	var auth *model.AuthError

	switch {
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Message)
	case errors.As(err, &conflict):
		writeError(w, http.StatusBadRequest, conflict.Message)
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "invalid email or password")
	case errors.As(err, &auth):
		writeError(w, http.StatusUnauthorized, auth.Message)
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
