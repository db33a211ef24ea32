package client

import (
	"fmt"
	"net/http"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// APIError is a non-2xx response decoded from the problem body.
type APIError struct {
	Status      int
	Title       string
	EntityName  string
	ErrorKey    string
	Message     string
	FieldErrors []domain.FieldError
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Title
	}
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.ErrorKey != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.ErrorKey, msg)
	}
	return fmt.Sprintf("api: %d: %s", e.Status, msg)
}

// Is maps the status onto the domain sentinels so callers can use errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrValidation:
		return e.Status == http.StatusBadRequest
	case domain.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.Status == http.StatusForbidden
	case domain.ErrConflict:
		return e.Status == http.StatusConflict
	}
	return false
}
