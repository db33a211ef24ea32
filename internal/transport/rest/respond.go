package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

const problemContentType = "application/problem+json"

// Problem is the error body returned by every API endpoint.
type Problem struct {
	Title       string       `json:"title"`
	Status      int          `json:"status"`
	EntityName  string       `json:"entityName,omitempty"`
	ErrorKey    string       `json:"errorKey,omitempty"`
	Message     string       `json:"message"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}

// FieldError is a single rejected field within a Problem.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// errorWriter maps errors onto problem responses for one entity.
type errorWriter struct {
	app    string
	entity string
	log    *slog.Logger
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error) {
	p := Problem{EntityName: e.entity, Message: err.Error()}

	var (
		alert *domain.AlertError
		ve    *domain.ValidationError
	)
	switch {
	case errors.As(err, &alert):
		p.Status = http.StatusBadRequest
		p.Title = alert.Message
		p.EntityName = alert.Entity
		p.ErrorKey = alert.Key
		p.Message = "error." + alert.Key

	case errors.As(err, &ve):
		p.Status = http.StatusBadRequest
		p.Title = "Method argument not valid"
		p.ErrorKey = "validation"
		p.Message = "error.validation"
		for _, fe := range ve.Errors {
			p.FieldErrors = append(p.FieldErrors, FieldError{Field: fe.Field, Message: fe.Message})
		}

	case errors.Is(err, domain.ErrValidation):
		p.Status = http.StatusBadRequest
		p.Title = "Bad Request"
		p.ErrorKey = "validation"
		p.Message = "error.validation"

	case errors.Is(err, domain.ErrNotFound):
		p.Status = http.StatusNotFound
		p.Title = "Not Found"
		p.ErrorKey = "notfound"
		p.Message = "error.http.404"

	case errors.Is(err, domain.ErrUnauthorized):
		p.Status = http.StatusUnauthorized
		p.Title = "Unauthorized"
		p.ErrorKey = "unauthorized"
		p.Message = "error.http.401"

	case errors.Is(err, domain.ErrForbidden):
		p.Status = http.StatusForbidden
		p.Title = "Forbidden"
		p.ErrorKey = "forbidden"
		p.Message = "error.http.403"

	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		p.Status = http.StatusConflict
		p.Title = "Conflict"
		p.ErrorKey = "conflict"
		p.Message = "error.concurrencyFailure"

	default:
		e.log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		p.Status = http.StatusInternalServerError
		p.Title = "Internal Server Error"
		p.ErrorKey = "internal"
		p.Message = "error.http.500"
	}

	e.send(w, p)
}

// status writes a problem for a transport-level failure with no domain error behind it.
func (e errorWriter) status(w http.ResponseWriter, status int, key string) {
	e.send(w, Problem{
		Title:      http.StatusText(status),
		Status:     status,
		EntityName: e.entity,
		ErrorKey:   key,
		Message:    "error.http." + strconv.Itoa(status),
	})
}

func (e errorWriter) send(w http.ResponseWriter, p Problem) {
	if p.Status == http.StatusBadRequest {
		setFailureAlert(w.Header(), e.app, p.ErrorKey, p.EntityName)
	}
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p) //nolint:errcheck
}

// badRequest reports a malformed request that never reached the service.
func (e errorWriter) badRequest(w http.ResponseWriter, r *http.Request, field, message string) {
	e.write(w, r, domain.NewValidationError(field, message))
}
