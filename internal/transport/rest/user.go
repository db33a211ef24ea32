package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

type userService interface {
	List(ctx context.Context, p domain.Pageable) (domain.Page[domain.User], error)
	Current(ctx context.Context) (*domain.User, error)
}

// UserHandler serves the read-only user endpoints.
type UserHandler struct {
	svc  userService
	errs errorWriter
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, app string, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:  svc,
		errs: errorWriter{app: app, entity: domain.EntityUser, log: logger.With("handler", "user")},
	}
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Login: u.Login, Email: u.Email, CreatedAt: u.CreatedAt}
}

// List handles GET /api/users?page=&size=&sort=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := parsePageable(r)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), p)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	out := make([]userResponse, len(page.Content))
	for i, u := range page.Content {
		out[i] = toUserResponse(u)
	}

	setPaginationHeaders(w.Header(), r.URL, page.Page, page.Size, page.Total)
	writeJSON(w, http.StatusOK, out)
}

// Account handles GET /api/account and returns the authenticated user.
func (h *UserHandler) Account(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Current(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}
