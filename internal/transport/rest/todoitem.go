package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/service/todoitem"
	"github.com/heartmarshall/todo-backend/internal/transport/dataloader"
)

// toDoItemService defines the use cases needed by ToDoItemHandler.
type toDoItemService interface {
	Create(ctx context.Context, input todoitem.SaveInput) (*domain.ToDoItem, error)
	Update(ctx context.Context, id int64, input todoitem.SaveInput) (*domain.ToDoItem, error)
	PartialUpdate(ctx context.Context, id int64, input todoitem.PatchInput) (*domain.ToDoItem, error)
	Get(ctx context.Context, id int64) (*domain.ToDoItem, error)
	List(ctx context.Context, filter domain.ToDoItemFilter, p domain.Pageable) (domain.Page[domain.ToDoItem], error)
	Delete(ctx context.Context, id int64) error
}

// ToDoItemHandler serves /api/to-do-items.
type ToDoItemHandler struct {
	svc  toDoItemService
	app  string
	errs errorWriter
	log  *slog.Logger
}

// NewToDoItemHandler creates a ToDoItemHandler. app prefixes alert headers.
func NewToDoItemHandler(svc toDoItemService, app string, logger *slog.Logger) *ToDoItemHandler {
	log := logger.With("handler", "todoitem")
	return &ToDoItemHandler{
		svc:  svc,
		app:  app,
		errs: errorWriter{app: app, entity: domain.EntityToDoItem, log: log},
		log:  log,
	}
}

type userRef struct {
	ID    uuid.UUID `json:"id"`
	Login string    `json:"login,omitempty"`
}

type toDoItemRequest struct {
	ID          *int64   `json:"id"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	User        *userRef `json:"user"`
}

type toDoItemResponse struct {
	ID          int64      `json:"id"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	User        *userRef   `json:"user"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func (req toDoItemRequest) userID() *uuid.UUID {
	if req.User == nil || req.User.ID == uuid.Nil {
		return nil
	}
	id := req.User.ID
	return &id
}

func (req toDoItemRequest) saveInput() todoitem.SaveInput {
	in := todoitem.SaveInput{
		ID:          req.ID,
		Description: req.Description,
		UserID:      req.userID(),
	}
	if req.Status != nil {
		in.Status = domain.ItemStatus(*req.Status)
	}
	return in
}

func (req toDoItemRequest) patchInput() todoitem.PatchInput {
	in := todoitem.PatchInput{
		ID:          req.ID,
		Description: req.Description,
		UserID:      req.userID(),
	}
	if req.Status != nil {
		st := domain.ItemStatus(*req.Status)
		in.Status = &st
	}
	return in
}

// Create handles POST /api/to-do-items.
func (h *ToDoItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req toDoItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.svc.Create(r.Context(), req.saveInput())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	id := strconv.FormatInt(item.ID, 10)
	w.Header().Set("Location", "/api/to-do-items/"+id)
	setEntityAlert(w.Header(), h.app, domain.EntityToDoItem, "created", id)
	h.writeItem(w, r, http.StatusCreated, item)
}

// Update handles PUT /api/to-do-items/{id}.
func (h *ToDoItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.errs.badRequest(w, r, "id", "invalid path id")
		return
	}
	var req toDoItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.svc.Update(r.Context(), id, req.saveInput())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	setEntityAlert(w.Header(), h.app, domain.EntityToDoItem, "updated", strconv.FormatInt(item.ID, 10))
	h.writeItem(w, r, http.StatusOK, item)
}

// PartialUpdate handles PATCH /api/to-do-items/{id}. Only non-null fields are applied.
func (h *ToDoItemHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	if !patchContentType(r.Header.Get("Content-Type")) {
		h.errs.status(w, http.StatusUnsupportedMediaType, "unsupportedmediatype")
		return
	}
	id, ok := pathID(r)
	if !ok {
		h.errs.badRequest(w, r, "id", "invalid path id")
		return
	}
	var req toDoItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.svc.PartialUpdate(r.Context(), id, req.patchInput())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	setEntityAlert(w.Header(), h.app, domain.EntityToDoItem, "updated", strconv.FormatInt(item.ID, 10))
	h.writeItem(w, r, http.StatusOK, item)
}

// List handles GET /api/to-do-items?page=&size=&sort=&status=&userId=.
func (h *ToDoItemHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := parsePageable(r)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	var filter domain.ToDoItemFilter
	if v := r.URL.Query().Get("status"); v != "" {
		st := domain.ItemStatus(v)
		filter.Status = &st
	}
	if v := r.URL.Query().Get("userId"); v != "" {
		uid, err := uuid.Parse(v)
		if err != nil {
			h.errs.badRequest(w, r, "userId", "must be a UUID")
			return
		}
		filter.UserID = &uid
	}

	page, err := h.svc.List(r.Context(), filter, p)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	if err := dataloader.FromContext(r.Context()).ResolveOwners(r.Context(), page.Content); err != nil {
		h.errs.write(w, r, err)
		return
	}

	out := make([]toDoItemResponse, len(page.Content))
	for i, it := range page.Content {
		out[i] = toResponse(it)
	}

	setPaginationHeaders(w.Header(), r.URL, page.Page, page.Size, page.Total)
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/to-do-items/{id}.
func (h *ToDoItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.errs.write(w, r, domain.ErrNotFound)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	h.writeItem(w, r, http.StatusOK, item)
}

// Delete handles DELETE /api/to-do-items/{id}.
func (h *ToDoItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.errs.write(w, r, domain.ErrNotFound)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.errs.write(w, r, err)
		return
	}

	setEntityAlert(w.Header(), h.app, domain.EntityToDoItem, "deleted", strconv.FormatInt(id, 10))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ToDoItemHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.errs.badRequest(w, r, "body", "invalid request body")
		return false
	}
	return true
}

// writeItem resolves the owner of a single item before encoding it.
func (h *ToDoItemHandler) writeItem(w http.ResponseWriter, r *http.Request, status int, item *domain.ToDoItem) {
	items := []domain.ToDoItem{*item}
	if err := dataloader.FromContext(r.Context()).ResolveOwners(r.Context(), items); err != nil {
		h.log.WarnContext(r.Context(), "resolve owner", slog.String("error", err.Error()))
	}
	writeJSON(w, status, toResponse(items[0]))
}

func toResponse(it domain.ToDoItem) toDoItemResponse {
	resp := toDoItemResponse{
		ID:          it.ID,
		Description: it.Description,
		Status:      it.Status.String(),
	}
	switch {
	case it.User != nil:
		resp.User = &userRef{ID: it.User.ID, Login: it.User.Login}
	case it.UserID != nil:
		resp.User = &userRef{ID: *it.UserID}
	}
	if !it.CreatedAt.IsZero() {
		t := it.CreatedAt
		resp.CreatedAt = &t
	}
	if !it.UpdatedAt.IsZero() {
		t := it.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

func patchContentType(header string) bool {
	if header == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mt == "application/json" || mt == "application/merge-patch+json"
}
