package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

type userRef struct {
	ID    uuid.UUID `json:"id"`
	Login string    `json:"login,omitempty"`
}

// itemBody is the full representation sent by Create and Update.
type itemBody struct {
	ID          *int64   `json:"id"`
	Description *string  `json:"description"`
	Status      string   `json:"status"`
	User        *userRef `json:"user"`
}

// patchBody omits every field the caller left unset.
type patchBody struct {
	ID          int64    `json:"id"`
	Description *string  `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	User        *userRef `json:"user,omitempty"`
}

type itemResponse struct {
	ID          int64      `json:"id"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	User        *userRef   `json:"user"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type problemResponse struct {
	Title       string `json:"title"`
	Status      int    `json:"status"`
	EntityName  string `json:"entityName"`
	ErrorKey    string `json:"errorKey"`
	Message     string `json:"message"`
	FieldErrors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fieldErrors"`
}

func toBody(item domain.ToDoItem) itemBody {
	b := itemBody{Description: item.Description, Status: string(item.Status)}
	if id, ok := item.Identifier(); ok {
		b.ID = &id
	}
	b.User = ownerRef(item)
	return b
}

func toPatch(item domain.ToDoItem) patchBody {
	return patchBody{
		ID:          item.ID,
		Description: item.Description,
		Status:      string(item.Status),
		User:        ownerRef(item),
	}
}

func ownerRef(item domain.ToDoItem) *userRef {
	switch {
	case item.UserID != nil:
		return &userRef{ID: *item.UserID}
	case item.User != nil && item.User.ID != uuid.Nil:
		return &userRef{ID: item.User.ID}
	}
	return nil
}

func (r itemResponse) toDomain() domain.ToDoItem {
	item := domain.ToDoItem{
		ID:          r.ID,
		Description: r.Description,
		Status:      domain.ItemStatus(r.Status),
	}
	if r.User != nil {
		id := r.User.ID
		item.UserID = &id
		item.User = &domain.User{ID: r.User.ID, Login: r.User.Login}
	}
	if r.CreatedAt != nil {
		item.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		item.UpdatedAt = *r.UpdatedAt
	}
	return item
}

func (r userResponse) toDomain() domain.User {
	return domain.User{ID: r.ID, Login: r.Login, Email: r.Email, CreatedAt: r.CreatedAt}
}
