package todoitem

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// SaveInput carries the writable fields of a to-do item for create and
// full update. ID is the identifier found in the request body.
type SaveInput struct {
	ID          *int64
	Description *string
	Status      domain.ItemStatus
	UserID      *uuid.UUID
}

// Validate checks the status. An empty status is accepted and defaults to ToDo on create.
func (i SaveInput) Validate() error {
	if i.Status != "" && !i.Status.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("must be one of %v", domain.ItemStatuses))
	}
	return nil
}

// PatchInput carries a partial update. Nil fields are left untouched.
type PatchInput struct {
	ID          *int64
	Description *string
	Status      *domain.ItemStatus
	UserID      *uuid.UUID
}

// Validate checks the status when present.
func (i PatchInput) Validate() error {
	if i.Status != nil && !i.Status.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("must be one of %v", domain.ItemStatuses))
	}
	return nil
}

// bodyID returns the id carried by a request body; nil and 0 both mean unset.
func bodyID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

// checkPathID enforces that the body id is set and matches the path id.
func checkPathID(pathID int64, body *int64) error {
	id := bodyID(body)
	if id == 0 {
		return domain.NewAlertError(domain.EntityToDoItem, domain.KeyIDNull, "Invalid id")
	}
	if id != pathID {
		return domain.NewAlertError(domain.EntityToDoItem, domain.KeyIDInvalid, "Invalid ID")
	}
	return nil
}
