package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EntityToDoItem is the entity name used in alerts and error payloads.
const EntityToDoItem = "toDoItem"

// ItemStatus is the progress state of a to-do item. No transition rules
// apply: any status may replace any other.
type ItemStatus string

const (
	ItemStatusToDo       ItemStatus = "ToDo"
	ItemStatusInProgress ItemStatus = "InProgress"
	ItemStatusDone       ItemStatus = "Done"
)

// ItemStatuses lists every valid status in display order.
var ItemStatuses = []ItemStatus{ItemStatusToDo, ItemStatusInProgress, ItemStatusDone}

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusToDo, ItemStatusInProgress, ItemStatusDone:
		return true
	}
	return false
}

// ToDoItem is a single task, optionally owned by a user.
// ID is assigned by the store; zero means the item has not been persisted.
type ToDoItem struct {
	ID          int64
	Description *string
	Status      ItemStatus
	UserID      *uuid.UUID
	User        *User // resolved owner, never persisted
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsNew reports whether the item has not been persisted yet.
func (t ToDoItem) IsNew() bool {
	return t.ID == 0
}

// Equal compares items by identity. Transient items are never equal to
// anything, themselves included.
func (t ToDoItem) Equal(other ToDoItem) bool {
	if t.ID == 0 || other.ID == 0 {
		return false
	}
	return t.ID == other.ID
}

// Identifier returns the item id and whether it has been assigned.
func (t ToDoItem) Identifier() (int64, bool) {
	return t.ID, t.ID != 0
}

func (t ToDoItem) String() string {
	desc := ""
	if t.Description != nil {
		desc = *t.Description
	}
	return fmt.Sprintf("ToDoItem{id=%d, description=%q, status=%s}", t.ID, desc, t.Status)
}

// ToDoItemFilter narrows item listings.
type ToDoItemFilter struct {
	Status *ItemStatus
	UserID *uuid.UUID
}
