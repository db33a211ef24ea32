package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityUser is the entity name used in alerts and error payloads.
const EntityUser = "user"

// User is the owner side of a to-do item.
type User struct {
	ID        uuid.UUID
	Login     string
	Email     string
	CreatedAt time.Time
}

// Identifier returns the user id and whether it is set.
func (u User) Identifier() (uuid.UUID, bool) {
	return u.ID, u.ID != uuid.Nil
}
