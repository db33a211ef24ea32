package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique login and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:    uuid.New(),
		Login: "testuser-" + suffix,
		Email: "testuser-" + suffix + "@example.com",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (id, login, email) VALUES ($1, $2, $3) RETURNING created_at`,
		user.ID, user.Login, user.Email,
	).Scan(&user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedToDoItem inserts a to-do item with the given status, optionally owned
// by ownerID, and returns it.
func SeedToDoItem(t *testing.T, pool *pgxpool.Pool, status domain.ItemStatus, ownerID *uuid.UUID) domain.ToDoItem {
	t.Helper()
	ctx := context.Background()

	desc := "task " + uniqueSuffix()
	item := domain.ToDoItem{
		Description: &desc,
		Status:      status,
		UserID:      ownerID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO to_do_item (description, status, user_id) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		item.Description, string(item.Status), item.UserID,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedToDoItem insert: %v", err)
	}

	return item
}
