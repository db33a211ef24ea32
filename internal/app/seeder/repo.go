// Package seeder fills a development database with users and to-do items.
package seeder

import (
	"context"
	"fmt"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	todoitemrepo "github.com/heartmarshall/todo-backend/internal/adapter/postgres/todoitem"
	userrepo "github.com/heartmarshall/todo-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Store is the persistence contract consumed by the pipeline.
// Implemented by DBStore.
type Store interface {
	UserByLogin(ctx context.Context, login string) (*domain.User, error)
	CreateUser(ctx context.Context, u domain.User) (*domain.User, error)
	// SaveItems stores one batch atomically and returns the number saved.
	SaveItems(ctx context.Context, items []domain.ToDoItem) (int, error)
}

// DBStore implements Store on top of the postgres repositories.
type DBStore struct {
	db    postgres.Querier
	tx    *postgres.TxManager
	users *userrepo.Repo
	items *todoitemrepo.Repo
}

// NewDBStore creates a DBStore. Single-row calls run directly on db;
// item batches run in a transaction opened by tx.
func NewDBStore(db postgres.Querier, tx *postgres.TxManager) *DBStore {
	return &DBStore{
		db:    db,
		tx:    tx,
		users: userrepo.New(),
		items: todoitemrepo.New(),
	}
}

func (s *DBStore) UserByLogin(ctx context.Context, login string) (*domain.User, error) {
	return s.users.GetByLogin(ctx, s.db, login)
}

func (s *DBStore) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	return s.users.Create(ctx, s.db, u)
}

func (s *DBStore) SaveItems(ctx context.Context, items []domain.ToDoItem) (int, error) {
	saved := 0
	err := s.tx.RunInTx(ctx, func(q postgres.Querier) error {
		for _, item := range items {
			if _, err := s.items.CreateOrUpdate(ctx, q, item); err != nil {
				return fmt.Errorf("save item %d of batch: %w", saved+1, err)
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saved, nil
}
