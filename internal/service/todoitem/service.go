// Package todoitem implements the to-do item use cases.
package todoitem

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

type itemRepo interface {
	CreateOrUpdate(ctx context.Context, q postgres.Querier, item domain.ToDoItem) (*domain.ToDoItem, error)
	GetByID(ctx context.Context, q postgres.Querier, id int64) (*domain.ToDoItem, error)
	GetPage(ctx context.Context, q postgres.Querier, f domain.ToDoItemFilter, p domain.Pageable) (domain.Page[domain.ToDoItem], error)
	ExistsByID(ctx context.Context, q postgres.Querier, id int64) (bool, error)
	DeleteByID(ctx context.Context, q postgres.Querier, id int64) error
}

type userRepo interface {
	ExistsByID(ctx context.Context, q postgres.Querier, id uuid.UUID) (bool, error)
}

type sessionFactory interface {
	Begin(ctx context.Context) (postgres.Session, error)
}

// Service provides to-do item operations. Reads go through db; every write
// runs in its own session and is saved before the call returns.
type Service struct {
	db       postgres.Querier
	sessions sessionFactory
	items    itemRepo
	users    userRepo
	paging   config.PaginationConfig
	log      *slog.Logger
}

// NewService creates a new to-do item service.
func NewService(
	log *slog.Logger,
	db postgres.Querier,
	sessions sessionFactory,
	items itemRepo,
	users userRepo,
	paging config.PaginationConfig,
) *Service {
	return &Service{
		db:       db,
		sessions: sessions,
		items:    items,
		users:    users,
		paging:   paging,
		log:      log.With("service", "todoitem"),
	}
}

// inSession runs fn on a fresh session and saves it when fn succeeds.
func (s *Service) inSession(ctx context.Context, fn func(q postgres.Querier) error) error {
	sess, err := s.sessions.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Rollback(ctx) }()

	if err := fn(sess); err != nil {
		return err
	}
	if err := sess.SaveChanges(ctx); err != nil {
		return fmt.Errorf("save changes: %w", err)
	}
	return nil
}

// checkOwner fails with a validation error when id references no user.
func (s *Service) checkOwner(ctx context.Context, q postgres.Querier, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	ok, err := s.users.ExistsByID(ctx, q, *id)
	if err != nil {
		return fmt.Errorf("check owner: %w", err)
	}
	if !ok {
		return domain.NewValidationError("user", "not found")
	}
	return nil
}
