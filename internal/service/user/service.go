// Package user implements read access to the users that own to-do items.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, q postgres.Querier, id uuid.UUID) (*domain.User, error)
	GetByIDs(ctx context.Context, q postgres.Querier, ids []uuid.UUID) ([]domain.User, error)
	GetPage(ctx context.Context, q postgres.Querier, p domain.Pageable) (domain.Page[domain.User], error)
}

// Service implements user lookups.
type Service struct {
	log    *slog.Logger
	db     postgres.Querier
	users  userRepo
	paging config.PaginationConfig
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	db postgres.Querier,
	users userRepo,
	paging config.PaginationConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		db:     db,
		users:  users,
		paging: paging,
	}
}
