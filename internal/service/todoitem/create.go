package todoitem

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Create persists a new to-do item. The request must not carry an id.
func (s *Service) Create(ctx context.Context, input SaveInput) (*domain.ToDoItem, error) {
	if bodyID(input.ID) != 0 {
		return nil, domain.NewAlertError(domain.EntityToDoItem, domain.KeyIDExists, "A new toDoItem cannot already have an ID")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ItemStatusToDo
	}

	var created *domain.ToDoItem
	err := s.inSession(ctx, func(q postgres.Querier) error {
		if err := s.checkOwner(ctx, q, input.UserID); err != nil {
			return err
		}

		var createErr error
		created, createErr = s.items.CreateOrUpdate(ctx, q, domain.ToDoItem{
			Description: input.Description,
			Status:      status,
			UserID:      input.UserID,
		})
		if createErr != nil {
			return fmt.Errorf("create to-do item: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "to-do item created",
		slog.Int64("item_id", created.ID),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}
