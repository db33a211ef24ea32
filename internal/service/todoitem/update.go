package todoitem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Update replaces the writable fields of the item at id.
func (s *Service) Update(ctx context.Context, id int64, input SaveInput) (*domain.ToDoItem, error) {
	if err := checkPathID(id, input.ID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Status == "" {
		return nil, domain.NewValidationError("status", "required")
	}

	var updated *domain.ToDoItem
	err := s.inSession(ctx, func(q postgres.Querier) error {
		if err := s.requireExisting(ctx, q, id); err != nil {
			return err
		}
		if err := s.checkOwner(ctx, q, input.UserID); err != nil {
			return err
		}

		var updateErr error
		updated, updateErr = s.items.CreateOrUpdate(ctx, q, domain.ToDoItem{
			ID:          id,
			Description: input.Description,
			Status:      input.Status,
			UserID:      input.UserID,
		})
		if updateErr != nil {
			return fmt.Errorf("update to-do item: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "to-do item updated",
		slog.Int64("item_id", id),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// PartialUpdate merges the non-nil fields of input into the item at id.
func (s *Service) PartialUpdate(ctx context.Context, id int64, input PatchInput) (*domain.ToDoItem, error) {
	if err := checkPathID(id, input.ID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.ToDoItem
	err := s.inSession(ctx, func(q postgres.Querier) error {
		current, getErr := s.items.GetByID(ctx, q, id)
		if errors.Is(getErr, domain.ErrNotFound) {
			return domain.NewAlertError(domain.EntityToDoItem, domain.KeyIDNotFound, "Entity not found")
		}
		if getErr != nil {
			return fmt.Errorf("get to-do item: %w", getErr)
		}

		merged := *current
		if input.Description != nil {
			merged.Description = input.Description
		}
		if input.Status != nil {
			merged.Status = *input.Status
		}
		if input.UserID != nil {
			if err := s.checkOwner(ctx, q, input.UserID); err != nil {
				return err
			}
			merged.UserID = input.UserID
		}

		var updateErr error
		updated, updateErr = s.items.CreateOrUpdate(ctx, q, merged)
		if updateErr != nil {
			return fmt.Errorf("patch to-do item: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "to-do item patched",
		slog.Int64("item_id", id),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// requireExisting maps a missing row to the idnotfound alert.
func (s *Service) requireExisting(ctx context.Context, q postgres.Querier, id int64) error {
	ok, err := s.items.ExistsByID(ctx, q, id)
	if err != nil {
		return fmt.Errorf("check to-do item: %w", err)
	}
	if !ok {
		return domain.NewAlertError(domain.EntityToDoItem, domain.KeyIDNotFound, "Entity not found")
	}
	return nil
}
