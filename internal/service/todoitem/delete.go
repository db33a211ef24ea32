package todoitem

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
)

// Delete removes the item with the given id. A missing id yields domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.inSession(ctx, func(q postgres.Querier) error {
		if err := s.items.DeleteByID(ctx, q, id); err != nil {
			return fmt.Errorf("delete to-do item: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "to-do item deleted", slog.Int64("item_id", id))
	return nil
}
