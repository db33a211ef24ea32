package todoitem

import (
	"context"
	"fmt"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Get returns the item with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.ToDoItem, error) {
	item, err := s.items.GetByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("get to-do item: %w", err)
	}
	return item, nil
}

// List returns one page of items matching filter.
func (s *Service) List(ctx context.Context, filter domain.ToDoItemFilter, p domain.Pageable) (domain.Page[domain.ToDoItem], error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return domain.Page[domain.ToDoItem]{}, domain.NewValidationError("status", "unknown status")
	}

	p, err := p.Normalize(s.paging.DefaultSize, s.paging.MaxSize)
	if err != nil {
		return domain.Page[domain.ToDoItem]{}, err
	}

	page, err := s.items.GetPage(ctx, s.db, filter, p)
	if err != nil {
		return domain.Page[domain.ToDoItem]{}, fmt.Errorf("list to-do items: %w", err)
	}
	return page, nil
}
