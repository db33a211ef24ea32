package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// ErrRouteNotFound means the requested item does not exist.
var ErrRouteNotFound = errors.New("ui: route not found")

// ItemFinder loads a single item by id.
type ItemFinder interface {
	Find(ctx context.Context, id int64) (*domain.ToDoItem, error)
}

// ResolveRoute returns the item an edit or detail screen should open with.
// A nil id opens a new, empty item. A missing item yields ErrRouteNotFound;
// other failures are returned wrapped.
func ResolveRoute(ctx context.Context, finder ItemFinder, id *int64) (domain.ToDoItem, error) {
	if id == nil {
		return domain.ToDoItem{}, nil
	}

	item, err := finder.Find(ctx, *id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.ToDoItem{}, fmt.Errorf("%w: to-do item %d", ErrRouteNotFound, *id)
	case err != nil:
		return domain.ToDoItem{}, fmt.Errorf("resolve to-do item %d: %w", *id, err)
	case item == nil:
		return domain.ToDoItem{}, fmt.Errorf("%w: to-do item %d", ErrRouteNotFound, *id)
	}
	return *item, nil
}
