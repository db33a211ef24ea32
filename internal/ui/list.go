package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/heartmarshall/todo-backend/internal/client"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// ListSnapshot is an immutable view of a ListView.
type ListSnapshot struct {
	Items     []domain.ToDoItem
	Total     int64
	Page      int
	Size      int
	Sort      domain.Order
	IsLoading bool
	Err       error
}

// TotalPages returns the number of pages for Total items.
func (s ListSnapshot) TotalPages() int {
	return domain.Page[domain.ToDoItem]{Total: s.Total, Size: s.Size}.TotalPages()
}

// ListView is the paged to-do item list.
type ListView struct {
	emitter

	svc ItemService
	log *slog.Logger

	mu      sync.Mutex
	items   []domain.ToDoItem
	total   int64
	page    int
	size    int
	sort    domain.Order
	loading bool
	err     error
}

// NewListView creates a list showing size items per page, sorted by id.
func NewListView(svc ItemService, logger *slog.Logger, size int) *ListView {
	log := logger.With("ui", "list")
	return &ListView{
		emitter: newEmitter(log),
		svc:     svc,
		log:     log,
		size:    size,
		sort:    domain.Order{Field: "id"},
	}
}

// Load fetches the current page. IsLoading is cleared when the request
// completes, whatever its outcome; the previous items stay visible on error.
func (l *ListView) Load(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	opts := client.QueryOptions{Page: l.page, Size: l.size, Sort: []domain.Order{l.sort}}
	l.mu.Unlock()

	page, err := l.svc.Query(ctx, opts)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		l.err = err
		l.log.Warn("load items failed", slog.String("error", err.Error()))
		return err
	}
	l.err = nil
	l.items = page.Content
	l.total = page.Total
	return nil
}

// SetPage moves to page n (zero-based) and reloads.
func (l *ListView) SetPage(ctx context.Context, n int) error {
	if n < 0 {
		return domain.NewValidationError("page", "must be >= 0")
	}
	l.mu.Lock()
	l.page = n
	l.mu.Unlock()
	return l.Load(ctx)
}

// SortBy orders the list by field. Choosing the current field again flips
// the direction. The list goes back to the first page and reloads.
func (l *ListView) SortBy(ctx context.Context, field string) error {
	l.mu.Lock()
	if l.sort.Field == field {
		l.sort.Desc = !l.sort.Desc
	} else {
		l.sort = domain.Order{Field: field}
	}
	l.page = 0
	l.mu.Unlock()
	return l.Load(ctx)
}

// OpenDelete starts the confirmation for removing item.
func (l *ListView) OpenDelete(item domain.ToDoItem) *DeleteDialog {
	return &DeleteDialog{list: l, item: item}
}

// Snapshot returns the current list state.
func (l *ListView) Snapshot() ListSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ListSnapshot{
		Items:     slices.Clone(l.items),
		Total:     l.total,
		Page:      l.page,
		Size:      l.size,
		Sort:      l.sort,
		IsLoading: l.loading,
		Err:       l.err,
	}
}

// ErrDialogClosed is returned when a dialog is used after it was closed.
var ErrDialogClosed = errors.New("ui: dialog closed")

// DeleteDialog confirms the removal of one item from a ListView.
type DeleteDialog struct {
	list *ListView

	mu     sync.Mutex
	item   domain.ToDoItem
	closed bool
}

// Item returns the item awaiting confirmation.
func (d *DeleteDialog) Item() domain.ToDoItem {
	return d.item
}

// Confirm deletes the item, emits Deleted on the list and reloads it.
// On failure the dialog stays open so the user can retry or cancel.
func (d *DeleteDialog) Confirm(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDialogClosed
	}

	if err := d.list.svc.Delete(ctx, d.item.ID); err != nil {
		return fmt.Errorf("delete to-do item %d: %w", d.item.ID, err)
	}
	d.closed = true

	item := d.item
	d.list.emit(Event{Kind: Deleted, Item: &item})
	return d.list.Load(ctx)
}

// Cancel closes the dialog without deleting.
func (d *DeleteDialog) Cancel() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
}
