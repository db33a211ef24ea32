// Package todoitem implements the ToDoItem repository using PostgreSQL.
package todoitem

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// row mirrors the to_do_item table.
type row struct {
	ID          int64      `db:"id"`
	Description *string    `db:"description"`
	Status      string     `db:"status"`
	UserID      *uuid.UUID `db:"user_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

var table = postgres.Table[row, int64]{
	Name:    "to_do_item",
	Key:     "id",
	Columns: []string{"id", "description", "status", "user_id", "created_at", "updated_at"},
	Sortable: map[string]string{
		"id":          "id",
		"description": "description",
		"status":      "status",
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
	},
	DefaultSort: []domain.Order{{Field: "id"}},
	KeyOf:       func(r row) int64 { return r.ID },
	Values: func(r row) map[string]any {
		return map[string]any{
			"description": r.Description,
			"status":      r.Status,
			"user_id":     r.UserID,
		}
	},
	Touch: "updated_at",
}

// Filter narrows GetPage results. Nil fields match everything.
type Filter = domain.ToDoItemFilter

// Repo provides to-do item persistence. Every method runs on the Querier it
// is given: a pool for reads, a postgres.Session for writes.
type Repo struct {
	base *postgres.Repository[row, int64]
}

// New creates a new to-do item repository.
func New() *Repo {
	return &Repo{base: postgres.NewRepository(domain.EntityToDoItem, table)}
}

// CreateOrUpdate inserts a new item (ID 0) or replaces the stored one.
func (r *Repo) CreateOrUpdate(ctx context.Context, q postgres.Querier, item domain.ToDoItem) (*domain.ToDoItem, error) {
	saved, err := r.base.CreateOrUpdate(ctx, q, fromDomain(item))
	if err != nil {
		return nil, err
	}
	out := toDomain(saved)
	return &out, nil
}

// GetByID returns an item by primary key.
func (r *Repo) GetByID(ctx context.Context, q postgres.Querier, id int64) (*domain.ToDoItem, error) {
	found, err := r.base.GetByID(ctx, q, id)
	if err != nil {
		return nil, err
	}
	out := toDomain(found)
	return &out, nil
}

// GetOne returns the single item matching predicate.
func (r *Repo) GetOne(ctx context.Context, q postgres.Querier, predicate sq.Sqlizer) (*domain.ToDoItem, error) {
	found, err := r.base.GetOne(ctx, q, predicate)
	if err != nil {
		return nil, err
	}
	out := toDomain(found)
	return &out, nil
}

// GetAll returns every item in the given order.
func (r *Repo) GetAll(ctx context.Context, q postgres.Querier, sort []domain.Order) ([]domain.ToDoItem, error) {
	rows, err := r.base.GetAll(ctx, q, sort)
	if err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

// GetPage returns one page of items matching f.
func (r *Repo) GetPage(ctx context.Context, q postgres.Querier, f Filter, p domain.Pageable) (domain.Page[domain.ToDoItem], error) {
	page, err := r.base.GetPage(ctx, q, where(f), p)
	if err != nil {
		return domain.Page[domain.ToDoItem]{}, err
	}
	return domain.Page[domain.ToDoItem]{
		Content: toDomainSlice(page.Content),
		Total:   page.Total,
		Page:    page.Page,
		Size:    page.Size,
	}, nil
}

// ExistsByID reports whether an item with the given id is stored.
func (r *Repo) ExistsByID(ctx context.Context, q postgres.Querier, id int64) (bool, error) {
	return r.base.ExistsByID(ctx, q, id)
}

// DeleteByID removes an item. A missing id yields domain.ErrNotFound.
func (r *Repo) DeleteByID(ctx context.Context, q postgres.Querier, id int64) error {
	return r.base.DeleteByID(ctx, q, id)
}

// PurgeDone removes Done items last updated before the given time.
func (r *Repo) PurgeDone(ctx context.Context, q postgres.Querier, before time.Time) (int64, error) {
	return r.base.DeleteWhere(ctx, q, doneBefore(before))
}

// CountDone counts the items PurgeDone would remove.
func (r *Repo) CountDone(ctx context.Context, q postgres.Querier, before time.Time) (int64, error) {
	return r.base.Count(ctx, q, doneBefore(before))
}

func doneBefore(t time.Time) sq.Sqlizer {
	return sq.And{
		sq.Eq{"status": string(domain.ItemStatusDone)},
		sq.Lt{"updated_at": t},
	}
}

// Count returns the number of stored items.
func (r *Repo) Count(ctx context.Context, q postgres.Querier) (int64, error) {
	return r.base.Count(ctx, q, nil)
}

func where(f Filter) sq.Sqlizer {
	conds := sq.And{}
	if f.Status != nil {
		conds = append(conds, sq.Eq{"status": string(*f.Status)})
	}
	if f.UserID != nil {
		conds = append(conds, sq.Eq{"user_id": *f.UserID})
	}
	if len(conds) == 0 {
		return nil
	}
	return conds
}

func fromDomain(t domain.ToDoItem) row {
	return row{
		ID:          t.ID,
		Description: t.Description,
		Status:      string(t.Status),
		UserID:      t.UserID,
	}
}

func toDomain(r row) domain.ToDoItem {
	return domain.ToDoItem{
		ID:          r.ID,
		Description: r.Description,
		Status:      domain.ItemStatus(r.Status),
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toDomainSlice(rows []row) []domain.ToDoItem {
	out := make([]domain.ToDoItem, len(rows))
	for i, r := range rows {
		out[i] = toDomain(r)
	}
	return out
}
