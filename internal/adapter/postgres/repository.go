package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// ErrMultipleRows is returned by GetOne when the predicate matches more than one row.
var ErrMultipleRows = errors.New("more than one row matched")

// Builder returns a squirrel statement builder using PostgreSQL placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Table describes how a row type T with key type K is stored.
// T is a flat struct whose `db` tags match Columns.
type Table[T any, K comparable] struct {
	// Name is the table name.
	Name string
	// Key is the primary-key column.
	Key string
	// Columns are selected and returned, key included.
	Columns []string
	// Sortable maps API field names to columns. Fields missing here cannot be sorted on.
	Sortable map[string]string
	// DefaultSort applies when a listing asks for no order.
	DefaultSort []domain.Order
	// KeyOf returns the key of a row; the zero K means "not persisted".
	KeyOf func(T) K
	// Values returns the writable columns of a row, key excluded.
	Values func(T) map[string]any
	// Touch, when set, is assigned now() on every update.
	Touch string
}

// Repository is a generic CRUD repository over one table. It never commits:
// writes become durable when the Session they ran on is saved.
type Repository[T any, K comparable] struct {
	entity string
	table  Table[T, K]
}

// NewRepository creates a Repository. entity names the rows in errors.
func NewRepository[T any, K comparable](entity string, table Table[T, K]) *Repository[T, K] {
	return &Repository[T, K]{entity: entity, table: table}
}

// Entity returns the entity name used in errors.
func (r *Repository[T, K]) Entity() string { return r.entity }

// CreateOrUpdate inserts row when its key is zero, otherwise updates the
// existing row. Updating a missing key yields domain.ErrNotFound.
func (r *Repository[T, K]) CreateOrUpdate(ctx context.Context, q Querier, row T) (T, error) {
	var zero K
	key := r.table.KeyOf(row)
	values := r.table.Values(row)

	var (
		sql  string
		args []any
		err  error
	)
	if key == zero {
		sql, args, err = Builder().
			Insert(r.table.Name).
			SetMap(values).
			Suffix("RETURNING " + strings.Join(r.table.Columns, ", ")).
			ToSql()
	} else {
		upd := Builder().
			Update(r.table.Name).
			SetMap(values).
			Where(sq.Eq{r.table.Key: key})
		if r.table.Touch != "" {
			upd = upd.Set(r.table.Touch, sq.Expr("now()"))
		}
		sql, args, err = upd.Suffix("RETURNING " + strings.Join(r.table.Columns, ", ")).ToSql()
	}
	if err != nil {
		var empty T
		return empty, fmt.Errorf("build %s upsert: %w", r.entity, err)
	}

	var out T
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		var empty T
		return empty, mapError(err, r.entity, key)
	}
	return out, nil
}

// GetAll returns every row. Without sort the order is unspecified.
func (r *Repository[T, K]) GetAll(ctx context.Context, q Querier, sort []domain.Order) ([]T, error) {
	return r.Find(ctx, q, nil, sort)
}

// Find returns rows matching where (nil matches all) in the given order.
func (r *Repository[T, K]) Find(ctx context.Context, q Querier, where sq.Sqlizer, sort []domain.Order) ([]T, error) {
	query := r.selectBuilder(where)
	orderBy, err := r.orderBy(sort)
	if err != nil {
		return nil, err
	}
	if len(orderBy) > 0 {
		query = query.OrderBy(orderBy...)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s select: %w", r.entity, err)
	}

	rows := make([]T, 0)
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, mapError(err, r.entity, "list")
	}
	return rows, nil
}

// GetPage returns one bounded slice of rows matching where, plus the total
// count of matching rows. An empty sort falls back to the table's DefaultSort.
func (r *Repository[T, K]) GetPage(ctx context.Context, q Querier, where sq.Sqlizer, p domain.Pageable) (domain.Page[T], error) {
	if p.Size <= 0 || p.Page < 0 {
		return domain.Page[T]{}, domain.NewValidationError("page", "page must be >= 0 and size > 0")
	}

	sort := p.Sort
	if len(sort) == 0 {
		sort = r.table.DefaultSort
	}
	orderBy, err := r.orderBy(sort)
	if err != nil {
		return domain.Page[T]{}, err
	}

	total, err := r.Count(ctx, q, where)
	if err != nil {
		return domain.Page[T]{}, err
	}

	query := r.selectBuilder(where).
		Limit(uint64(p.Size)).
		Offset(uint64(p.Offset()))
	if len(orderBy) > 0 {
		query = query.OrderBy(orderBy...)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("build %s page: %w", r.entity, err)
	}

	rows := make([]T, 0, p.Size)
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return domain.Page[T]{}, mapError(err, r.entity, "page")
	}

	return domain.Page[T]{Content: rows, Total: total, Page: p.Page, Size: p.Size}, nil
}

// GetOne returns the single row matching predicate. No match yields
// domain.ErrNotFound, more than one yields ErrMultipleRows.
func (r *Repository[T, K]) GetOne(ctx context.Context, q Querier, predicate sq.Sqlizer) (T, error) {
	var empty T

	sql, args, err := r.selectBuilder(predicate).Limit(2).ToSql()
	if err != nil {
		return empty, fmt.Errorf("build %s select: %w", r.entity, err)
	}

	var rows []T
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return empty, mapError(err, r.entity, "one")
	}
	switch len(rows) {
	case 0:
		return empty, fmt.Errorf("%s: %w", r.entity, domain.ErrNotFound)
	case 1:
		return rows[0], nil
	default:
		return empty, fmt.Errorf("%s: %w", r.entity, ErrMultipleRows)
	}
}

// GetByID returns the row with the given key.
func (r *Repository[T, K]) GetByID(ctx context.Context, q Querier, id K) (T, error) {
	var out T

	sql, args, err := r.selectBuilder(sq.Eq{r.table.Key: id}).ToSql()
	if err != nil {
		return out, fmt.Errorf("build %s select: %w", r.entity, err)
	}

	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		var empty T
		return empty, mapError(err, r.entity, id)
	}
	return out, nil
}

// DeleteByID removes the row with the given key. No affected row yields domain.ErrNotFound.
func (r *Repository[T, K]) DeleteByID(ctx context.Context, q Querier, id K) error {
	sql, args, err := Builder().
		Delete(r.table.Name).
		Where(sq.Eq{r.table.Key: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", r.entity, err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, r.entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %v: %w", r.entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteWhere removes every row matching where and returns how many went.
// A nil where is rejected rather than truncating the table.
func (r *Repository[T, K]) DeleteWhere(ctx context.Context, q Querier, where sq.Sqlizer) (int64, error) {
	if where == nil {
		return 0, fmt.Errorf("%s delete: predicate is required", r.entity)
	}

	sql, args, err := Builder().
		Delete(r.table.Name).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s delete: %w", r.entity, err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, mapError(err, r.entity, "delete")
	}
	return tag.RowsAffected(), nil
}

// Count returns the number of rows matching where (nil matches all).
func (r *Repository[T, K]) Count(ctx context.Context, q Querier, where sq.Sqlizer) (int64, error) {
	query := Builder().Select("count(*)").From(r.table.Name)
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count: %w", r.entity, err)
	}

	var n int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, mapError(err, r.entity, "count")
	}
	return n, nil
}

// ExistsByID reports whether a row with the given key exists.
func (r *Repository[T, K]) ExistsByID(ctx context.Context, q Querier, id K) (bool, error) {
	sql := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", r.table.Name, r.table.Key)

	var exists bool
	if err := q.QueryRow(ctx, sql, id).Scan(&exists); err != nil {
		return false, mapError(err, r.entity, id)
	}
	return exists, nil
}

func (r *Repository[T, K]) selectBuilder(where sq.Sqlizer) sq.SelectBuilder {
	query := Builder().Select(r.table.Columns...).From(r.table.Name)
	if where != nil {
		query = query.Where(where)
	}
	return query
}

func (r *Repository[T, K]) orderBy(sort []domain.Order) ([]string, error) {
	out := make([]string, 0, len(sort))
	for _, o := range sort {
		col, ok := r.table.Sortable[o.Field]
		if !ok {
			return nil, domain.NewValidationError("sort", fmt.Sprintf("cannot sort by %q", o.Field))
		}
		dir := " ASC"
		if o.Desc {
			dir = " DESC"
		}
		out = append(out, col+dir)
	}
	return out, nil
}
