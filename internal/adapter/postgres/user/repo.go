// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

type row struct {
	ID        uuid.UUID `db:"id"`
	Login     string    `db:"login"`
	Email     *string   `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

var columns = []string{"id", "login", "email", "created_at"}

var table = postgres.Table[row, uuid.UUID]{
	Name:        "users",
	Key:         "id",
	Columns:     columns,
	Sortable:    map[string]string{"id": "id", "login": "login"},
	DefaultSort: []domain.Order{{Field: "login"}},
	KeyOf:       func(r row) uuid.UUID { return r.ID },
	Values: func(r row) map[string]any {
		return map[string]any{"login": r.Login, "email": r.Email}
	},
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	base *postgres.Repository[row, uuid.UUID]
}

// New creates a new user repository.
func New() *Repo {
	return &Repo{base: postgres.NewRepository(domain.EntityUser, table)}
}

// Create inserts a user. A zero ID is generated by the database.
func (r *Repo) Create(ctx context.Context, q postgres.Querier, u domain.User) (*domain.User, error) {
	values := map[string]any{"login": u.Login, "email": emailPtr(u.Email)}
	if u.ID != uuid.Nil {
		values["id"] = u.ID
	}

	sql, args, err := postgres.Builder().
		Insert(table.Name).
		SetMap(values).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityUser, u.ID)
	}
	res := toDomain(out)
	return &res, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, q postgres.Querier, id uuid.UUID) (*domain.User, error) {
	found, err := r.base.GetByID(ctx, q, id)
	if err != nil {
		return nil, err
	}
	u := toDomain(found)
	return &u, nil
}

// GetByIDs returns the users with the given ids in unspecified order.
// Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, q postgres.Querier, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	rows, err := r.base.Find(ctx, q, sq.Eq{"id": ids}, nil)
	if err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

// GetByLogin returns a user by login.
func (r *Repo) GetByLogin(ctx context.Context, q postgres.Querier, login string) (*domain.User, error) {
	found, err := r.base.GetOne(ctx, q, sq.Eq{"login": login})
	if err != nil {
		return nil, err
	}
	u := toDomain(found)
	return &u, nil
}

// ExistsByID reports whether a user with the given id exists.
func (r *Repo) ExistsByID(ctx context.Context, q postgres.Querier, id uuid.UUID) (bool, error) {
	return r.base.ExistsByID(ctx, q, id)
}

// GetPage returns one page of users.
func (r *Repo) GetPage(ctx context.Context, q postgres.Querier, p domain.Pageable) (domain.Page[domain.User], error) {
	page, err := r.base.GetPage(ctx, q, nil, p)
	if err != nil {
		return domain.Page[domain.User]{}, err
	}
	return domain.Page[domain.User]{
		Content: toDomainSlice(page.Content),
		Total:   page.Total,
		Page:    page.Page,
		Size:    page.Size,
	}, nil
}

// Count returns the number of users.
func (r *Repo) Count(ctx context.Context, q postgres.Querier) (int64, error) {
	return r.base.Count(ctx, q, nil)
}

func emailPtr(email string) *string {
	if email == "" {
		return nil
	}
	return &email
}

func toDomain(r row) domain.User {
	u := domain.User{ID: r.ID, Login: r.Login, CreatedAt: r.CreatedAt}
	if r.Email != nil {
		u.Email = *r.Email
	}
	return u
}

func toDomainSlice(rows []row) []domain.User {
	out := make([]domain.User, len(rows))
	for i, r := range rows {
		out[i] = toDomain(r)
	}
	return out
}
