package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// SQLSTATE codes mapError understands.
const (
	codeNotNullViolation     = "23502"
	codeForeignKeyViolation  = "23503"
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// constraintFields names the API field behind a constraint, so violations
// come back as field errors.
var constraintFields = map[string]string{
	"to_do_item_user_id_fkey": "user",
	"to_do_item_status_check": "status",
	"users_login_key":         "login",
}

// mapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and id. Context errors pass through unmapped.
func mapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}
	wrap := func(target error) error {
		return fmt.Errorf("%s %v: %w", entity, id, target)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return wrap(err)
	}
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return wrap(err)
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return wrap(domain.ErrAlreadyExists)
	case codeForeignKeyViolation:
		return wrap(domain.NewValidationError(field(pgErr), "referenced record does not exist"))
	case codeCheckViolation:
		return wrap(domain.NewValidationError(field(pgErr), "invalid value"))
	case codeNotNullViolation:
		return wrap(domain.NewValidationError(field(pgErr), "required"))
	case codeSerializationFailure, codeDeadlockDetected:
		return wrap(fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.Message))
	}
	return wrap(err)
}

func field(pgErr *pgconn.PgError) string {
	if f, ok := constraintFields[pgErr.ConstraintName]; ok {
		return f
	}
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	return pgErr.ConstraintName
}

// MapError is mapError for entity repositories that run hand-written queries
// next to the generic Repository.
func MapError(err error, entity string, id any) error {
	return mapError(err, entity, id)
}
