// Package dataloader provides per-request DataLoaders that batch owner
// lookups for to-do item responses into a single SQL call.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userSource interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.User, error)
}

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	UserByID *dataloader.Loader[uuid.UUID, *domain.User]
}

// NewLoaders creates a new set of DataLoaders backed by users.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(users userSource) *Loaders {
	return &Loaders{
		UserByID: dataloader.NewBatchedLoader(
			newUserBatchFn(users),
			dataloader.WithWait[uuid.UUID, *domain.User](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.User](maxBatch),
		),
	}
}

// newUserBatchFn resolves a batch of user ids. Unknown ids resolve to nil.
func newUserBatchFn(users userSource) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		found, err := users.GetByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.User], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.User]{Error: err}
			}
			return results
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			var u *domain.User
			if v, ok := found[key]; ok {
				u = &v
			}
			results[i] = &dataloader.Result[*domain.User]{Data: u}
		}
		return results
	}
}

// ResolveOwners fills User on every item that references an owner, issuing
// at most one batched lookup for the distinct owner ids.
func (l *Loaders) ResolveOwners(ctx context.Context, items []domain.ToDoItem) error {
	keys := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		if it.UserID == nil {
			continue
		}
		if _, ok := seen[*it.UserID]; ok {
			continue
		}
		seen[*it.UserID] = struct{}{}
		keys = append(keys, *it.UserID)
	}
	if len(keys) == 0 {
		return nil
	}

	users, errs := l.UserByID.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	byID := make(map[uuid.UUID]*domain.User, len(keys))
	for i, k := range keys {
		byID[k] = users[i]
	}
	for i := range items {
		if items[i].UserID != nil {
			items[i].User = byID[*items[i].UserID]
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}

// Middleware creates an HTTP middleware that instantiates per-request
// DataLoaders and stores them in the request context.
func Middleware(users userSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(users))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
