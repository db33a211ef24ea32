package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// List returns one page of users. The page feeds the owner options of the item form.
func (s *Service) List(ctx context.Context, p domain.Pageable) (domain.Page[domain.User], error) {
	p, err := p.Normalize(s.paging.DefaultSize, s.paging.MaxSize)
	if err != nil {
		return domain.Page[domain.User]{}, err
	}

	page, err := s.users.GetPage(ctx, s.db, p)
	if err != nil {
		return domain.Page[domain.User]{}, fmt.Errorf("user.List: %w", err)
	}
	return page, nil
}

// GetByIDs returns the users with the given ids keyed by id. Unknown ids are absent from the map.
func (s *Service) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.User, error) {
	out := make(map[uuid.UUID]domain.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	users, err := s.users.GetByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, fmt.Errorf("user.GetByIDs: %w", err)
	}
	for _, u := range users {
		out[u.ID] = u
	}

	if missing := len(ids) - len(out); missing > 0 {
		s.log.DebugContext(ctx, "owners not found", slog.Int("missing", missing))
	}
	return out, nil
}

// Current returns the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Current(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Current: %w", err)
	}
	return user, nil
}
