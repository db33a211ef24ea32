package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/adapter/postgres"
	todoitemrepo "github.com/heartmarshall/todo-backend/internal/adapter/postgres/todoitem"
	userrepo "github.com/heartmarshall/todo-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/service/todoitem"
	"github.com/heartmarshall/todo-backend/internal/service/user"
	"github.com/heartmarshall/todo-backend/internal/transport/dataloader"
	"github.com/heartmarshall/todo-backend/internal/transport/middleware"
	"github.com/heartmarshall/todo-backend/internal/transport/rest"
)

// Database is what the HTTP stack needs from the store: plain queries,
// sessions and a health ping. *pgxpool.Pool satisfies it.
type Database interface {
	postgres.Querier
	postgres.Beginner
	Ping(ctx context.Context) error
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// NewHandler wires repositories, services and handlers into the API handler.
// The returned stop function releases background resources.
func NewHandler(cfg *config.Config, logger *slog.Logger, db Database, tokens tokenValidator) (http.Handler, func()) {
	sessions := postgres.NewTxManager(db)
	items := todoitemrepo.New()
	users := userrepo.New()

	itemSvc := todoitem.NewService(logger, db, sessions, items, users, cfg.Pagination)
	userSvc := user.NewService(logger, db, users, cfg.Pagination)

	mux := http.NewServeMux()
	rest.Routes{
		Items:  rest.NewToDoItemHandler(itemSvc, cfg.App.Name, logger),
		Users:  rest.NewUserHandler(userSvc, cfg.App.Name, logger),
		Health: rest.NewHealthHandler(cfg.App.Name, BuildVersion(),
			rest.PingProbe("database", db),
			itemCountProbe(db, items),
		),
	}.Register(mux, middleware.Chain(
		middleware.RequireAuth(cfg.Auth.AnonymousReads),
		dataloader.Middleware(userSvc),
	))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger, "/live", "/ready"),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)(mux)

	return handler, limiter.Stop
}

// itemCountProbe reports the number of stored items. It is not critical:
// a failing count degrades /health but keeps the service ready.
func itemCountProbe(q postgres.Querier, items *todoitemrepo.Repo) rest.Probe {
	return rest.Probe{
		Name: "to_do_items",
		Check: func(ctx context.Context) (string, error) {
			n, err := items.Count(ctx, q)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d rows", n), nil
		},
	}
}
