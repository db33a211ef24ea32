package rest

import (
	"net/http"

	"github.com/heartmarshall/todo-backend/internal/transport/middleware"
)

// Routes groups the handlers served by the API.
type Routes struct {
	Items  *ToDoItemHandler
	Users  *UserHandler
	Health *HealthHandler
}

// Register mounts every route on mux. api wraps the /api/** handlers
// (authentication, per-request loaders); probes are left unwrapped.
func (rt Routes) Register(mux *http.ServeMux, api middleware.Middleware) {
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, api(fn))
	}

	handle("POST /api/to-do-items", rt.Items.Create)
	handle("GET /api/to-do-items", rt.Items.List)
	handle("GET /api/to-do-items/{id}", rt.Items.Get)
	handle("PUT /api/to-do-items/{id}", rt.Items.Update)
	handle("PATCH /api/to-do-items/{id}", rt.Items.PartialUpdate)
	handle("DELETE /api/to-do-items/{id}", rt.Items.Delete)

	handle("GET /api/users", rt.Users.List)
	handle("GET /api/account", rt.Users.Account)

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
}
