// Package middleware holds the HTTP middleware wrapped around the API mux.
// Errors raised here use the same problem body as the REST handlers so the
// client decodes them the same way.
package middleware

import (
	"encoding/json"
	"net/http"
)

type Middleware func(http.Handler) http.Handler

// Chain(a, b)(h) is a(b(h)): a sees the request first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

type problem struct {
	Title    string `json:"title"`
	Status   int    `json:"status"`
	ErrorKey string `json:"errorKey"`
	Message  string `json:"message"`
}

// writeProblem answers with an application/problem+json body whose message
// is the translatable key "error.<key>".
func writeProblem(w http.ResponseWriter, status int, key string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(problem{
		Title:    http.StatusText(status),
		Status:   status,
		ErrorKey: key,
		Message:  "error." + key,
	})
}
