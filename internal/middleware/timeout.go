package middleware

import (
	"context"
	"net/http"
	"time"
)

// WithTimeout bounds each request's context so a stalled backend call cannot
// hang the handler forever. Not applied to the event stream, which holds its
// connection open for the client's lifetime.
func WithTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
