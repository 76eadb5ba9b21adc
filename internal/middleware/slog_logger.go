// Package middleware provides HTTP middleware for the GlobeTrekker API server.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewSlogLogger returns a middleware that emits one structured JSON log line
// per completed request: route, verb, outcome, and how long the planner call
// took. The request ID comes from chi's RequestID middleware, so mount this
// after it or the field logs empty.
func NewSlogLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()

			// The plain ResponseWriter never exposes the status code;
			// chi's wrapper records it as the handler writes.
			rec := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(rec, r)

			log.InfoContext(r.Context(), "http request",
				"verb", r.Method,
				"route", r.URL.Path,
				"status", rec.Status(),
				"elapsed_ms", time.Since(started).Milliseconds(),
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		})
	}
}
