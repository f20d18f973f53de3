// Package router sets up the HTTP routes and middleware chain of the
// public news site.
package router

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"newsroom/internal/handlers"
	"newsroom/internal/logger"
	"newsroom/internal/middleware"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options carries the collaborators of the router. Limiter and DB may be
// nil, which disables rate limiting and the readiness probe's database check.
type Options struct {
	Public  *handlers.Public
	Static  fs.FS
	Limiter middleware.Allower
	DB      Pinger
}

// New creates and returns the configured Chi router. Every route matches
// with or without a trailing slash.
func New(opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(chimw.StripSlashes)

	// Probes are never rate limited.
	r.Get("/health", healthHandler)
	r.Get("/ready", readyHandler(opts.DB))

	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(opts.Static))))
	}

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(middleware.RateLimit(opts.Limiter))
		}
		r.Get("/", opts.Public.Index)
		r.Get("/categories/{slug}", opts.Public.Category)
		r.Get("/news/{slug}", opts.Public.Detail)
	})

	return r
}

// healthHandler returns a simple JSON liveness response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// readyHandler answers 200 when the database responds to a ping within two
// seconds, 503 otherwise.
func readyHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.FromContext(r.Context()).Warn("readiness check failed", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"unavailable"}`))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ready"}`))
	}
}
