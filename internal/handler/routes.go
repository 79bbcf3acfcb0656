package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Options configures the router.
type Options struct {
	// Logger receives the access log. Defaults to slog.Default.
	Logger *slog.Logger
	// StaticDir is served under /static/. Empty disables static serving;
	// the root redirect stays in place either way.
	StaticDir string
}

// Routes builds the service's chi router: global middleware, the activities
// API, the root redirect, and optional static file serving.
func Routes(h *ActivityHandler, opts Options) chi.Router {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(RequestLogger(logger))   // structured access log

	r.Get("/", RootRedirect)
	r.Get("/health", HealthCheck)

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{activity_name}/signup", h.Signup)
		r.Post("/{activity_name}/unregister", h.Unregister)
	})

	if opts.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(opts.StaticDir)))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
