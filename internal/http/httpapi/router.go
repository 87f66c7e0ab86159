// Package httpapi assembles the public route table.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/http/handlers"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/middleware"
)

// Options holds the cross-cutting settings of the router.
type Options struct {
	Verifier        middleware.TokenVerifier
	Logger          zerolog.Logger
	AllowedOrigins  []string
	RateLimitPerMin int
	// StaticDir, when set, is served under /static for the file upload
	// backend.
	StaticDir string
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
		middleware.RateLimit(opts.RateLimitPerMin, time.Minute),
	)

	r.Get("/", app.Root)
	r.Get("/healthz", app.Health)
	r.Get("/openapi.json", app.OpenAPIJSON)
	r.Get("/docs", app.OpenAPIDocs)

	r.Get("/issues", app.IssuesList)
	r.Get("/issues/recent", app.IssuesRecent)
	r.Get("/issues/{id}", app.IssuesGet)
	r.Get("/contributions/{issueId}", app.ContributionsByIssue)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(opts.Verifier))

		r.Post("/issues", app.IssuesCreate)
		r.Put("/issues/{id}", app.IssuesUpdate)
		r.Delete("/issues/{id}", app.IssuesDelete)
		r.Get("/my-issues", app.MyIssues)

		r.Post("/contributions", app.ContributionsCreate)
		r.Get("/my-contributions", app.MyContributions)

		r.Post("/uploads/images", app.UploadImage)
	})

	if opts.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(opts.StaticDir)))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
