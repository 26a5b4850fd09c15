package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"ministudio/internal/http/handlers"
	"ministudio/internal/middleware"
)

// Options tunes the router's middleware stack.
type Options struct {
	RateLimitPerMin int
	AllowedOrigins  []string
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
}

// NewRouter wires the API surface with the shared middleware stack.
func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Log),
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
		middleware.Profile,
	)

	r.Get("/v1/healthz", app.Health)

	r.Group(func(r chi.Router) {
		if opts.RateLimitPerMin > 0 {
			r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
		}
		r.Post("/v1/generate", app.Generate)
		r.Post("/v1/designs", app.DesignsCreate)
	})

	r.Get("/v1/designs", app.DesignsList)
	r.Get("/v1/designs/{id}", app.DesignsGet)
	r.Get("/v1/designs/{id}/export", app.DesignsExport)
	r.Delete("/v1/designs/{id}", app.DesignsDelete)

	return r
}
