package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/i4ali/flygen/internal/http/handlers"
	"github.com/i4ali/flygen/internal/middleware"
)

// Options carries the router's cross-cutting settings.
type Options struct {
	Logger          zerolog.Logger
	AllowedOrigins  []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/flyers", func(r chi.Router) {
		if opts.RateLimitPerMin > 0 {
			r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
		}
		r.Get("/categories", app.Categories)
		r.Post("/generate", app.GenerateFlyer)
		r.Post("/refine", app.RefineFlyer)
	})

	return r
}
