package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/forecast-dashboard/docs"
	"github.com/rogerio-castellano/forecast-dashboard/internal/http/handlers"
)

// NewRouter wires the dashboard routes. Rate limiting wraps everything except
// the liveness probe and the swagger UI.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Get("/", handlers.GetDimensionsHandler)
		r.Post("/forecast", handlers.GetForecastHandler)
		r.Post("/export", handlers.ExportForecastHandler)
		r.Get("/profile", handlers.GetProfileHandler)
	})

	return r
}
