package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"cgpa-calculator/internal/config"
	"cgpa-calculator/internal/gpa"
	"cgpa-calculator/internal/handlers"
	"cgpa-calculator/internal/observability"
)

func NewRouter(cfg config.Config) http.Handler {

	r := chi.NewRouter()

	r.Use(cors.Handler(corsOptions(cfg.CORS)))
	r.Use(middleware.RealIP)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(observability.RecoverMiddleware)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	gpa.RegisterRoutes(r)

	return r
}

// corsOptions allows every method and header from the configured origins,
// with credentials.
func corsOptions(c config.CORS) cors.Options {
	return cors.Options{
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           c.MaxAge,
	}
}
