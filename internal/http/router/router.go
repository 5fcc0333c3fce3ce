// Package router assembles the chi router: middleware chain, the name
// resource routes, the health probe and the metrics endpoint.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/names-api/internal/http/handlers/health"
	"github.com/aanand-mishra/names-api/internal/http/handlers/name"
	"github.com/aanand-mishra/names-api/internal/http/middleware"
	"github.com/aanand-mishra/names-api/internal/metrics"
	"github.com/aanand-mishra/names-api/internal/storage"
)

// Deps are the collaborators the routes need. Metrics may be nil, in which
// case instrumentation and the metrics endpoint are disabled.
type Deps struct {
	Storage     storage.Storage
	Validator   *validator.Validate
	Metrics     *metrics.Metrics
	MetricsPath string
	Logger      *slog.Logger
}

// New returns the application's HTTP handler.
//
// Route table:
//
//	GET    /api/name        list records
//	POST   /api/name        create a record
//	GET    /api/name/{id}   get one record
//	PUT    /api/name/{id}   merge fields into a record
//	DELETE /api/name/{id}   delete a record
//	GET    /healthz         storage probe
//	GET    <MetricsPath>    Prometheus scrape
func New(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	if d.Metrics != nil {
		r.Use(middleware.Instrument(d.Metrics))
	}
	r.Use(chimw.Recoverer)

	r.Route(name.BasePath, func(r chi.Router) {
		r.Get("/", name.GetList(d.Storage))
		r.Post("/", name.New(d.Storage, d.Validator, d.Metrics))
		r.Get("/{id}", name.GetByID(d.Storage))
		r.Put("/{id}", name.Update(d.Storage))
		r.Delete("/{id}", name.Delete(d.Storage, d.Metrics))
	})

	r.Get("/healthz", health.Check(d.Storage))

	if d.Metrics != nil && d.MetricsPath != "" {
		r.Method(http.MethodGet, d.MetricsPath, d.Metrics.Handler())
	}

	return r
}
