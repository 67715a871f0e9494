// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/chartkitchen/internal/middleware"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	Middleware   *ChiMiddlewareConfig
	MaxBodyBytes int64
}

// NewRouter wires the middleware chain and every route onto a chi router.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRouter(h *Handler, cfg RouterConfig, logger zerolog.Logger) http.Handler {
	chiMw := NewChiMiddleware(cfg.Middleware)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chiMw.CORS())
	r.Use(middleware.PrometheusMetrics)
	r.Use(chiMw.RateLimit())
	if cfg.MaxBodyBytes > 0 {
		r.Use(chimiddleware.RequestSize(cfg.MaxBodyBytes))
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, req, http.StatusNotFound, ErrCodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, req, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", h.Recipes)
			r.Post("/classify", h.Classify)
			r.Post("/recommend", h.Recommend)
			r.Post("/score", h.Score)
			r.Post("/validate", h.Validate)
		})

		r.Post("/datasets/recommend", h.DatasetRecommend)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
