// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: accepts or generates X-Request-ID and seeds the logging context
  - RequestLogger: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight gauges labelled by
    chi route pattern

All three are plain func(http.Handler) http.Handler values and can be passed to
chi's Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
