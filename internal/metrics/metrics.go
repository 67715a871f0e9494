// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

// Package metrics holds the Prometheus instrumentation for the recipe engine,
// the dataset loader and the HTTP API. Metrics are registered with the
// default registry at package init via promauto.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recipe Engine Metrics
	RecipeClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_classifications_total",
			Help: "Total number of classified columns by ingredient type and deciding rule",
		},
		[]string{"type", "rule"},
	)

	RecipeRecommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_recommendations_total",
			Help: "Total number of recommendation runs",
		},
		[]string{"outcome"}, // "recommended", "empty"
	)

	RecipeFiltered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_filtered_total",
			Help: "Total number of scored recipes removed by post-filters",
		},
		[]string{"reason"},
	)

	RecipeScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipe_scoring_duration_seconds",
			Help:    "Time spent scoring and ranking the catalog for one ingredient set",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// Dataset Metrics
	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Duration of dataset sampling through DuckDB",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"format"},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_load_errors_total",
			Help: "Total number of failed dataset loads",
		},
		[]string{"reason"},
	)

	DatasetCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_cache_hits_total",
			Help: "Total number of dataset profile cache hits",
		},
	)

	DatasetCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_cache_misses_total",
			Help: "Total number of dataset profile cache misses",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordClassification counts one classified column.
func RecordClassification(ingredientType, rule string) {
	RecipeClassifications.WithLabelValues(ingredientType, rule).Inc()
}

// RecordRecommendation records one aggregator run. results is the number of
// recipes returned.
func RecordRecommendation(results int, duration time.Duration) {
	outcome := "recommended"
	if results == 0 {
		outcome = "empty"
	}
	RecipeRecommendations.WithLabelValues(outcome).Inc()
	RecipeScoringDuration.Observe(duration.Seconds())
}

// RecordRecipeFiltered counts a recipe dropped by a post-filter.
func RecordRecipeFiltered(reason string) {
	RecipeFiltered.WithLabelValues(reason).Inc()
}

// RecordDatasetLoad records a dataset load. reason labels the error class
// and is ignored on success.
func RecordDatasetLoad(format string, duration time.Duration, reason string, err error) {
	DatasetLoadDuration.WithLabelValues(format).Observe(duration.Seconds())
	if err != nil {
		if reason == "" {
			reason = "other"
		}
		DatasetLoadErrors.WithLabelValues(reason).Inc()
	}
}

// RecordDatasetCache counts a dataset cache lookup.
func RecordDatasetCache(hit bool) {
	if hit {
		DatasetCacheHits.Inc()
	} else {
		DatasetCacheMisses.Inc()
	}
}
