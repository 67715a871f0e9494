// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

/*
Package api exposes the recipe engine over HTTP.

Every endpoint answers with the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "error": {"code": "...", "message": "...", "details": {...}},
	  "metadata": {"timestamp": "...", "request_id": "...", "query_time_ms": 3}
	}

# Routes

	GET  /api/v1/health
	GET  /api/v1/recipes
	POST /api/v1/recipes/classify
	POST /api/v1/recipes/recommend
	POST /api/v1/recipes/score
	POST /api/v1/recipes/validate
	POST /api/v1/datasets/recommend
	GET  /metrics
	GET  /swagger/*

Request bodies are decoded with goccy/go-json and checked with the shared
validator before they reach the engine. The dataset route answers 503 when no
dataset source is configured or its circuit breaker is open.
*/
package api
