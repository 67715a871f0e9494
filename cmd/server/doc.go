// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

/*
Package main is the entry point for the Chartkitchen server.

Chartkitchen classifies the columns of a tabular dataset and recommends chart
types for it. Columns arrive either in a JSON request body or, when dataset
loading is enabled, from CSV, TSV, Parquet or NDJSON files sampled through an
in-memory DuckDB.

# Application Architecture

	RootSupervisor ("chartkitchen")
	├── DataSupervisor ("data-layer")
	│   └── dataset cache pruner (when datasets are enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Recipe engine and label generator
 4. Dataset source: DuckDB, circuit breaker and TTL cache (optional)
 5. HTTP router and server
 6. Supervisor tree

# Configuration

Highest priority wins:
  - Environment variables (HTTP_PORT, LOG_LEVEL, DATASET_ENABLED, ...)
  - Config file (config.yaml, or the path in CONFIG_PATH)
  - Built-in defaults

# Example Usage

	export DATASET_ENABLED=true
	export DATASET_ROOT_DIR=/srv/data
	./chartkitchen

	curl -s localhost:8080/api/v1/datasets/recommend -d '{"path": "sales.csv"}'

# API Documentation

Swagger documentation is served at /swagger/index.html. The spec itself is
at /swagger/doc.json.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests within HTTP_SHUTDOWN_TIMEOUT before the process exits.
*/
package main
