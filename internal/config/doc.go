// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

/*
Package config loads Chartkitchen configuration with koanf.

# Configuration Sources

Sources are layered, later ones overriding earlier ones:

  - built-in defaults (see defaultConfig)
  - a YAML file: CONFIG_PATH, ./config.yaml, ./config.yml or /etc/chartkitchen/config.yaml
  - environment variables

Only the environment variables listed in envMappings are read, so unrelated
variables never leak into the configuration.

# Sections

  - server: listen address and HTTP timeouts (HTTP_PORT, HTTP_TIMEOUT, ...)
  - logging: LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - security: CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
    DISABLE_RATE_LIMIT, MAX_BODY_BYTES
  - recipe: RECIPE_MIN_CONFIDENCE, RECIPE_TOP_N, RECIPE_SAMPLE_SIZE, RECIPE_LABEL_SEED
  - dataset: DATASET_ENABLED, DATASET_ROOT_DIR, DATASET_SAMPLE_ROWS, ...

# Example

	server:
	  port: 8080
	recipe:
	  top_n: 8
	dataset:
	  enabled: true
	  root_dir: /srv/datasets

Durations accept Go syntax ("30s", "5m").
*/
package config
