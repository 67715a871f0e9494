// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package config

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"zero shutdown", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "HTTP_SHUTDOWN_TIMEOUT"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"console format", func(c *Config) { c.Logging.Format = "console" }, ""},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"disabled rate limit ignores reqs", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"zero window", func(c *Config) { c.Security.RateLimitWindow = 0 }, "RATE_LIMIT_WINDOW"},
		{"zero body", func(c *Config) { c.Security.MaxBodyBytes = 0 }, "MAX_BODY_BYTES"},
		{"min confidence one", func(c *Config) { c.Recipe.MinConfidence = 1 }, "min_confidence"},
		{"zero sample size", func(c *Config) { c.Recipe.SampleSize = 0 }, "sample_size"},
		{"disabled dataset skips checks", func(c *Config) { c.Dataset.SampleRows = 0 }, ""},
		{"dataset sample rows", func(c *Config) {
			c.Dataset.Enabled = true
			c.Dataset.SampleRows = 0
		}, "DATASET_SAMPLE_ROWS"},
		{"dataset timeout", func(c *Config) {
			c.Dataset.Enabled = true
			c.Dataset.QueryTimeout = 0
		}, "DATASET_QUERY_TIMEOUT"},
		{"dataset negative ttl", func(c *Config) {
			c.Dataset.Enabled = true
			c.Dataset.CacheTTL = -time.Second
		}, "DATASET_CACHE_TTL"},
		{"dataset breaker", func(c *Config) {
			c.Dataset.Enabled = true
			c.Dataset.BreakerMaxFailures = 0
		}, "DATASET_BREAKER_MAX_FAILURES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestConfig_EngineConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Recipe.MinConfidence = 0.3
	cfg.Recipe.TopN = 4
	cfg.Recipe.SampleSize = 50

	ec := cfg.EngineConfig()
	if ec.Aggregator.MinConfidence != 0.3 || ec.Aggregator.TopN != 4 || ec.Classifier.SampleSize != 50 {
		t.Errorf("EngineConfig() = %+v / %+v", ec.Aggregator, ec.Classifier)
	}
	if err := ec.Validate(); err != nil {
		t.Errorf("EngineConfig().Validate() = %v", err)
	}
}

func TestConfig_DatasetSourceConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Dataset.RootDir = "/srv/data"
	cfg.Dataset.SampleRows = 250
	cfg.Dataset.BreakerMaxFailures = 9

	dc := cfg.DatasetSourceConfig()
	if dc.RootDir != "/srv/data" || dc.SampleRows != 250 || dc.BreakerMaxFailures != 9 {
		t.Errorf("DatasetSourceConfig() = %+v", dc)
	}
	if dc.QueryTimeout != cfg.Dataset.QueryTimeout || dc.CacheTTL != cfg.Dataset.CacheTTL {
		t.Errorf("durations not carried over: %+v", dc)
	}
}

func TestConfig_LogConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Logging = LoggingConfig{Level: "debug", Format: "console", Caller: true}

	lc := cfg.LogConfig()
	if lc.Level != "debug" || lc.Format != "console" || !lc.Caller || !lc.Timestamp || lc.Output == nil {
		t.Errorf("LogConfig() = %+v", lc)
	}
}
