// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package config

import (
	"os"
	"time"

	"github.com/tomtom215/chartkitchen/internal/dataset"
	"github.com/tomtom215/chartkitchen/internal/logging"
	"github.com/tomtom215/chartkitchen/internal/recipe"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Security SecurityConfig `koanf:"security"`
	Recipe   RecipeConfig   `koanf:"recipe"`
	Dataset  DatasetConfig  `koanf:"dataset"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"` // Per-request handler timeout
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds CORS, rate limiting and request size limits
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	MaxBodyBytes      int64         `koanf:"max_body_bytes"`
}

// RecipeConfig exposes the engine settings operators usually tune.
// Everything else keeps recipe.DefaultConfig values.
type RecipeConfig struct {
	MinConfidence float64 `koanf:"min_confidence"`
	TopN          int     `koanf:"top_n"`
	SampleSize    int     `koanf:"sample_size"` // Values inspected by value-sampling classifier rules
	LabelSeed     int64   `koanf:"label_seed"`  // 0 seeds display labels from the clock
}

// DatasetConfig holds file-backed dataset settings
type DatasetConfig struct {
	Enabled            bool          `koanf:"enabled"`
	RootDir            string        `koanf:"root_dir"`
	SampleRows         int           `koanf:"sample_rows"`
	MaxMemory          string        `koanf:"max_memory"`
	Threads            int           `koanf:"threads"` // 0 = runtime.NumCPU()
	QueryTimeout       time.Duration `koanf:"query_timeout"`
	CacheTTL           time.Duration `koanf:"cache_ttl"`
	CachePruneInterval time.Duration `koanf:"cache_prune_interval"`
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// EngineConfig returns recipe.DefaultConfig with the recipe section applied.
func (c *Config) EngineConfig() *recipe.Config {
	cfg := recipe.DefaultConfig()
	cfg.Aggregator.MinConfidence = c.Recipe.MinConfidence
	cfg.Aggregator.TopN = c.Recipe.TopN
	cfg.Classifier.SampleSize = c.Recipe.SampleSize
	return cfg
}

// DatasetSourceConfig maps the dataset section onto dataset.Config.
func (c *Config) DatasetSourceConfig() dataset.Config {
	d := c.Dataset
	return dataset.Config{
		RootDir:            d.RootDir,
		SampleRows:         d.SampleRows,
		MaxMemory:          d.MaxMemory,
		Threads:            d.Threads,
		QueryTimeout:       d.QueryTimeout,
		CacheTTL:           d.CacheTTL,
		BreakerMaxFailures: d.BreakerMaxFailures,
		BreakerTimeout:     d.BreakerTimeout,
	}
}

// LogConfig maps the logging section onto logging.Config.
func (c *Config) LogConfig() logging.Config {
	return logging.Config{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		Caller:    c.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	}
}
