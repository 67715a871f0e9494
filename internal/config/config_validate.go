// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/chartkitchen/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateRecipe(); err != nil {
		return err
	}
	return c.validateDataset()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is invalid (use trace, debug, info, warn or error)", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	}
	return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
}

func (c *Config) validateSecurity() error {
	s := c.Security
	if !s.RateLimitDisabled {
		if s.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", s.RateLimitReqs)
		}
		if s.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", s.RateLimitWindow)
		}
	}
	if s.MaxBodyBytes < 1 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", s.MaxBodyBytes)
	}
	return nil
}

func (c *Config) validateRecipe() error {
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("recipe: %w", err)
	}
	return nil
}

// validateDataset validates dataset settings (only if enabled)
func (c *Config) validateDataset() error {
	d := c.Dataset
	if !d.Enabled {
		return nil
	}
	if strings.TrimSpace(d.RootDir) == "" {
		return fmt.Errorf("DATASET_ROOT_DIR is required when DATASET_ENABLED=true")
	}
	if d.SampleRows < 1 {
		return fmt.Errorf("DATASET_SAMPLE_ROWS must be positive, got %d", d.SampleRows)
	}
	if d.QueryTimeout <= 0 {
		return fmt.Errorf("DATASET_QUERY_TIMEOUT must be positive, got %v", d.QueryTimeout)
	}
	if d.CacheTTL < 0 {
		return fmt.Errorf("DATASET_CACHE_TTL must not be negative, got %v", d.CacheTTL)
	}
	if d.BreakerMaxFailures < 1 {
		return fmt.Errorf("DATASET_BREAKER_MAX_FAILURES must be positive, got %d", d.BreakerMaxFailures)
	}
	return nil
}
