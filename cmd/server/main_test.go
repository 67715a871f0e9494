// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/chartkitchen/internal/config"
	"github.com/tomtom215/chartkitchen/internal/dataset"
)

func TestRouterConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Security: config.SecurityConfig{
		CORSOrigins:       []string{"https://charts.example.com"},
		RateLimitReqs:     42,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
		MaxBodyBytes:      1 << 20,
	}}

	rc := routerConfig(cfg)
	if rc.MaxBodyBytes != 1<<20 {
		t.Errorf("MaxBodyBytes = %d, want %d", rc.MaxBodyBytes, 1<<20)
	}
	mw := rc.Middleware
	if len(mw.CORSAllowedOrigins) != 1 || mw.CORSAllowedOrigins[0] != "https://charts.example.com" {
		t.Errorf("CORSAllowedOrigins = %v", mw.CORSAllowedOrigins)
	}
	if mw.RateLimitRequests != 42 || mw.RateLimitWindow != 30*time.Second || !mw.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", mw.RateLimitRequests, mw.RateLimitWindow, mw.RateLimitDisabled)
	}
}

func TestBuildDatasetSource(t *testing.T) {
	t.Parallel()

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Dataset: config.DatasetConfig{
			Enabled:    true,
			RootDir:    filepath.Join(t.TempDir(), "nope"),
			SampleRows: 10,
		}}
		if _, _, err := buildDatasetSource(cfg); err == nil {
			t.Fatal("expected error for missing root")
		}
	})

	t.Run("loads through the stack", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		csv := "day,visits\n2024-01-01,10\n2024-01-02,12\n2024-01-03,9\n"
		if err := os.WriteFile(filepath.Join(root, "visits.csv"), []byte(csv), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg := &config.Config{Dataset: config.DatasetConfig{
			Enabled:            true,
			RootDir:            root,
			SampleRows:         10,
			MaxMemory:          "128MB",
			Threads:            1,
			QueryTimeout:       10 * time.Second,
			CacheTTL:           time.Minute,
			BreakerMaxFailures: 3,
			BreakerTimeout:     time.Minute,
		}}

		src, closeFn, err := buildDatasetSource(cfg)
		if err != nil {
			t.Fatalf("buildDatasetSource() error = %v", err)
		}
		defer closeFn()

		ds, err := src.Load(context.Background(), "visits.csv")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if ds.RowCount != 3 || len(ds.Columns) != 2 {
			t.Errorf("dataset = %d rows, %d columns; want 3, 2", ds.RowCount, len(ds.Columns))
		}

		if _, err := src.Load(context.Background(), "../escape.csv"); !errors.Is(err, dataset.ErrPathOutsideRoot) {
			t.Errorf("Load(../escape.csv) error = %v, want ErrPathOutsideRoot", err)
		}
	})
}
