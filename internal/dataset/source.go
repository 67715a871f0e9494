// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

// Package dataset loads tabular files into recipe.Dataset samples.
//
// DuckDBSource reads CSV, TSV, Parquet and JSON files below a root
// directory. BreakerSource and CachedSource wrap any Source with a circuit
// breaker and a TTL cache:
//
//	duck, _ := dataset.NewDuckDBSource(cfg, logger)
//	src := dataset.NewCachedSource(dataset.NewBreakerSource(duck, cfg), cfg)
//	ds, err := src.Load(ctx, "sales/2024.csv")
package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/chartkitchen/internal/recipe"
)

// Sentinel errors. Match with errors.Is.
var (
	ErrPathOutsideRoot   = errors.New("dataset path is outside the dataset root")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrSourceUnavailable = errors.New("dataset source unavailable")
	ErrNotFound          = errors.New("dataset not found")
)

// Source loads a dataset sample by path.
type Source interface {
	Load(ctx context.Context, path string) (*recipe.Dataset, error)
}

// Config configures dataset loading.
type Config struct {
	// RootDir bounds every dataset path.
	RootDir string

	// SampleRows is the maximum number of rows sampled per dataset.
	SampleRows int

	// MaxMemory is DuckDB's memory limit, e.g. "512MB".
	MaxMemory string

	// Threads is DuckDB's worker thread count. 0 uses all CPUs.
	Threads int

	// QueryTimeout bounds a single Load.
	QueryTimeout time.Duration

	// CacheTTL is how long loaded samples are reused. 0 disables caching.
	CacheTTL time.Duration

	// BreakerMaxFailures is the consecutive failure count that opens the breaker.
	BreakerMaxFailures uint32

	// BreakerTimeout is how long the breaker stays open before probing.
	BreakerTimeout time.Duration
}

// DefaultConfig returns defaults suitable for a single-node deployment.
func DefaultConfig() Config {
	return Config{
		RootDir:            "./data",
		SampleRows:         1000,
		MaxMemory:          "512MB",
		QueryTimeout:       30 * time.Second,
		CacheTTL:           5 * time.Minute,
		BreakerMaxFailures: 5,
		BreakerTimeout:     time.Minute,
	}
}

// Format is a supported file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatTSV     Format = "tsv"
	FormatParquet Format = "parquet"
	FormatJSON    Format = "json"
	FormatNDJSON  Format = "ndjson"
)

// FormatFor picks the reader for path by extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	case ".parquet":
		return FormatParquet, nil
	case ".json":
		return FormatJSON, nil
	case ".ndjson", ".jsonl":
		return FormatNDJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// ResolvePath joins path onto root and rejects anything that escapes it,
// including through symlinks. The returned path is absolute.
func ResolvePath(root, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotFound)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve dataset root: %w", err)
	}
	if real, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = real
	}

	candidate := path
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(absRoot, candidate)
	}
	candidate = filepath.Clean(candidate)

	real, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if !within(absRoot, candidate) {
				return "", ErrPathOutsideRoot
			}
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("resolve dataset path: %w", err)
	}

	if !within(absRoot, real) {
		return "", ErrPathOutsideRoot
	}
	return real, nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// DeclaredTypeFor maps a DuckDB column type to a declared column type.
func DeclaredTypeFor(duckType string) recipe.DeclaredType {
	t := strings.ToUpper(strings.TrimSpace(duckType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}

	switch t {
	case "TINYINT", "SMALLINT", "INTEGER", "INT", "BIGINT", "HUGEINT",
		"UTINYINT", "USMALLINT", "UINTEGER", "UBIGINT", "UHUGEINT",
		"FLOAT", "REAL", "DOUBLE", "DECIMAL", "NUMERIC":
		return recipe.DeclaredNumeric
	case "DATE", "TIME", "TIMESTAMP", "TIMESTAMP_S", "TIMESTAMP_MS", "TIMESTAMP_NS",
		"TIMESTAMP WITH TIME ZONE", "TIMESTAMPTZ", "TIME WITH TIME ZONE", "TIMETZ":
		return recipe.DeclaredDate
	case "BOOLEAN", "BOOL", "ENUM":
		return recipe.DeclaredCategorical
	}
	return recipe.DeclaredText
}

// errorReason labels err for the dataset load error metric.
func errorReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPathOutsideRoot):
		return "outside_root"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	}
	return "query"
}
