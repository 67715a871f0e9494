// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/tomtom215/chartkitchen/internal/cache"
	"github.com/tomtom215/chartkitchen/internal/metrics"
	"github.com/tomtom215/chartkitchen/internal/recipe"
)

// CachedSource reuses loaded samples until the file changes or the entry
// expires. Returned datasets are shared and must not be modified.
type CachedSource struct {
	next  Source
	root  string
	cache *cache.TTL[*recipe.Dataset]
}

// fingerprint identifies one version of a file.
type fingerprint struct {
	Path    string `json:"path"`
	Size    int64  `json:"size"`
	ModTime int64  `json:"mod_time"`
}

// NewCachedSource wraps next with a cache of lifetime cfg.CacheTTL. Paths are
// resolved against cfg.RootDir to build keys.
func NewCachedSource(next Source, cfg Config) *CachedSource {
	return &CachedSource{
		next:  next,
		root:  cfg.RootDir,
		cache: cache.NewTTL[*recipe.Dataset](cfg.CacheTTL),
	}
}

// Load implements Source.
func (c *CachedSource) Load(ctx context.Context, path string) (*recipe.Dataset, error) {
	key, err := c.key(path)
	if err != nil {
		// Let the wrapped source report path problems consistently.
		return c.next.Load(ctx, path)
	}

	if ds, ok := c.cache.Get(key); ok {
		metrics.RecordDatasetCache(true)
		return ds, nil
	}
	metrics.RecordDatasetCache(false)

	ds, err := c.next.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, ds)
	return ds, nil
}

// Prune drops expired entries.
func (c *CachedSource) Prune() int {
	return c.cache.Prune()
}

// Stats returns cache counters.
func (c *CachedSource) Stats() cache.Stats {
	return c.cache.Stats()
}

func (c *CachedSource) key(path string) (string, error) {
	resolved, err := ResolvePath(c.root, path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("stat dataset: %w", err)
	}
	return cache.GenerateKey("dataset", fingerprint{
		Path:    resolved,
		Size:    info.Size(),
		ModTime: info.ModTime().UnixNano(),
	}), nil
}
