// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package cache

import (
	"strings"
	"testing"
	"time"
)

func TestTTL_SetGet(t *testing.T) {
	t.Parallel()

	c := NewTTL[string](time.Minute)
	c.Set("k", "v")

	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Fatalf("Get() = %q, %v; want v, true", got, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Keys != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
	if c.HitRate() != 50 {
		t.Errorf("HitRate() = %v, want 50", c.HitRate())
	}
}

func TestTTL_Expiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewTTL[int](time.Minute)
	c.now = func() time.Time { return now }

	c.Set("a", 1)
	c.Set("b", 2)

	now = now.Add(2 * time.Minute)

	if _, ok := c.Get("a"); ok {
		t.Error("expected expired entry to miss")
	}
	if removed := c.Prune(); removed != 1 {
		t.Errorf("Prune() = %d, want 1", removed)
	}
	if s := c.Stats(); s.Keys != 0 || s.Evictions != 2 {
		t.Errorf("unexpected stats after expiry %+v", s)
	}
}

func TestTTL_Delete(t *testing.T) {
	t.Parallel()

	c := NewTTL[int](time.Minute)
	c.Set("a", 1)
	c.Delete("a")
	c.Delete("a")

	if _, ok := c.Get("a"); ok {
		t.Error("expected deleted key to miss")
	}
	if s := c.Stats(); s.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", s.Evictions)
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	k1 := GenerateKey("dataset", map[string]any{"path": "a.csv", "size": 10})
	k2 := GenerateKey("dataset", map[string]any{"path": "a.csv", "size": 10})
	k3 := GenerateKey("dataset", map[string]any{"path": "a.csv", "size": 11})

	if k1 != k2 {
		t.Errorf("identical params produced different keys: %s vs %s", k1, k2)
	}
	if k1 == k3 {
		t.Error("different params produced the same key")
	}
	if !strings.HasPrefix(k1, "dataset:") {
		t.Errorf("key %q missing prefix", k1)
	}
}
