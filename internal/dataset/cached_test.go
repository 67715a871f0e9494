// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package dataset

import (
	"context"
	"errors"
	"testing"
	"time"
)

func cachedConfig(root string) Config {
	cfg := DefaultConfig()
	cfg.RootDir = root
	cfg.CacheTTL = time.Hour
	return cfg
}

func TestCachedSource_ReusesUntilFileChanges(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.csv", "x\n1\n")
	fake := &fakeSource{}
	c := NewCachedSource(fake, cachedConfig(root))

	first, err := c.Load(context.Background(), "a.csv")
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Load(context.Background(), "a.csv")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected the cached dataset on the second load")
	}
	if got := fake.calls.Load(); got != 1 {
		t.Errorf("wrapped source called %d times, want 1", got)
	}

	writeFile(t, root, "a.csv", "x\n1\n2\n")
	if _, err := c.Load(context.Background(), "a.csv"); err != nil {
		t.Fatal(err)
	}
	if got := fake.calls.Load(); got != 2 {
		t.Errorf("wrapped source called %d times after change, want 2", got)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 2 {
		t.Errorf("Stats() = %+v, want 1 hit and 2 misses", s)
	}
}

func TestCachedSource_PathErrorsPassThrough(t *testing.T) {
	t.Parallel()

	fake := &fakeSource{err: ErrPathOutsideRoot}
	c := NewCachedSource(fake, cachedConfig(t.TempDir()))

	if _, err := c.Load(context.Background(), "../x.csv"); !errors.Is(err, ErrPathOutsideRoot) {
		t.Errorf("Load() error = %v, want ErrPathOutsideRoot", err)
	}
	if fake.calls.Load() != 1 {
		t.Error("expected the wrapped source to report the path error")
	}
}

func TestCachedSource_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.csv", "x\n1\n")
	fake := &fakeSource{err: errors.New("boom")}
	c := NewCachedSource(fake, cachedConfig(root))

	for range 2 {
		if _, err := c.Load(context.Background(), "a.csv"); err == nil {
			t.Fatal("expected error")
		}
	}
	if got := fake.calls.Load(); got != 2 {
		t.Errorf("wrapped source called %d times, want 2", got)
	}
}
