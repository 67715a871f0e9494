// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/chartkitchen/internal/recipe"
)

const ordersCSV = `order_date,revenue,region,paid
2024-01-01,100.5,north,true
2024-01-02,200.25,south,false
2024-01-03,,east,true
2024-01-04,400.75,west,true
2024-01-05,500.0,north,false
`

func newTestDuckDB(t *testing.T, root string, sampleRows int) *DuckDBSource {
	t.Helper()

	cfg := DefaultConfig()
	cfg.RootDir = root
	cfg.SampleRows = sampleRows
	cfg.Threads = 1
	cfg.QueryTimeout = 30 * time.Second

	s, err := NewDuckDBSource(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDuckDBSource() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewDuckDBSource_InvalidSampleRows(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.SampleRows = 0
	if _, err := NewDuckDBSource(cfg, zerolog.Nop()); err == nil {
		t.Error("expected error for zero sample rows")
	}
}

func TestDuckDBSource_LoadCSV(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "orders.csv", ordersCSV)
	s := newTestDuckDB(t, root, 100)

	ds, err := s.Load(context.Background(), "orders.csv")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if ds.Name != "orders.csv" {
		t.Errorf("Name = %q", ds.Name)
	}
	if ds.RowCount != 5 {
		t.Errorf("RowCount = %d, want 5", ds.RowCount)
	}

	want := []struct {
		name     string
		declared recipe.DeclaredType
		values   int
	}{
		{"order_date", recipe.DeclaredDate, 5},
		{"revenue", recipe.DeclaredNumeric, 4},
		{"region", recipe.DeclaredText, 5},
		{"paid", recipe.DeclaredCategorical, 5},
	}
	if len(ds.Columns) != len(want) {
		t.Fatalf("columns = %d, want %d", len(ds.Columns), len(want))
	}
	for i, w := range want {
		c := ds.Columns[i]
		if c.Name != w.name || c.DeclaredType != w.declared {
			t.Errorf("column %d = %s/%s, want %s/%s", i, c.Name, c.DeclaredType, w.name, w.declared)
		}
		if len(c.Values) != w.values {
			t.Errorf("%s: %d values, want %d (nulls skipped)", c.Name, len(c.Values), w.values)
		}
	}

	if _, ok := ds.Columns[1].Values[0].(float64); !ok {
		t.Errorf("revenue value type %T, want float64", ds.Columns[1].Values[0])
	}
	if _, ok := ds.Columns[0].Values[0].(time.Time); !ok {
		t.Errorf("order_date value type %T, want time.Time", ds.Columns[0].Values[0])
	}
}

func TestDuckDBSource_SampleLimit(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("id,score\n")
	for i := range 50 {
		fmt.Fprintf(&b, "%d,%d.5\n", i, i)
	}

	root := t.TempDir()
	writeFile(t, root, "scores.csv", b.String())
	s := newTestDuckDB(t, root, 10)

	ds, err := s.Load(context.Background(), "scores.csv")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.RowCount != 50 {
		t.Errorf("RowCount = %d, want 50", ds.RowCount)
	}
	for _, c := range ds.Columns {
		if len(c.Values) != 10 {
			t.Errorf("%s: %d values, want 10", c.Name, len(c.Values))
		}
	}

	again, err := s.Load(context.Background(), "scores.csv")
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range again.Columns[0].Values {
		if v != ds.Columns[0].Values[i] {
			t.Fatal("repeated loads sampled different rows")
		}
	}
}

func TestDuckDBSource_LoadNDJSON(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "events.ndjson", `{"kind":"click","value":1}
{"kind":"view","value":2}
{"kind":"click","value":3}
`)
	s := newTestDuckDB(t, root, 100)

	ds, err := s.Load(context.Background(), "events.ndjson")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.RowCount != 3 || len(ds.Columns) != 2 {
		t.Fatalf("got %d rows, %d columns; want 3, 2", ds.RowCount, len(ds.Columns))
	}
	if ds.Columns[1].DeclaredType != recipe.DeclaredNumeric {
		t.Errorf("value declared as %s, want numeric", ds.Columns[1].DeclaredType)
	}
}

func TestDuckDBSource_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "book.xlsx", "not really")
	s := newTestDuckDB(t, root, 100)

	tests := []struct {
		name string
		path string
		want error
	}{
		{"outside root", "../x.csv", ErrPathOutsideRoot},
		{"unsupported", "book.xlsx", ErrUnsupportedFormat},
		{"missing", "nope.csv", ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := s.Load(context.Background(), tt.path); !errors.Is(err, tt.want) {
				t.Errorf("Load(%q) error = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}

func TestDuckDBSource_CanceledContext(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "orders.csv", ordersCSV)
	s := newTestDuckDB(t, root, 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Load(ctx, "orders.csv"); err == nil {
		t.Error("expected error for canceled context")
	}
}
