// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recipes/recommend", "200"))

	RecordAPIRequest("POST", "/api/v1/recipes/recommend", "200", 12*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recipes/recommend", "200"))
	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordClassification(t *testing.T) {
	counter := RecipeClassifications.WithLabelValues("temporal", "temporal_declared")
	before := testutil.ToFloat64(counter)

	RecordClassification("temporal", "temporal_declared")
	RecordClassification("temporal", "temporal_declared")

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("expected 2 classifications, got %v", got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name    string
		results int
		outcome string
	}{
		{"with results", 5, "recommended"},
		{"no results", 0, "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := RecipeRecommendations.WithLabelValues(tt.outcome)
			before := testutil.ToFloat64(counter)

			RecordRecommendation(tt.results, 50*time.Microsecond)

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("outcome %q increased by %v, want 1", tt.outcome, got)
			}
		})
	}
}

func TestRecordDatasetLoad(t *testing.T) {
	counter := DatasetLoadErrors.WithLabelValues("other")
	before := testutil.ToFloat64(counter)

	RecordDatasetLoad("csv", time.Millisecond, "", nil)
	if got := testutil.ToFloat64(counter); got != before {
		t.Errorf("success should not count an error, got %v want %v", got, before)
	}

	RecordDatasetLoad("csv", time.Millisecond, "", errors.New("boom"))
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected one error recorded under 'other', got %v", got)
	}
}

func TestRecordDatasetCache(t *testing.T) {
	hits := testutil.ToFloat64(DatasetCacheHits)
	misses := testutil.ToFloat64(DatasetCacheMisses)

	RecordDatasetCache(true)
	RecordDatasetCache(false)
	RecordDatasetCache(false)

	if got := testutil.ToFloat64(DatasetCacheHits) - hits; got != 1 {
		t.Errorf("hits increased by %v, want 1", got)
	}
	if got := testutil.ToFloat64(DatasetCacheMisses) - misses; got != 2 {
		t.Errorf("misses increased by %v, want 2", got)
	}
}

func TestRecordRecipeFiltered(t *testing.T) {
	counter := RecipeFiltered.WithLabelValues("handler")
	before := testutil.ToFloat64(counter)

	RecordRecipeFiltered("handler")

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}
