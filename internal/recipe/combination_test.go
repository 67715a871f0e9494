// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import "testing"

func TestValidateCombination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         []Ingredient
		wantValid  bool
		wantIssues int
	}{
		{"empty", nil, false, 1},
		{"single numeric", []Ingredient{ing(Numeric, 5, 0.8)}, false, 1},
		{"single temporal", []Ingredient{ing(Temporal, 5, 0.8)}, false, 2},
		{"time series", []Ingredient{ing(Temporal, 5, 0.8), ing(Numeric, 5, 0.8)}, true, 0},
		{"all categorical", []Ingredient{ing(Categorical, 5, 0.8), ing(Categorical, 5, 0.8), ing(Categorical, 5, 0.8)}, false, 2},
		{"all numeric", []Ingredient{ing(Numeric, 5, 0.8), ing(Numeric, 5, 0.8), ing(Numeric, 5, 0.8)}, false, 1},
		{"two numeric", []Ingredient{ing(Numeric, 5, 0.8), ing(Numeric, 5, 0.8)}, true, 0},
		{"temporal and text", []Ingredient{ing(Temporal, 5, 0.8), ing(Textual, 5, 0.8)}, false, 1},
		{"geo and text", []Ingredient{ing(Geographic, 5, 0.8), ing(Textual, 5, 0.8)}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := validateCombination(tt.in)
			if r.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v", r.IsValid, tt.wantValid)
			}
			if len(r.Issues) != tt.wantIssues {
				t.Errorf("Issues = %v, want %d", r.Issues, tt.wantIssues)
			}
			if len(r.Suggestions) != len(r.Issues) {
				t.Errorf("got %d suggestions for %d issues", len(r.Suggestions), len(r.Issues))
			}
			if r.Issues == nil || r.Suggestions == nil {
				t.Error("Issues and Suggestions must be non-nil")
			}
		})
	}
}
