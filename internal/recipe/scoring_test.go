// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import (
	"slices"
	"testing"
)

func newTestScorer(handlers ...ChartHandler) *Scorer {
	cfg := DefaultConfig()
	if len(handlers) == 0 {
		handlers = []ChartHandler{NewPieHandler(cfg.Pie)}
	}
	return NewScorer(cfg.Scoring, handlers...)
}

var scoringFixtures = map[string][]Ingredient{
	"empty":            nil,
	"single numeric":   {ing(Numeric, 40, 0.9)},
	"time series":      {ing(Temporal, 30, 1.0), ing(Numeric, 30, 1.0)},
	"category measure": {ing(Categorical, 5, 0.6), ing(Numeric, 200, 0.9)},
	"geo measure":      {ing(Geographic, 50, 0.8), ing(Numeric, 50, 0.8), ing(Temporal, 12, 0.7)},
	"wide numeric":     {ing(Numeric, 900, 0.9), ing(Numeric, 900, 0.9), ing(Numeric, 900, 0.9), ing(Numeric, 900, 0.9)},
	"low potency text": {ing(Textual, 1, 0.1), ing(Categorical, 1, 0.1)},
	"everything": {
		ing(Temporal, 100, 1), ing(Numeric, 100, 1), ing(Categorical, 8, 0.6),
		ing(Geographic, 20, 0.8), ing(Textual, 100, 0.5), ing(Categorical, 4, 0.6),
	},
}

func TestScore_RangeAndDeterminism(t *testing.T) {
	t.Parallel()

	s := newTestScorer()
	for name, ingredients := range scoringFixtures {
		for _, r := range DefaultCatalog() {
			first := s.Score(r, ingredients)
			if first < 0 || first > 1 {
				t.Errorf("%s/%s: score %v outside [0, 1]", name, r.ID, first)
			}
			for range 3 {
				if again := s.Score(r, ingredients); again != first {
					t.Errorf("%s/%s: score changed from %v to %v", name, r.ID, first, again)
				}
			}
		}
	}
}

func TestScore_PrimaryGate(t *testing.T) {
	t.Parallel()

	s := newTestScorer()
	catalog := DefaultCatalog()

	for _, r := range catalog {
		for name, ingredients := range scoringFixtures {
			p := newProfile(ingredients)
			if presentCount(p, r.Requirements.Primary) == len(r.Requirements.Primary) {
				continue
			}
			b := s.Explain(r, ingredients)
			if b.Total != 0 || b.Gate != GatePrimary || b.HasPrimary {
				t.Errorf("%s/%s: expected primary gate, got %+v", name, r.ID, b)
			}
		}
	}
}

func TestScore_SecondaryGate(t *testing.T) {
	t.Parallel()

	s := newTestScorer()
	bar := mustFind(t, DefaultCatalog(), "bar-comparison")

	b := s.Explain(bar, []Ingredient{ing(Categorical, 5, 0.9)})
	if b.Total != 0 {
		t.Errorf("Total = %v, want 0", b.Total)
	}
	if b.Gate != GateSecondary || !b.HasPrimary {
		t.Errorf("Gate = %q HasPrimary = %v, want secondary gate after primary pass", b.Gate, b.HasPrimary)
	}
}

func TestScore_HandlerGate(t *testing.T) {
	t.Parallel()

	bar := mustFind(t, DefaultCatalog(), "bar-comparison")
	ingredients := []Ingredient{ing(Categorical, 5, 0.9), ing(Numeric, 50, 0.9)}

	reject := newTestScorer(stubHandler{chart: ChartBar, result: Validation{IsValid: false, Issues: []string{"nope"}}})
	b := reject.Explain(bar, ingredients)
	if b.Total != 0 || b.Gate != GateHandler {
		t.Errorf("expected handler gate, got %+v", b)
	}
	if !slices.Equal(b.Issues, []string{"nope"}) {
		t.Errorf("Issues = %v, want handler issues", b.Issues)
	}

	boost := newTestScorer(stubHandler{chart: ChartBar, result: Validation{IsValid: true, Score: 0.07}})
	if got := boost.Explain(bar, ingredients).Handler; !approx(got, 0.07) {
		t.Errorf("Handler = %v, want 0.07", got)
	}
}

func TestExplain_TermsSumToTotal(t *testing.T) {
	t.Parallel()

	s := newTestScorer()
	for name, ingredients := range scoringFixtures {
		for _, r := range DefaultCatalog() {
			b := s.Explain(r, ingredients)
			if b.Gate != "" {
				continue
			}
			sum := b.Primary + b.Secondary + b.Handler + b.Synergy + b.Size + b.Complexity + b.Quality + b.Overcrowding
			if !approx(b.Total, clamp01(sum)) {
				t.Errorf("%s/%s: Total = %v, want clamp(%v)", name, r.ID, b.Total, sum)
			}
			if b.Overcrowding > 0 {
				t.Errorf("%s/%s: overcrowding must not be positive, got %v", name, r.ID, b.Overcrowding)
			}
		}
	}
}

func TestExplain_Terms(t *testing.T) {
	t.Parallel()

	s := newTestScorer()
	catalog := DefaultCatalog()
	hist := mustFind(t, catalog, "histogram-distribution")
	scatter := mustFind(t, catalog, "scatter-correlation")

	t.Run("single numeric synergy", func(t *testing.T) {
		t.Parallel()
		b := s.Explain(hist, []Ingredient{ing(Numeric, 40, 0.9)})
		if !approx(b.Synergy, 0.15) {
			t.Errorf("Synergy = %v, want 0.15", b.Synergy)
		}
		if !approx(b.Secondary, 0.4) {
			t.Errorf("Secondary = %v, want 0.4 when no secondary is declared", b.Secondary)
		}
	})

	t.Run("overcrowding is capped", func(t *testing.T) {
		t.Parallel()
		many := make([]Ingredient, 8)
		for i := range many {
			many[i] = ing(Numeric, 10, 0.8)
		}
		b := s.Explain(hist, many)
		if !approx(b.Overcrowding, -0.25) {
			t.Errorf("Overcrowding = %v, want -0.25", b.Overcrowding)
		}
		if b.Synergy != 0 {
			t.Errorf("Synergy = %v, want 0 for more than one ingredient", b.Synergy)
		}
	})

	t.Run("partial secondary credit", func(t *testing.T) {
		t.Parallel()
		b := s.Explain(scatter, []Ingredient{ing(Numeric, 100, 0.8), ing(Temporal, 100, 0.8)})
		if !approx(b.Secondary, 0.4+2.0/3.0*0.2) {
			t.Errorf("Secondary = %v, want 0.4 + 2/3*0.2", b.Secondary)
		}
	})
}

func TestSizeBonus(t *testing.T) {
	t.Parallel()

	s := newTestScorer()
	tests := []struct {
		chart ChartType
		size  int
		want  float64
	}{
		{ChartPie, 10, 0.05},
		{ChartPie, 100, 0},
		{ChartPie, 500, -0.1},
		{ChartHistogram, 49, -0.1},
		{ChartHistogram, 50, 0.05},
		{"unknown", 10, 0},
	}
	for _, tt := range tests {
		if got := s.sizeBonus(tt.chart, tt.size); !approx(got, tt.want) {
			t.Errorf("sizeBonus(%s, %d) = %v, want %v", tt.chart, tt.size, got, tt.want)
		}
	}
}

func TestQualityBonus(t *testing.T) {
	t.Parallel()

	s := newTestScorer()
	tests := []struct {
		potency float64
		want    float64
	}{
		{0.9, 0.1},
		{0.7, 0.05},
		{0.5, 0},
		{0.2, -0.05},
	}
	for _, tt := range tests {
		if got := s.qualityBonus(tt.potency); !approx(got, tt.want) {
			t.Errorf("qualityBonus(%v) = %v, want %v", tt.potency, got, tt.want)
		}
	}
}

func TestComplexityBonus(t *testing.T) {
	t.Parallel()

	s := newTestScorer()
	// (1.0 + 2/5) / 2 = 0.7
	p := newProfile([]Ingredient{ing(Temporal, 5, 1), ing(Numeric, 5, 1)})

	tests := []struct {
		chart ChartType
		want  float64
	}{
		{ChartSankey, 0.08},    // target 0.7, match 1.0
		{ChartLine, 0.04},      // target 0.5, match 0.8
		{ChartSurface3D, 0.04}, // target 1.0, match 0.7
		{ChartPie, 0},          // target 0.2, match 0.5
	}
	for _, tt := range tests {
		if got := s.complexityBonus(tt.chart, p); !approx(got, tt.want) {
			t.Errorf("complexityBonus(%s) = %v, want %v", tt.chart, got, tt.want)
		}
	}
}
