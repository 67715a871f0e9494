// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func ing(t IngredientType, unique int, potency float64) Ingredient {
	return Ingredient{
		SourceColumn:     string(t),
		Type:             t,
		Potency:          potency,
		UniqueValueCount: unique,
	}
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), zerolog.Nop(), opts...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func mustFind(t *testing.T, c Catalog, id string) Recipe {
	t.Helper()
	r, ok := c.Find(id)
	if !ok {
		t.Fatalf("recipe %s not in catalog", id)
	}
	return r
}

// stubHandler is a ChartHandler with fixed answers.
type stubHandler struct {
	chart  ChartType
	result Validation
	filter bool
}

func (h stubHandler) ChartType() ChartType { return h.chart }
func (h stubHandler) Validate([]Ingredient) Validation { return h.result }
func (h stubHandler) ShouldFilter([]Ingredient, int) bool { return h.filter }
