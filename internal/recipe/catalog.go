// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import (
	"errors"
	"fmt"
	"slices"
)

// Catalog is an ordered list of recipes. Order matters: ties in ranking keep
// catalog order.
type Catalog []Recipe

// ErrEmptyCatalog is returned when validating a catalog with no recipes.
var ErrEmptyCatalog = errors.New("catalog has no recipes")

// Validate checks that every recipe has a unique ID, a known chart type and
// at least one primary ingredient type.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(c))
	for i, r := range c {
		if r.ID == "" {
			return fmt.Errorf("recipe %d: id is required", i)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("recipe %q: duplicate id", r.ID)
		}
		seen[r.ID] = struct{}{}

		if !r.ChartType.Valid() {
			return fmt.Errorf("recipe %q: unknown chart type %q", r.ID, r.ChartType)
		}
		if len(r.Requirements.Primary) == 0 {
			return fmt.Errorf("recipe %q: primary ingredients must not be empty", r.ID)
		}
		for _, group := range [][]IngredientType{r.Requirements.Primary, r.Requirements.Secondary, r.Requirements.Optional} {
			for _, t := range group {
				if !slices.Contains(IngredientTypes, t) {
					return fmt.Errorf("recipe %q: unknown ingredient type %q", r.ID, t)
				}
			}
		}
	}
	return nil
}

// Find returns the recipe with the given ID.
func (c Catalog) Find(id string) (Recipe, bool) {
	for _, r := range c {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, r := range c {
		r.Requirements = Requirements{
			Primary:   slices.Clone(r.Requirements.Primary),
			Secondary: slices.Clone(r.Requirements.Secondary),
			Optional:  slices.Clone(r.Requirements.Optional),
		}
		out[i] = r
	}
	return out
}

func types(t ...IngredientType) []IngredientType { return t }

// DefaultCatalog returns a fresh copy of the built-in recipes.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID: "line-trend", Name: "Trend Line", ChartType: ChartLine,
			Reasoning:    "Line charts show how a measure changes over time.",
			Requirements: Requirements{Primary: types(Temporal, Numeric), Optional: types(Categorical)},
		},
		{
			ID: "area-cumulative", Name: "Cumulative Area", ChartType: ChartArea,
			Reasoning:    "Area charts emphasize volume and accumulation over time.",
			Requirements: Requirements{Primary: types(Temporal, Numeric), Optional: types(Categorical)},
		},
		{
			ID: "bar-comparison", Name: "Category Comparison", ChartType: ChartBar,
			Reasoning:    "Bar charts compare a measure across discrete categories.",
			Requirements: Requirements{Primary: types(Categorical), Secondary: types(Numeric)},
		},
		{
			ID: "stacked-bar-composition", Name: "Composition Over Time", ChartType: ChartStackedBar,
			Reasoning: "Stacked bars show how category shares of a measure evolve across periods.",
			Requirements: Requirements{
				Primary: types(Categorical, Numeric), Secondary: types(Temporal), Optional: types(Categorical),
			},
		},
		{
			ID: "pie-proportion", Name: "Share of Total", ChartType: ChartPie,
			Reasoning:    "Pie charts show parts of a whole when there are only a few categories.",
			Requirements: Requirements{Primary: types(Categorical), Secondary: types(Numeric)},
		},
		{
			ID: "scatter-correlation", Name: "Correlation Scatter", ChartType: ChartScatter,
			Reasoning:    "Scatter plots reveal relationships between numeric measures.",
			Requirements: Requirements{Primary: types(Numeric), Secondary: types(Numeric, Temporal, Categorical)},
		},
		{
			ID: "bubble-multivariate", Name: "Bubble Matrix", ChartType: ChartBubble,
			Reasoning: "Bubble charts encode a third measure as point size.",
			Requirements: Requirements{
				Primary: types(Numeric), Secondary: types(Categorical, Temporal), Optional: types(Numeric),
			},
		},
		{
			ID: "histogram-distribution", Name: "Value Distribution", ChartType: ChartHistogram,
			Reasoning:    "Histograms show how a single measure is distributed.",
			Requirements: Requirements{Primary: types(Numeric)},
		},
		{
			ID: "box-plot-spread", Name: "Spread by Group", ChartType: ChartBoxPlot,
			Reasoning:    "Box plots compare the spread and outliers of a measure across groups.",
			Requirements: Requirements{Primary: types(Numeric), Secondary: types(Categorical)},
		},
		{
			ID: "radar-profile", Name: "Profile Radar", ChartType: ChartRadar,
			Reasoning:    "Radar charts compare several measures for a handful of entities.",
			Requirements: Requirements{Primary: types(Numeric), Secondary: types(Categorical)},
		},
		{
			ID: "heatmap-matrix", Name: "Intensity Matrix", ChartType: ChartHeatmap,
			Reasoning: "Heatmaps show the intensity of a measure across two dimensions.",
			Requirements: Requirements{
				Primary: types(Categorical, Numeric), Secondary: types(Temporal, Categorical, Geographic),
			},
		},
		{
			ID: "treemap-hierarchy", Name: "Nested Shares", ChartType: ChartTreemap,
			Reasoning:    "Treemaps show part-to-whole relationships for many categories at once.",
			Requirements: Requirements{Primary: types(Categorical), Secondary: types(Numeric), Optional: types(Categorical)},
		},
		{
			ID: "sankey-flow", Name: "Flow Diagram", ChartType: ChartSankey,
			Reasoning:    "Sankey diagrams show how a quantity flows between categories.",
			Requirements: Requirements{Primary: types(Categorical), Secondary: types(Numeric)},
		},
		{
			ID: "choropleth-map", Name: "Regional Map", ChartType: ChartMap,
			Reasoning:    "Maps place measures or categories in their geographic context.",
			Requirements: Requirements{Primary: types(Geographic), Secondary: types(Numeric, Categorical)},
		},
		{
			ID: "globe-3d", Name: "3D Globe", ChartType: ChartMap3D,
			Reasoning:    "3D globes extrude a measure over locations for a dramatic overview.",
			Requirements: Requirements{Primary: types(Geographic), Secondary: types(Numeric), Optional: types(Temporal)},
		},
		{
			ID: "network-graph", Name: "Relationship Network", ChartType: ChartNetwork,
			Reasoning:    "Network graphs connect related categories as nodes and edges.",
			Requirements: Requirements{Primary: types(Categorical), Secondary: types(Categorical, Numeric)},
		},
		{
			ID: "network-3d", Name: "3D Network", ChartType: ChartNetwork3D,
			Reasoning:    "3D networks untangle dense relationships by adding depth.",
			Requirements: Requirements{Primary: types(Categorical), Secondary: types(Numeric, Temporal)},
		},
		{
			ID: "scatter-3d", Name: "3D Scatter", ChartType: ChartScatter3D,
			Reasoning:    "3D scatter plots explore three numeric measures together.",
			Requirements: Requirements{Primary: types(Numeric), Secondary: types(Numeric, Categorical)},
		},
		{
			ID: "surface-3d", Name: "Response Surface", ChartType: ChartSurface3D,
			Reasoning:    "Surfaces show how one measure responds to two others.",
			Requirements: Requirements{Primary: types(Numeric), Secondary: types(Numeric, Temporal)},
		},
		{
			ID: "bar-3d", Name: "3D Column Grid", ChartType: ChartBar3D,
			Reasoning:    "3D column grids compare a measure across two categorical axes.",
			Requirements: Requirements{Primary: types(Categorical, Numeric), Secondary: types(Categorical, Temporal)},
		},
		{
			ID: "line-by-category", Name: "Trend by Group", ChartType: ChartLine,
			Reasoning:    "Multi-series lines compare trends between groups.",
			Requirements: Requirements{Primary: types(Temporal, Numeric), Secondary: types(Categorical)},
		},
	}
}
