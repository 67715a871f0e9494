// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

// DeclaredType is the storage type a caller reports for a column.
type DeclaredType string

const (
	DeclaredNumeric     DeclaredType = "numeric"
	DeclaredDate        DeclaredType = "date"
	DeclaredCategorical DeclaredType = "categorical"
	DeclaredText        DeclaredType = "text"
)

// IngredientType is the semantic category assigned to a column.
type IngredientType string

const (
	Temporal    IngredientType = "temporal"
	Numeric     IngredientType = "numeric"
	Categorical IngredientType = "categorical"
	Geographic  IngredientType = "geographic"
	Textual     IngredientType = "textual"
)

// IngredientTypes lists every ingredient type in a stable order.
var IngredientTypes = []IngredientType{Temporal, Numeric, Categorical, Geographic, Textual}

// ChartType identifies a kind of chart a recipe produces.
type ChartType string

const (
	ChartLine       ChartType = "line"
	ChartArea       ChartType = "area"
	ChartBar        ChartType = "bar"
	ChartStackedBar ChartType = "stacked_bar"
	ChartPie        ChartType = "pie"
	ChartScatter    ChartType = "scatter"
	ChartBubble     ChartType = "bubble"
	ChartHistogram  ChartType = "histogram"
	ChartBoxPlot    ChartType = "box_plot"
	ChartRadar      ChartType = "radar"
	ChartHeatmap    ChartType = "heatmap"
	ChartTreemap    ChartType = "treemap"
	ChartSankey     ChartType = "sankey"
	ChartMap        ChartType = "map"
	ChartMap3D      ChartType = "map3d"
	ChartNetwork    ChartType = "network"
	ChartNetwork3D  ChartType = "network3d"
	ChartScatter3D  ChartType = "scatter3d"
	ChartSurface3D  ChartType = "surface3d"
	ChartBar3D      ChartType = "bar3d"
)

var knownCharts = map[ChartType]struct{}{
	ChartLine: {}, ChartArea: {}, ChartBar: {}, ChartStackedBar: {}, ChartPie: {},
	ChartScatter: {}, ChartBubble: {}, ChartHistogram: {}, ChartBoxPlot: {}, ChartRadar: {},
	ChartHeatmap: {}, ChartTreemap: {}, ChartSankey: {}, ChartMap: {}, ChartMap3D: {},
	ChartNetwork: {}, ChartNetwork3D: {}, ChartScatter3D: {}, ChartSurface3D: {}, ChartBar3D: {},
}

// Valid reports whether c is a known chart type.
func (c ChartType) Valid() bool {
	_, ok := knownCharts[c]
	return ok
}

// Is3D reports whether c renders in three dimensions.
func (c ChartType) Is3D() bool {
	switch c {
	case ChartMap3D, ChartNetwork3D, ChartScatter3D, ChartSurface3D, ChartBar3D:
		return true
	}
	return false
}

// Column is a raw dataset column as supplied by the caller.
// Values hold a sample of the column's scalars (string, float64, int, int64,
// bool, time.Time or nil).
type Column struct {
	Name         string       `json:"name"`
	DeclaredType DeclaredType `json:"declared_type"`
	Values       []any        `json:"values,omitempty"`
}

// Dataset is an ordered set of columns plus the total number of rows.
type Dataset struct {
	Name     string   `json:"name"`
	Columns  []Column `json:"columns"`
	RowCount int      `json:"row_count"`
}

// Ingredient is a column after semantic classification.
type Ingredient struct {
	SourceColumn     string         `json:"source_column"`
	Type             IngredientType `json:"type"`
	Potency          float64        `json:"potency"`
	UniqueValueCount int            `json:"unique_value_count"`
	Properties       []string       `json:"properties"`
	Rule             string         `json:"rule"`
}

// HasProperty reports whether the ingredient carries tag.
func (i Ingredient) HasProperty(tag string) bool {
	for _, p := range i.Properties {
		if p == tag {
			return true
		}
	}
	return false
}

// Requirements describes the ingredient shape a recipe needs.
//
// Every Primary type must be present. When Secondary is non-empty at least one
// of its types must be present. Optional is informational.
type Requirements struct {
	Primary   []IngredientType `json:"primary"`
	Secondary []IngredientType `json:"secondary,omitempty"`
	Optional  []IngredientType `json:"optional,omitempty"`
}

// Recipe is a static chart template.
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ChartType    ChartType    `json:"chart_type"`
	Reasoning    string       `json:"reasoning"`
	Requirements Requirements `json:"required_ingredients"`
}

// ScoredRecipe pairs a recipe with the confidence computed for one
// ingredient set.
type ScoredRecipe struct {
	Recipe
	Confidence float64 `json:"confidence"`
}

// ScoreBreakdown lists every term that contributed to a confidence score.
// Total is the clamped sum; terms after a failed gate are zero.
type ScoreBreakdown struct {
	RecipeID     string   `json:"recipe_id"`
	HasPrimary   bool     `json:"has_primary"`
	Primary      float64  `json:"primary"`
	Secondary    float64  `json:"secondary"`
	Handler      float64  `json:"handler"`
	Synergy      float64  `json:"synergy"`
	Size         float64  `json:"size"`
	Complexity   float64  `json:"complexity"`
	Quality      float64  `json:"quality"`
	Overcrowding float64  `json:"overcrowding"`
	Total        float64  `json:"total"`
	Gate         string   `json:"gate,omitempty"`
	Issues       []string `json:"issues,omitempty"`
}

// Validation is the outcome of a chart handler's shape check.
type Validation struct {
	IsValid bool     `json:"is_valid"`
	Score   float64  `json:"score"`
	Issues  []string `json:"issues"`
}

// CombinationReport is the result of a lightweight sanity check over an
// ingredient set.
type CombinationReport struct {
	IsValid     bool     `json:"is_valid"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Recommendation is the full result for one dataset.
type Recommendation struct {
	Dataset     string            `json:"dataset,omitempty"`
	RowCount    int               `json:"row_count"`
	Ingredients []Ingredient      `json:"ingredients"`
	Recipes     []ScoredRecipe    `json:"recipes"`
	// Best mirrors Recipes[0] and is nil when nothing survived ranking.
	Best        *ScoredRecipe     `json:"best,omitempty"`
	Report      CombinationReport `json:"report"`
}

// profile summarizes an ingredient set for scoring and filtering.
type profile struct {
	counts     map[IngredientType]int
	total      int
	size       int
	avgPotency float64
	// maxCategoricalCardinality is the largest UniqueValueCount among
	// categorical ingredients.
	maxCategoricalCardinality int
}

func newProfile(ingredients []Ingredient) profile {
	p := profile{counts: make(map[IngredientType]int, len(IngredientTypes))}
	var potency float64
	for _, ing := range ingredients {
		p.counts[ing.Type]++
		p.size += ing.UniqueValueCount
		potency += ing.Potency
		if ing.Type == Categorical && ing.UniqueValueCount > p.maxCategoricalCardinality {
			p.maxCategoricalCardinality = ing.UniqueValueCount
		}
	}
	p.total = len(ingredients)
	if p.total > 0 {
		p.avgPotency = potency / float64(p.total)
	}
	return p
}

func (p profile) has(t IngredientType) bool {
	return p.counts[t] > 0
}

func (p profile) distinctTypes() int {
	n := 0
	for _, c := range p.counts {
		if c > 0 {
			n++
		}
	}
	return n
}
