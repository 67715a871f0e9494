// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import (
	"fmt"
	"maps"
	"slices"
)

// Config contains every tunable constant of the recipe engine.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// Classifier contains thresholds for column classification.
	Classifier ClassifierConfig `json:"classifier"`

	// Scoring contains the weights and lookup tables of the scoring engine.
	Scoring ScoringConfig `json:"scoring"`

	// Pie contains the pie chart handler's shape rules.
	Pie PieConfig `json:"pie"`

	// Aggregator contains ranking and post-filter thresholds.
	Aggregator AggregatorConfig `json:"aggregator"`
}

// ClassifierConfig holds the thresholds used by the column classifier.
type ClassifierConfig struct {
	// SampleSize is how many non-null values the value-sampling rules inspect.
	SampleSize int `json:"sample_size"`

	// ValueMatchRatio is the fraction of sampled values that must match a
	// value regex for the rule to fire (strictly greater than).
	ValueMatchRatio float64 `json:"value_match_ratio"`

	// GeoMinValues is the minimum sample size for value-based geo detection.
	GeoMinValues int `json:"geo_min_values"`

	// PostalUniqueRatio is the uniqueness ratio above which a postal-named
	// numeric column is treated as geographic.
	PostalUniqueRatio float64 `json:"postal_unique_ratio"`

	CategoricalMaxUnique        int     `json:"categorical_max_unique"`
	CategoricalMaxRatio         float64 `json:"categorical_max_ratio"`
	CategoricalPatternMaxUnique int     `json:"categorical_pattern_max_unique"`
	CategoricalPatternMaxRatio  float64 `json:"categorical_pattern_max_ratio"`

	YearMin  float64 `json:"year_min"`
	YearMax  float64 `json:"year_max"`
	EpochMin float64 `json:"epoch_min"`
	EpochMax float64 `json:"epoch_max"`

	// Potency = PotencyBase + min(DiversityCap, uniqueRatio*DiversityWeight)
	// + TypedBonus for date and numeric columns.
	PotencyBase            float64 `json:"potency_base"`
	PotencyDiversityWeight float64 `json:"potency_diversity_weight"`
	PotencyDiversityCap    float64 `json:"potency_diversity_cap"`
	PotencyTypedBonus      float64 `json:"potency_typed_bonus"`
}

// SizeBonus is a per-chart adjustment for each data-size bucket.
type SizeBonus struct {
	Small  float64 `json:"small"`
	Medium float64 `json:"medium"`
	Large  float64 `json:"large"`
}

// SynergyRule adds Bonus to every chart in Charts when the ingredient set
// carries at least MinCounts of each listed type. When ExactTotal is
// positive the ingredient count must also equal it.
type SynergyRule struct {
	Name       string                 `json:"name"`
	Charts     []ChartType            `json:"charts"`
	MinCounts  map[IngredientType]int `json:"min_counts"`
	ExactTotal int                    `json:"exact_total,omitempty"`
	Bonus      float64                `json:"bonus"`
}

func (r SynergyRule) appliesTo(chart ChartType, p profile) bool {
	if !slices.Contains(r.Charts, chart) {
		return false
	}
	if r.ExactTotal > 0 && p.total != r.ExactTotal {
		return false
	}
	for t, n := range r.MinCounts {
		if p.counts[t] < n {
			return false
		}
	}
	return true
}

// ScoringConfig holds the scoring weights and chart-keyed lookup tables.
type ScoringConfig struct {
	PrimaryBase            float64 `json:"primary_base"`
	SecondaryBase          float64 `json:"secondary_base"`
	SecondaryPartialWeight float64 `json:"secondary_partial_weight"`

	// SmallSize and MediumSize bound the data-size buckets (exclusive).
	SmallSize  int `json:"small_size"`
	MediumSize int `json:"medium_size"`

	// ComplexityTypeDivisor normalizes the distinct type count.
	ComplexityTypeDivisor float64 `json:"complexity_type_divisor"`
	ComplexityHighMatch   float64 `json:"complexity_high_match"`
	ComplexityHighBonus   float64 `json:"complexity_high_bonus"`
	ComplexityMidMatch    float64 `json:"complexity_mid_match"`
	ComplexityMidBonus    float64 `json:"complexity_mid_bonus"`

	QualityHigh        float64 `json:"quality_high"`
	QualityHighBonus   float64 `json:"quality_high_bonus"`
	QualityMid         float64 `json:"quality_mid"`
	QualityMidBonus    float64 `json:"quality_mid_bonus"`
	QualityLow         float64 `json:"quality_low"`
	QualityLowPenalty  float64 `json:"quality_low_penalty"`
	DefaultTolerance   float64 `json:"default_tolerance"`
	MaxOvercrowding    float64 `json:"max_overcrowding"`

	SizeBonuses       map[ChartType]SizeBonus `json:"size_bonuses"`
	ComplexityTargets map[ChartType]float64   `json:"complexity_targets"`
	Tolerances        map[ChartType]float64   `json:"tolerances"`
	Synergies         []SynergyRule           `json:"synergies"`
}

// PieConfig holds the pie chart handler's rules.
type PieConfig struct {
	MultiCategoricalPenalty    float64 `json:"multi_categorical_penalty"`
	IdealShapeBonus            float64 `json:"ideal_shape_bonus"`
	ExtraShapeBonus            float64 `json:"extra_shape_bonus"`
	HighCardinality            int     `json:"high_cardinality"`
	HighCardinalityPenalty     float64 `json:"high_cardinality_penalty"`
	ModerateCardinality        int     `json:"moderate_cardinality"`
	ModerateCardinalityPenalty float64 `json:"moderate_cardinality_penalty"`
	SweetSpotMin               int     `json:"sweet_spot_min"`
	SweetSpotBonus             float64 `json:"sweet_spot_bonus"`

	// FilterMaxIssues drops pie charts with more issues than this.
	FilterMaxIssues int `json:"filter_max_issues"`
	// FilterMinDatasetSize drops pie charts over smaller datasets.
	FilterMinDatasetSize int `json:"filter_min_dataset_size"`
	// FilterMaxCardinality drops pie charts with more slices than this.
	FilterMaxCardinality int `json:"filter_max_cardinality"`
}

// AggregatorConfig holds ranking limits and post-filter thresholds.
type AggregatorConfig struct {
	// MinConfidence drops recipes scoring at or below it.
	MinConfidence float64 `json:"min_confidence"`

	// TopN is the maximum number of recommendations returned.
	TopN int `json:"top_n"`

	ThreeDMinSize              int         `json:"three_d_min_size"`
	ThreeDMinConfidence        float64     `json:"three_d_min_confidence"`
	NetworkMinCategorical      int         `json:"network_min_categorical"`
	MapWithoutGeoMinConfidence float64     `json:"map_without_geo_min_confidence"`
	ComplexCharts              []ChartType `json:"complex_charts"`
	ComplexMaxIngredients      int         `json:"complex_max_ingredients"`
	ComplexMinSize             int         `json:"complex_min_size"`
	ComplexMinConfidence       float64     `json:"complex_min_confidence"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			SampleSize:                  20,
			ValueMatchRatio:             0.8,
			GeoMinValues:                5,
			PostalUniqueRatio:           0.8,
			CategoricalMaxUnique:        50,
			CategoricalMaxRatio:         0.7,
			CategoricalPatternMaxUnique: 200,
			CategoricalPatternMaxRatio:  0.5,
			YearMin:                     1900,
			YearMax:                     2100,
			EpochMin:                    1e9,
			EpochMax:                    1e10,
			PotencyBase:                 0.5,
			PotencyDiversityWeight:      0.3,
			PotencyDiversityCap:         0.3,
			PotencyTypedBonus:           0.2,
		},
		Scoring: ScoringConfig{
			PrimaryBase:            0.4,
			SecondaryBase:          0.4,
			SecondaryPartialWeight: 0.2,
			SmallSize:              50,
			MediumSize:             500,
			ComplexityTypeDivisor:  5,
			ComplexityHighMatch:    0.8,
			ComplexityHighBonus:    0.08,
			ComplexityMidMatch:     0.6,
			ComplexityMidBonus:     0.04,
			QualityHigh:            0.8,
			QualityHighBonus:       0.1,
			QualityMid:             0.6,
			QualityMidBonus:        0.05,
			QualityLow:             0.3,
			QualityLowPenalty:      0.05,
			DefaultTolerance:       0.05,
			MaxOvercrowding:        0.25,
			SizeBonuses:            defaultSizeBonuses(),
			ComplexityTargets:      defaultComplexityTargets(),
			Tolerances:             defaultTolerances(),
			Synergies:              defaultSynergies(),
		},
		Pie: PieConfig{
			MultiCategoricalPenalty:    0.3,
			IdealShapeBonus:            0.2,
			ExtraShapeBonus:            0.1,
			HighCardinality:            12,
			HighCardinalityPenalty:     0.15,
			ModerateCardinality:        8,
			ModerateCardinalityPenalty: 0.05,
			SweetSpotMin:               3,
			SweetSpotBonus:             0.1,
			FilterMaxIssues:            2,
			FilterMinDatasetSize:       3,
			FilterMaxCardinality:       15,
		},
		Aggregator: AggregatorConfig{
			MinConfidence:              0.1,
			TopN:                       12,
			ThreeDMinSize:              100,
			ThreeDMinConfidence:        0.7,
			NetworkMinCategorical:      2,
			MapWithoutGeoMinConfidence: 0.8,
			ComplexCharts:              []ChartType{ChartTreemap, ChartHeatmap, ChartSurface3D, ChartNetwork3D},
			ComplexMaxIngredients:      2,
			ComplexMinSize:             50,
			ComplexMinConfidence:       0.6,
		},
	}
}

func defaultSizeBonuses() map[ChartType]SizeBonus {
	return map[ChartType]SizeBonus{
		ChartPie:        {Small: 0.05, Medium: 0, Large: -0.1},
		ChartBar:        {Small: 0.05, Medium: 0.05, Large: 0},
		ChartStackedBar: {Small: 0, Medium: 0.05, Large: 0.03},
		ChartLine:       {Small: 0, Medium: 0.05, Large: 0.05},
		ChartArea:       {Small: 0, Medium: 0.05, Large: 0.05},
		ChartScatter:    {Small: -0.03, Medium: 0.05, Large: 0.08},
		ChartBubble:     {Small: 0, Medium: 0.05, Large: 0.03},
		ChartHistogram:  {Small: -0.1, Medium: 0.05, Large: 0.08},
		ChartBoxPlot:    {Small: -0.05, Medium: 0.05, Large: 0.05},
		ChartRadar:      {Small: 0.05, Medium: 0, Large: -0.05},
		ChartHeatmap:    {Small: -0.05, Medium: 0.03, Large: 0.1},
		ChartTreemap:    {Small: -0.05, Medium: 0.03, Large: 0.1},
		ChartSankey:     {Small: 0, Medium: 0.05, Large: 0},
		ChartMap:        {Small: 0, Medium: 0.05, Large: 0.05},
		ChartMap3D:      {Small: -0.05, Medium: 0.03, Large: 0.08},
		ChartNetwork:    {Small: 0, Medium: 0.05, Large: 0.05},
		ChartNetwork3D:  {Small: -0.05, Medium: 0.03, Large: 0.08},
		ChartScatter3D:  {Small: -0.05, Medium: 0.03, Large: 0.08},
		ChartSurface3D:  {Small: -0.1, Medium: 0, Large: 0.1},
		ChartBar3D:      {Small: -0.03, Medium: 0.03, Large: 0.03},
	}
}

func defaultComplexityTargets() map[ChartType]float64 {
	return map[ChartType]float64{
		ChartPie:        0.2,
		ChartBar:        0.3,
		ChartHistogram:  0.3,
		ChartLine:       0.5,
		ChartArea:       0.5,
		ChartStackedBar: 0.5,
		ChartBoxPlot:    0.5,
		ChartScatter:    0.5,
		ChartRadar:      0.6,
		ChartBubble:     0.6,
		ChartMap:        0.6,
		ChartSankey:     0.7,
		ChartHeatmap:    0.7,
		ChartTreemap:    0.7,
		ChartNetwork:    0.7,
		ChartBar3D:      0.8,
		ChartMap3D:      0.8,
		ChartScatter3D:  0.9,
		ChartNetwork3D:  0.9,
		ChartSurface3D:  1.0,
	}
}

func defaultTolerances() map[ChartType]float64 {
	return map[ChartType]float64{
		ChartNetwork:   0.03,
		ChartNetwork3D: 0.03,
		ChartHeatmap:   0.03,
		ChartTreemap:   0.04,
		ChartScatter3D: 0.03,
		ChartSurface3D: 0.02,
	}
}

func defaultSynergies() []SynergyRule {
	return []SynergyRule{
		{Name: "single_numeric_distribution", Charts: []ChartType{ChartHistogram},
			MinCounts: map[IngredientType]int{Numeric: 1}, ExactTotal: 1, Bonus: 0.15},
		{Name: "three_numeric_space", Charts: []ChartType{ChartScatter3D},
			MinCounts: map[IngredientType]int{Numeric: 3}, Bonus: 0.12},
		{Name: "three_numeric_surface", Charts: []ChartType{ChartSurface3D},
			MinCounts: map[IngredientType]int{Numeric: 3}, Bonus: 0.10},
		{Name: "categorical_links", Charts: []ChartType{ChartNetwork},
			MinCounts: map[IngredientType]int{Categorical: 2}, Bonus: 0.12},
		{Name: "categorical_links_3d", Charts: []ChartType{ChartNetwork3D},
			MinCounts: map[IngredientType]int{Categorical: 2}, Bonus: 0.15},
		{Name: "categorical_flow", Charts: []ChartType{ChartSankey},
			MinCounts: map[IngredientType]int{Categorical: 2}, Bonus: 0.10},
		{Name: "time_series", Charts: []ChartType{ChartLine},
			MinCounts: map[IngredientType]int{Temporal: 1, Numeric: 1}, Bonus: 0.10},
		{Name: "time_series", Charts: []ChartType{ChartArea, ChartScatter},
			MinCounts: map[IngredientType]int{Temporal: 1, Numeric: 1}, Bonus: 0.08},
		{Name: "geo_measure", Charts: []ChartType{ChartMap, ChartMap3D, ChartHeatmap},
			MinCounts: map[IngredientType]int{Geographic: 1, Numeric: 1}, Bonus: 0.10},
		{Name: "category_measure", Charts: []ChartType{ChartBar, ChartPie, ChartTreemap},
			MinCounts: map[IngredientType]int{Categorical: 1, Numeric: 1}, Bonus: 0.06},
		{Name: "category_measure", Charts: []ChartType{ChartBoxPlot},
			MinCounts: map[IngredientType]int{Categorical: 1, Numeric: 1}, Bonus: 0.04},
		{Name: "numeric_pair", Charts: []ChartType{ChartScatter},
			MinCounts: map[IngredientType]int{Numeric: 2}, Bonus: 0.05},
		{Name: "numeric_profile", Charts: []ChartType{ChartRadar},
			MinCounts: map[IngredientType]int{Numeric: 3}, Bonus: 0.06},
		{Name: "numeric_bubbles", Charts: []ChartType{ChartBubble},
			MinCounts: map[IngredientType]int{Numeric: 3}, Bonus: 0.08},
		{Name: "composition_over_time", Charts: []ChartType{ChartStackedBar},
			MinCounts: map[IngredientType]int{Categorical: 1, Numeric: 1, Temporal: 1}, Bonus: 0.06},
		{Name: "grouped_columns", Charts: []ChartType{ChartBar3D},
			MinCounts: map[IngredientType]int{Categorical: 2, Numeric: 1}, Bonus: 0.05},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	cl := c.Classifier
	if cl.SampleSize < 1 {
		return fmt.Errorf("classifier.sample_size must be positive, got %d", cl.SampleSize)
	}
	if cl.ValueMatchRatio < 0 || cl.ValueMatchRatio > 1 {
		return fmt.Errorf("classifier.value_match_ratio must be in [0, 1], got %f", cl.ValueMatchRatio)
	}
	if cl.GeoMinValues < 1 {
		return fmt.Errorf("classifier.geo_min_values must be positive, got %d", cl.GeoMinValues)
	}
	if cl.CategoricalPatternMaxUnique < cl.CategoricalMaxUnique {
		return fmt.Errorf("classifier.categorical_pattern_max_unique must be >= classifier.categorical_max_unique, got %d < %d",
			cl.CategoricalPatternMaxUnique, cl.CategoricalMaxUnique)
	}
	if cl.YearMin >= cl.YearMax {
		return fmt.Errorf("classifier.year_min must be < classifier.year_max, got %f >= %f", cl.YearMin, cl.YearMax)
	}
	if cl.EpochMin >= cl.EpochMax {
		return fmt.Errorf("classifier.epoch_min must be < classifier.epoch_max, got %f >= %f", cl.EpochMin, cl.EpochMax)
	}

	s := c.Scoring
	if s.PrimaryBase < 0 || s.SecondaryBase < 0 || s.SecondaryPartialWeight < 0 {
		return fmt.Errorf("scoring base weights must be non-negative, got %f/%f/%f",
			s.PrimaryBase, s.SecondaryBase, s.SecondaryPartialWeight)
	}
	if s.SmallSize < 1 {
		return fmt.Errorf("scoring.small_size must be positive, got %d", s.SmallSize)
	}
	if s.MediumSize <= s.SmallSize {
		return fmt.Errorf("scoring.medium_size must be > scoring.small_size, got %d <= %d", s.MediumSize, s.SmallSize)
	}
	if s.ComplexityTypeDivisor <= 0 {
		return fmt.Errorf("scoring.complexity_type_divisor must be positive, got %f", s.ComplexityTypeDivisor)
	}
	if s.DefaultTolerance < 0 {
		return fmt.Errorf("scoring.default_tolerance must be non-negative, got %f", s.DefaultTolerance)
	}
	if s.MaxOvercrowding < 0 || s.MaxOvercrowding > 1 {
		return fmt.Errorf("scoring.max_overcrowding must be in [0, 1], got %f", s.MaxOvercrowding)
	}
	for chart, target := range s.ComplexityTargets {
		if target < 0 || target > 1 {
			return fmt.Errorf("scoring.complexity_targets[%s] must be in [0, 1], got %f", chart, target)
		}
	}
	for chart, tol := range s.Tolerances {
		if tol < 0 {
			return fmt.Errorf("scoring.tolerances[%s] must be non-negative, got %f", chart, tol)
		}
	}
	for i, rule := range s.Synergies {
		if len(rule.Charts) == 0 {
			return fmt.Errorf("scoring.synergies[%d] (%s) must name at least one chart", i, rule.Name)
		}
	}

	p := c.Pie
	if p.SweetSpotMin > p.ModerateCardinality || p.ModerateCardinality > p.HighCardinality {
		return fmt.Errorf("pie cardinality bounds must satisfy sweet_spot_min <= moderate <= high, got %d/%d/%d",
			p.SweetSpotMin, p.ModerateCardinality, p.HighCardinality)
	}
	if p.FilterMaxIssues < 0 {
		return fmt.Errorf("pie.filter_max_issues must be non-negative, got %d", p.FilterMaxIssues)
	}

	a := c.Aggregator
	if a.MinConfidence < 0 || a.MinConfidence >= 1 {
		return fmt.Errorf("aggregator.min_confidence must be in [0, 1), got %f", a.MinConfidence)
	}
	if a.TopN < 1 {
		return fmt.Errorf("aggregator.top_n must be positive, got %d", a.TopN)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Scoring.SizeBonuses = maps.Clone(c.Scoring.SizeBonuses)
	out.Scoring.ComplexityTargets = maps.Clone(c.Scoring.ComplexityTargets)
	out.Scoring.Tolerances = maps.Clone(c.Scoring.Tolerances)
	out.Scoring.Synergies = make([]SynergyRule, len(c.Scoring.Synergies))
	for i, r := range c.Scoring.Synergies {
		r.Charts = slices.Clone(r.Charts)
		r.MinCounts = maps.Clone(r.MinCounts)
		out.Scoring.Synergies[i] = r
	}
	out.Aggregator.ComplexCharts = slices.Clone(c.Aggregator.ComplexCharts)
	return &out
}

func (a AggregatorConfig) isComplex(chart ChartType) bool {
	return slices.Contains(a.ComplexCharts, chart)
}
