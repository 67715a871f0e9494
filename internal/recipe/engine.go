// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/chartkitchen/internal/logging"
	"github.com/tomtom215/chartkitchen/internal/metrics"
)

// Post-filter reasons, used as the metrics label.
const (
	FilterHandler            = "handler"
	FilterThreeDSmallData    = "3d_small_data"
	FilterNetworkCategorical = "network_categorical"
	FilterMapWithoutGeo      = "map_without_geo"
	FilterComplexSparse      = "complex_sparse"
)

// Engine classifies columns and ranks catalog recipes against them.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	cfg        *Config
	catalog    Catalog
	handlers   handlerSet
	classifier *Classifier
	scorer     *Scorer
	logger     zerolog.Logger
}

// Option customizes an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	catalog  Catalog
	handlers []ChartHandler
}

// WithCatalog replaces the built-in catalog.
func WithCatalog(c Catalog) Option {
	return func(o *engineOptions) {
		o.catalog = c
	}
}

// WithHandler registers an additional chart handler. A handler for a chart
// type that already has one replaces it.
func WithHandler(h ChartHandler) Option {
	return func(o *engineOptions) {
		o.handlers = append(o.handlers, h)
	}
}

// NewEngine creates a recipe engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg = cfg.Clone()

	o := engineOptions{catalog: DefaultCatalog()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	handlers := append([]ChartHandler{NewPieHandler(cfg.Pie)}, o.handlers...)
	set := newHandlerSet(handlers...)

	return &Engine{
		cfg:        cfg,
		catalog:    o.catalog.Clone(),
		handlers:   set,
		classifier: NewClassifier(cfg.Classifier),
		scorer:     &Scorer{cfg: cfg.Scoring, handlers: set},
		logger:     logger.With().Str("component", "recipe").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

// Catalog returns a copy of the engine's catalog.
func (e *Engine) Catalog() Catalog {
	return e.catalog.Clone()
}

// Classify derives an ingredient from one column.
func (e *Engine) Classify(col Column) Ingredient {
	ing := e.classifier.Classify(col)
	metrics.RecordClassification(string(ing.Type), ing.Rule)
	return ing
}

// AnalyzeIngredients classifies columns in order.
func (e *Engine) AnalyzeIngredients(columns []Column) []Ingredient {
	out := make([]Ingredient, 0, len(columns))
	for _, col := range columns {
		out = append(out, e.Classify(col))
	}
	return out
}

// ScoreRecipe returns the confidence in [0, 1] that r suits ingredients.
func (e *Engine) ScoreRecipe(r Recipe, ingredients []Ingredient) float64 {
	return e.scorer.Score(r, ingredients)
}

// ExplainScore returns every term of r's score for ingredients.
func (e *Engine) ExplainScore(r Recipe, ingredients []Ingredient) ScoreBreakdown {
	return e.scorer.Explain(r, ingredients)
}

// FindBestRecipe returns the highest scoring catalog recipe without applying
// any post-filter. The earliest recipe wins ties. It returns nil when no
// recipe scores above zero.
func (e *Engine) FindBestRecipe(ingredients []Ingredient) *ScoredRecipe {
	var best *ScoredRecipe
	for _, r := range e.catalog {
		score := e.scorer.Score(r, ingredients)
		if score <= 0 || (best != nil && score <= best.Confidence) {
			continue
		}
		best = &ScoredRecipe{Recipe: r, Confidence: score}
	}
	return best
}

// FindCompatibleRecipes ranks the catalog against ingredients, using the sum
// of unique value counts as the dataset size.
func (e *Engine) FindCompatibleRecipes(ingredients []Ingredient) []ScoredRecipe {
	return e.rank(ingredients, newProfile(ingredients).size)
}

// RecommendDataset classifies a dataset and ranks the catalog against it.
// The dataset's row count, when known, is used as the size for handler
// filters. Best is the top ranked recipe, so it never names a chart the
// filters dropped.
func (e *Engine) RecommendDataset(ctx context.Context, ds Dataset) Recommendation {
	ingredients := e.AnalyzeIngredients(ds.Columns)

	size := ds.RowCount
	if size <= 0 {
		size = newProfile(ingredients).size
	}

	rec := Recommendation{
		Dataset:     ds.Name,
		RowCount:    ds.RowCount,
		Ingredients: ingredients,
		Recipes:     e.rank(ingredients, size),
		Report:      e.ValidateIngredientCombination(ingredients),
	}
	if len(rec.Recipes) > 0 {
		best := rec.Recipes[0]
		rec.Best = &best
	}

	e.logger.Debug().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("dataset", ds.Name).
		Int("columns", len(ds.Columns)).
		Int("recipes", len(rec.Recipes)).
		Msg("dataset recommended")

	return rec
}

// rank runs the aggregator pipeline: score, threshold, sort, post-filter,
// deduplicate by chart type and truncate.
func (e *Engine) rank(ingredients []Ingredient, datasetSize int) []ScoredRecipe {
	if len(ingredients) == 0 {
		return []ScoredRecipe{}
	}

	start := time.Now()
	agg := e.cfg.Aggregator
	p := newProfile(ingredients)

	scored := make([]ScoredRecipe, 0, len(e.catalog))
	for _, r := range e.catalog {
		score := e.scorer.Score(r, ingredients)
		if score <= agg.MinConfidence {
			continue
		}
		scored = append(scored, ScoredRecipe{Recipe: r, Confidence: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Confidence > scored[j].Confidence
	})

	kept := scored[:0]
	for _, sr := range scored {
		if reason := e.filterReason(sr, ingredients, p, datasetSize); reason != "" {
			metrics.RecordRecipeFiltered(reason)
			e.logger.Debug().
				Str("recipe", sr.ID).
				Str("reason", reason).
				Float64("confidence", sr.Confidence).
				Msg("recipe filtered")
			continue
		}
		kept = append(kept, sr)
	}

	// Sorted input means the first entry seen per chart type has the
	// highest confidence.
	seen := make(map[ChartType]struct{}, len(kept))
	out := make([]ScoredRecipe, 0, len(kept))
	for _, sr := range kept {
		if _, dup := seen[sr.ChartType]; dup {
			continue
		}
		seen[sr.ChartType] = struct{}{}
		out = append(out, sr)
	}

	if len(out) > agg.TopN {
		out = out[:agg.TopN]
	}

	metrics.RecordRecommendation(len(out), time.Since(start))
	return out
}

// filterReason returns why sr should be dropped, or "" to keep it.
func (e *Engine) filterReason(sr ScoredRecipe, ingredients []Ingredient, p profile, datasetSize int) string {
	agg := e.cfg.Aggregator
	chart := sr.ChartType

	if h, ok := e.handlers[chart]; ok && h.ShouldFilter(ingredients, datasetSize) {
		return FilterHandler
	}
	if chart.Is3D() && p.size < agg.ThreeDMinSize && sr.Confidence <= agg.ThreeDMinConfidence {
		return FilterThreeDSmallData
	}
	if (chart == ChartNetwork || chart == ChartNetwork3D) && p.counts[Categorical] < agg.NetworkMinCategorical {
		return FilterNetworkCategorical
	}
	if (chart == ChartMap || chart == ChartMap3D) && !p.has(Geographic) &&
		sr.Confidence <= agg.MapWithoutGeoMinConfidence {
		return FilterMapWithoutGeo
	}
	if agg.isComplex(chart) && p.total <= agg.ComplexMaxIngredients && p.size < agg.ComplexMinSize &&
		sr.Confidence <= agg.ComplexMinConfidence {
		return FilterComplexSparse
	}
	return ""
}
