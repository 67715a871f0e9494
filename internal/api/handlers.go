// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tomtom215/chartkitchen/internal/dataset"
	"github.com/tomtom215/chartkitchen/internal/logging"
	"github.com/tomtom215/chartkitchen/internal/recipe"
)

// Handler serves the recipe endpoints.
type Handler struct {
	engine  *recipe.Engine
	labeler *recipe.Labeler
	source  dataset.Source
	logger  zerolog.Logger
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithDatasetSource enables POST /api/v1/datasets/recommend.
func WithDatasetSource(src dataset.Source) HandlerOption {
	return func(h *Handler) {
		h.source = src
	}
}

// NewHandler creates the endpoint handlers.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(engine *recipe.Engine, labeler *recipe.Labeler, logger zerolog.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:  engine,
		labeler: labeler,
		logger:  logger.With().Str("component", "api").Logger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Health handles GET /api/v1/health.
//
// @Summary Service health
// @Description Reports the catalog size and whether dataset loading is enabled.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthResponse} "Service is up"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthResponse{
		Status:          "ok",
		Recipes:         len(h.engine.Catalog()),
		DatasetsEnabled: h.source != nil,
	})
}

// Recipes handles GET /api/v1/recipes.
//
// @Summary List the recipe catalog
// @Tags Recipes
// @Produce json
// @Success 200 {object} APIResponse{data=[]recipe.Recipe} "Catalog in declaration order"
// @Router /recipes [get]
func (h *Handler) Recipes(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.engine.Catalog())
}

// Classify handles POST /api/v1/recipes/classify.
//
// @Summary Classify columns into ingredients
// @Tags Recipes
// @Accept json
// @Produce json
// @Param request body ColumnsRequest true "Columns to classify"
// @Success 200 {object} APIResponse{data=ClassifyResponse} "One ingredient per column, in input order"
// @Failure 400 {object} APIResponse "Malformed or invalid body"
// @Failure 413 {object} APIResponse "Body too large"
// @Router /recipes/classify [post]
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req ColumnsRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	rw.Success(ClassifyResponse{
		Ingredients: h.engine.AnalyzeIngredients(toColumns(req.Columns)),
	})
}

// Recommend handles POST /api/v1/recipes/recommend.
//
// @Summary Recommend charts for columns
// @Description Classifies the columns, ranks the catalog and returns the filtered,
// @Description deduplicated top recipes with display labels.
// @Tags Recipes
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Columns and optional row count"
// @Success 200 {object} APIResponse{data=RecommendResponse} "Ranked recipes"
// @Failure 400 {object} APIResponse "Malformed or invalid body"
// @Failure 413 {object} APIResponse "Body too large"
// @Router /recipes/recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req RecommendRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	rec := h.engine.RecommendDataset(r.Context(), recipe.Dataset{
		Columns:  toColumns(req.Columns),
		RowCount: req.RowCount,
	})
	rw.Success(h.labeled(rec))
}

// Score handles POST /api/v1/recipes/score.
//
// @Summary Explain one recipe's score
// @Tags Recipes
// @Accept json
// @Produce json
// @Param request body ScoreRequest true "Recipe ID and columns"
// @Success 200 {object} APIResponse{data=recipe.ScoreBreakdown} "Score breakdown"
// @Failure 400 {object} APIResponse "Malformed or invalid body"
// @Failure 404 {object} APIResponse "Unknown recipe"
// @Router /recipes/score [post]
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req ScoreRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	rcp, ok := h.engine.Catalog().Find(req.RecipeID)
	if !ok {
		rw.NotFound("Unknown recipe: " + req.RecipeID)
		return
	}

	ingredients := h.engine.AnalyzeIngredients(toColumns(req.Columns))
	rw.Success(h.engine.ExplainScore(rcp, ingredients))
}

// Validate handles POST /api/v1/recipes/validate.
//
// @Summary Check whether columns can make any chart
// @Tags Recipes
// @Accept json
// @Produce json
// @Param request body ColumnsRequest true "Columns to check"
// @Success 200 {object} APIResponse{data=recipe.CombinationReport} "Combination report"
// @Failure 400 {object} APIResponse "Malformed or invalid body"
// @Router /recipes/validate [post]
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req ColumnsRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	ingredients := h.engine.AnalyzeIngredients(toColumns(req.Columns))
	rw.Success(h.engine.ValidateIngredientCombination(ingredients))
}

// DatasetRecommend handles POST /api/v1/datasets/recommend.
//
// @Summary Recommend charts for a dataset file
// @Description Samples a CSV, TSV, Parquet or NDJSON file under the dataset root and ranks the catalog against it.
// @Tags Datasets
// @Accept json
// @Produce json
// @Param request body DatasetRequest true "Path relative to the dataset root"
// @Success 200 {object} APIResponse{data=RecommendResponse} "Ranked recipes"
// @Failure 400 {object} APIResponse "Invalid path or unsupported format"
// @Failure 404 {object} APIResponse "Dataset not found"
// @Failure 503 {object} APIResponse "Dataset loading disabled or unavailable"
// @Router /datasets/recommend [post]
func (h *Handler) DatasetRecommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.source == nil {
		rw.ServiceUnavailable("Dataset loading is disabled")
		return
	}

	var req DatasetRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	ds, err := h.source.Load(r.Context(), req.Path)
	if err != nil {
		h.writeDatasetError(rw, r, req.Path, err)
		return
	}

	rw.Success(h.labeled(h.engine.RecommendDataset(r.Context(), *ds)))
}

func (h *Handler) writeDatasetError(rw *ResponseWriter, r *http.Request, path string, err error) {
	switch {
	case errors.Is(err, dataset.ErrPathOutsideRoot):
		rw.BadRequest("Dataset path is outside the dataset root")
	case errors.Is(err, dataset.ErrUnsupportedFormat):
		rw.BadRequest("Unsupported dataset format")
	case errors.Is(err, dataset.ErrNotFound):
		rw.NotFound("Dataset not found: " + path)
	case errors.Is(err, dataset.ErrSourceUnavailable):
		rw.ServiceUnavailable("Dataset source is temporarily unavailable")
	default:
		h.logger.Error().
			Err(err).
			Str("request_id", logging.RequestIDFromContext(r.Context())).
			Str("path", path).
			Msg("Dataset load failed")
		rw.InternalError("Failed to load dataset")
	}
}

func (h *Handler) labeled(rec recipe.Recommendation) RecommendResponse {
	recipes := make([]LabeledRecipe, len(rec.Recipes))
	for i, sr := range rec.Recipes {
		recipes[i] = LabeledRecipe{ScoredRecipe: sr, Label: h.labeler.Label(sr.Recipe)}
	}
	return RecommendResponse{
		Dataset:     rec.Dataset,
		RowCount:    rec.RowCount,
		Ingredients: rec.Ingredients,
		Recipes:     recipes,
		Best:        rec.Best,
		Report:      rec.Report,
	}
}
