// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/chartkitchen/internal/recipe"
	"github.com/tomtom215/chartkitchen/internal/validation"
)

// ColumnInput is one column of a request body.
type ColumnInput struct {
	Name         string `json:"name" validate:"required,min=1,max=256"`
	DeclaredType string `json:"declared_type" validate:"omitempty,oneof=numeric date categorical text"`
	Values       []any  `json:"values" validate:"max=10000"`
}

// ColumnsRequest is the body of the classify and validate endpoints.
type ColumnsRequest struct {
	Columns []ColumnInput `json:"columns" validate:"required,min=1,max=256,dive"`
}

// RecommendRequest is the body of POST /api/v1/recipes/recommend. RowCount is
// optional; when zero the sum of unique values stands in for dataset size.
type RecommendRequest struct {
	Columns  []ColumnInput `json:"columns" validate:"required,min=1,max=256,dive"`
	RowCount int           `json:"row_count" validate:"gte=0"`
}

// ScoreRequest is the body of POST /api/v1/recipes/score.
type ScoreRequest struct {
	RecipeID string        `json:"recipe_id" validate:"required,slug"`
	Columns  []ColumnInput `json:"columns" validate:"required,min=1,max=256,dive"`
}

// DatasetRequest is the body of POST /api/v1/datasets/recommend. Path is
// resolved against the configured dataset root.
type DatasetRequest struct {
	Path string `json:"path" validate:"required,max=1024"`
}

// LabeledRecipe is a ranked recipe with its display label.
type LabeledRecipe struct {
	recipe.ScoredRecipe
	Label string `json:"label"`
}

// RecommendResponse is the data of both recommend endpoints.
type RecommendResponse struct {
	Dataset     string                   `json:"dataset,omitempty"`
	RowCount    int                      `json:"row_count"`
	Ingredients []recipe.Ingredient      `json:"ingredients"`
	Recipes     []LabeledRecipe          `json:"recipes"`
	Best        *recipe.ScoredRecipe     `json:"best,omitempty"`
	Report      recipe.CombinationReport `json:"report"`
}

// ClassifyResponse is the data of POST /api/v1/recipes/classify.
type ClassifyResponse struct {
	Ingredients []recipe.Ingredient `json:"ingredients"`
}

// HealthResponse is the data of GET /api/v1/health.
type HealthResponse struct {
	Status          string `json:"status"`
	Recipes         int    `json:"recipes"`
	DatasetsEnabled bool   `json:"datasets_enabled"`
}

// decodeAndValidate decodes the request body into dst and runs the struct's
// validate tags. On failure it has already written the error response.
func decodeAndValidate(rw *ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "Request body too large")
			return false
		}
		rw.BadRequest("Failed to read request body")
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		rw.BadRequest("Request body is required")
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		rw.BadRequest("Invalid JSON request body")
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

func toColumns(in []ColumnInput) []recipe.Column {
	out := make([]recipe.Column, len(in))
	for i, c := range in {
		out[i] = recipe.Column{
			Name:         c.Name,
			DeclaredType: recipe.DeclaredType(c.DeclaredType),
			Values:       c.Values,
		}
	}
	return out
}
