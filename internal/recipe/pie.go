// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import "fmt"

// PieHandler enforces the pie chart's one-dimension, one-measure shape and
// penalizes slice counts that are hard to read.
type PieHandler struct {
	cfg PieConfig
}

// NewPieHandler creates a pie chart handler.
func NewPieHandler(cfg PieConfig) *PieHandler {
	return &PieHandler{cfg: cfg}
}

// ChartType implements ChartHandler.
func (h *PieHandler) ChartType() ChartType {
	return ChartPie
}

// Validate implements ChartHandler.
func (h *PieHandler) Validate(ingredients []Ingredient) Validation {
	p := newProfile(ingredients)
	categorical := p.counts[Categorical]
	numeric := p.counts[Numeric]

	v := Validation{IsValid: true, Issues: []string{}}

	if categorical == 0 {
		v.IsValid = false
		v.Issues = append(v.Issues, "pie charts need a categorical column to form slices")
		return v
	}
	if categorical > 1 {
		v.Score -= h.cfg.MultiCategoricalPenalty
		v.Issues = append(v.Issues,
			fmt.Sprintf("%d categorical columns found; a pie chart shows only one", categorical))
	}
	if numeric == 0 {
		v.IsValid = false
		v.Issues = append(v.Issues, "pie charts need a numeric column to size slices")
		return v
	}

	if categorical == 1 && numeric == 1 {
		if p.total == 2 {
			v.Score += h.cfg.IdealShapeBonus
		} else {
			v.Score += h.cfg.ExtraShapeBonus
		}
	}

	card := p.maxCategoricalCardinality
	switch {
	case card > h.cfg.HighCardinality:
		v.Score -= h.cfg.HighCardinalityPenalty
		v.Issues = append(v.Issues,
			fmt.Sprintf("%d slices is too many to compare (more than %d)", card, h.cfg.HighCardinality))
	case card > h.cfg.ModerateCardinality:
		v.Score -= h.cfg.ModerateCardinalityPenalty
		v.Issues = append(v.Issues,
			fmt.Sprintf("%d slices is hard to read (more than %d)", card, h.cfg.ModerateCardinality))
	case card >= h.cfg.SweetSpotMin && card < h.cfg.ModerateCardinality:
		v.Score += h.cfg.SweetSpotBonus
	}

	return v
}

// ShouldFilter implements ChartHandler.
func (h *PieHandler) ShouldFilter(ingredients []Ingredient, datasetSize int) bool {
	v := h.Validate(ingredients)
	if !v.IsValid || len(v.Issues) > h.cfg.FilterMaxIssues {
		return true
	}
	if datasetSize < h.cfg.FilterMinDatasetSize {
		return true
	}
	return newProfile(ingredients).maxCategoricalCardinality > h.cfg.FilterMaxCardinality
}
