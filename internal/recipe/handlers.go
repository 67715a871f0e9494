// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

// ChartHandler extends scoring and filtering for a chart type with unusual
// shape constraints.
//
// Validate runs during scoring after the secondary gate. An invalid result
// forces the recipe's confidence to zero; otherwise Score is added to it.
// ShouldFilter runs in the aggregator and removes the chart from results.
type ChartHandler interface {
	ChartType() ChartType
	Validate(ingredients []Ingredient) Validation
	ShouldFilter(ingredients []Ingredient, datasetSize int) bool
}

// handlerSet indexes handlers by chart type. The last handler registered for
// a chart type wins.
type handlerSet map[ChartType]ChartHandler

func newHandlerSet(handlers ...ChartHandler) handlerSet {
	set := make(handlerSet, len(handlers))
	for _, h := range handlers {
		if h != nil {
			set[h.ChartType()] = h
		}
	}
	return set
}
