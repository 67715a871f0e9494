// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import "fmt"

// ValidateIngredientCombination runs a quick sanity check over an ingredient
// set. It does not score; every issue comes with a suggestion.
func (e *Engine) ValidateIngredientCombination(ingredients []Ingredient) CombinationReport {
	return validateCombination(ingredients)
}

func validateCombination(ingredients []Ingredient) CombinationReport {
	report := CombinationReport{Issues: []string{}, Suggestions: []string{}}
	add := func(issue, suggestion string) {
		report.Issues = append(report.Issues, issue)
		report.Suggestions = append(report.Suggestions, suggestion)
	}

	p := newProfile(ingredients)

	if p.total < 2 {
		add("Need at least 2 ingredients for a meaningful chart",
			"Add a second column, such as a numeric measure to plot against")
	}

	if p.total > 2 && p.distinctTypes() == 1 {
		only := ingredients[0].Type
		add(fmt.Sprintf("All %d ingredients are %s", p.total, only),
			"Mix in a different column type to give the chart a second dimension")
	}

	if (p.has(Temporal) || p.has(Categorical)) && !p.has(Numeric) {
		add("No numeric ingredient to measure",
			"Add a numeric column so values can be plotted over time or across categories")
	}

	report.IsValid = len(report.Issues) == 0
	return report
}
