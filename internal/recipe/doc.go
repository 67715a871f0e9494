// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

/*
Package recipe recommends chart types for tabular data.

Columns are classified into ingredients (temporal, numeric, categorical,
geographic, textual) by an ordered table of named rules. Each recipe in the
catalog declares the ingredient types it needs; the scorer turns a recipe and
an ingredient set into a confidence in [0, 1] and the aggregator ranks,
filters and deduplicates the catalog.

# Pipeline

	columns -> Classifier -> ingredients -> Scorer (+ChartHandlers) -> aggregator -> []ScoredRecipe

# Scoring

A recipe scores zero unless every primary type is present and, when it
declares secondary types, at least one of them. Past the gates the score is

	primary base + secondary base (+ partial secondary credit)
	+ handler score + synergy + data size bonus
	+ complexity match bonus + potency quality bonus
	- overcrowding penalty

clamped to [0, 1]. All weights live in Config.

# Usage

	engine, err := recipe.NewEngine(recipe.DefaultConfig(), logger)
	if err != nil {
		return err
	}
	ingredients := engine.AnalyzeIngredients(columns)
	ranked := engine.FindCompatibleRecipes(ingredients)

# Thread Safety

Engine, Classifier and Scorer hold no mutable state after construction.
Labeler guards its random source with a mutex.
*/
package recipe
