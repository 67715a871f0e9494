// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

// General API information for swag. Regenerate the docs package with
//
//	swag init -g cmd/server/docs.go -o docs
//
// @title Chartkitchen API
// @version 1.0
// @description Classifies the columns of tabular data and recommends chart types for them.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/chartkitchen/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Service health
//
// @tag.name Recipes
// @tag.description Column classification, recipe ranking and score explanations
//
// @tag.name Datasets
// @tag.description Recommendations for dataset files sampled through DuckDB
package main
