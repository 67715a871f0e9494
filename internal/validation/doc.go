// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

// Package validation validates API requests with go-playground/validator v10.
//
// A single validator instance is shared; it caches struct metadata and is safe
// for concurrent use. Errors name fields by their JSON path so clients can
// locate them in the request body:
//
//	type RecommendRequest struct {
//	    Columns []ColumnInput `json:"columns" validate:"required,min=1,max=256,dive"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Message: "columns[0].name is required"
//	}
//
// Besides the built-in tags, "slug" accepts lowercase identifiers joined by
// single hyphens, the shape of recipe IDs.
package validation
