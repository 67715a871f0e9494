// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

/*
Package services adapts Chartkitchen components to suture.Service.

Each wrapper implements

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so suture can name it in events.

# Available Services

HTTPServerService runs an *http.Server, translating the blocking
ListenAndServe into Serve and draining connections with Shutdown when the
context is canceled.

PruneService periodically drops expired entries from a cache, such as the
dataset cache, until the context is canceled.
*/
package services
