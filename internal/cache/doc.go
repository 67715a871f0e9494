// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

/*
Package cache provides the in-memory structures shared by the recipe engine
and the dataset layer.

# TTL

TTL is a generic, thread-safe map whose entries expire after a fixed
duration. Expired entries are dropped lazily on Get and in bulk by Prune,
which the supervisor runs on an interval.

	c := cache.NewTTL[*recipe.Dataset](5 * time.Minute)
	c.Set(cache.GenerateKey("dataset", params), ds)
	if ds, ok := c.Get(key); ok {
	    // reuse the sample
	}

# KeywordMatcher

KeywordMatcher is an Aho-Corasick automaton that reports which keyword
groups occur anywhere in a string in one pass. The column classifier uses it
for name hints such as "lat", "geo" or "email".
*/
package cache
