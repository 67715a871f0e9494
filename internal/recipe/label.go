// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import (
	"math/rand"
	"sync"
)

var labelPrefixes = []string{"Try", "Consider", "Explore", "Recommended:", "Great fit:", "Worth a look:"}

// Labeler produces friendly display labels for recipes. Labels are cosmetic
// and never affect confidence. A Labeler is safe for concurrent use.
type Labeler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLabeler creates a labeler drawing from src. A seeded source produces a
// reproducible label sequence.
func NewLabeler(src rand.Source) *Labeler {
	return &Labeler{rng: rand.New(src)} //nolint:gosec // cosmetic randomness
}

// Label returns a display label such as "Explore Trend Line".
func (l *Labeler) Label(r Recipe) string {
	l.mu.Lock()
	prefix := labelPrefixes[l.rng.Intn(len(labelPrefixes))]
	l.mu.Unlock()
	return prefix + " " + r.Name
}
