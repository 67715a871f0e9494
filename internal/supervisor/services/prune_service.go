// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Pruner drops expired entries and reports how many it removed.
// *dataset.CachedSource satisfies it.
type Pruner interface {
	Prune() int
}

// PruneService calls Prune on a fixed interval.
type PruneService struct {
	pruner   Pruner
	interval time.Duration
	name     string
	logger   zerolog.Logger
}

// NewPruneService creates a prune service. interval defaults to one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPruneService(name string, pruner Pruner, interval time.Duration, logger zerolog.Logger) *PruneService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PruneService{
		pruner:   pruner,
		interval: interval,
		name:     name,
		logger:   logger.With().Str("service", name).Logger(),
	}
}

// Serve implements suture.Service.
func (p *PruneService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := p.pruner.Prune(); n > 0 {
				p.logger.Debug().Int("pruned", n).Msg("expired cache entries pruned")
			}
		}
	}
}

func (p *PruneService) String() string {
	return p.name
}
