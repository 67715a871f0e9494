// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/chartkitchen/internal/logging"
	"github.com/tomtom215/chartkitchen/internal/metrics"
	"github.com/tomtom215/chartkitchen/internal/recipe"
)

// breakerName labels the dataset breaker in metrics.
const breakerName = "dataset-source"

// BreakerSource wraps a Source with a circuit breaker. Caller errors
// (bad path, unsupported format, missing file) do not count as failures.
//
// The breaker runs on wall-clock time via sony/gobreaker.
type BreakerSource struct {
	next Source
	cb   *gobreaker.CircuitBreaker[*recipe.Dataset]
	name string
}

// NewBreakerSource wraps next. The breaker opens after cfg.BreakerMaxFailures
// consecutive failures and probes again after cfg.BreakerTimeout.
func NewBreakerSource(next Source, cfg Config) *BreakerSource {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	timeout := cfg.BreakerTimeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[*recipe.Dataset](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= maxFailures
			if trip {
				logging.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening dataset circuit")
			}
			return trip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] Dataset state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: func(err error) bool {
			return err == nil || isCallerError(err)
		},
	})

	return &BreakerSource{next: next, cb: cb, name: breakerName}
}

// Load implements Source.
func (b *BreakerSource) Load(ctx context.Context, path string) (*recipe.Dataset, error) {
	ds, err := b.cb.Execute(func() (*recipe.Dataset, error) {
		return b.next.Load(ctx, path)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		if isCallerError(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
			return nil, err
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return ds, nil
}

// State returns the breaker state name.
func (b *BreakerSource) State() string {
	return stateToString(b.cb.State())
}

func isCallerError(err error) bool {
	return errors.Is(err, ErrPathOutsideRoot) || errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
