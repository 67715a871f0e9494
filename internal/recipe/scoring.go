// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import "math"

// Gate names reported in ScoreBreakdown.Gate.
const (
	GatePrimary   = "primary"
	GateSecondary = "secondary"
	GateHandler   = "handler"
)

// Scorer computes recipe confidence for an ingredient set. It is pure: the
// same recipe and ingredients always produce the same score.
type Scorer struct {
	cfg      ScoringConfig
	handlers handlerSet
}

// NewScorer creates a scorer. Handlers extend scoring for their chart type.
func NewScorer(cfg ScoringConfig, handlers ...ChartHandler) *Scorer {
	return &Scorer{cfg: cfg, handlers: newHandlerSet(handlers...)}
}

// Score returns the confidence in [0, 1] that r suits ingredients.
func (s *Scorer) Score(r Recipe, ingredients []Ingredient) float64 {
	return s.Explain(r, ingredients).Total
}

// Explain scores r against ingredients and reports every term.
func (s *Scorer) Explain(r Recipe, ingredients []Ingredient) ScoreBreakdown {
	p := newProfile(ingredients)
	req := r.Requirements

	b := ScoreBreakdown{RecipeID: r.ID, HasPrimary: presentCount(p, req.Primary) == len(req.Primary)}
	if !b.HasPrimary {
		b.Gate = GatePrimary
		return b
	}

	secondary := s.cfg.SecondaryBase
	if len(req.Secondary) > 0 {
		matches := presentCount(p, req.Secondary)
		if matches == 0 {
			return ScoreBreakdown{RecipeID: r.ID, HasPrimary: true, Gate: GateSecondary}
		}
		secondary += float64(matches) / float64(len(req.Secondary)) * s.cfg.SecondaryPartialWeight
	}

	var handler float64
	var issues []string
	if h, ok := s.handlers[r.ChartType]; ok {
		v := h.Validate(ingredients)
		if !v.IsValid {
			return ScoreBreakdown{RecipeID: r.ID, HasPrimary: true, Gate: GateHandler, Issues: v.Issues}
		}
		handler = v.Score
		issues = v.Issues
	}

	b.Primary = s.cfg.PrimaryBase
	b.Secondary = secondary
	b.Handler = handler
	b.Issues = issues
	b.Synergy = s.synergy(r.ChartType, p)
	b.Size = s.sizeBonus(r.ChartType, p.size)
	b.Complexity = s.complexityBonus(r.ChartType, p)
	b.Quality = s.qualityBonus(p.avgPotency)
	if penalty := s.overcrowding(r, p.total); penalty > 0 {
		b.Overcrowding = -penalty
	}

	b.Total = clamp01(b.Primary + b.Secondary + b.Handler + b.Synergy + b.Size +
		b.Complexity + b.Quality + b.Overcrowding)
	return b
}

// presentCount returns how many of wanted appear in the profile.
func presentCount(p profile, wanted []IngredientType) int {
	n := 0
	for _, t := range wanted {
		if p.has(t) {
			n++
		}
	}
	return n
}

func (s *Scorer) synergy(chart ChartType, p profile) float64 {
	var bonus float64
	for _, rule := range s.cfg.Synergies {
		if rule.appliesTo(chart, p) {
			bonus += rule.Bonus
		}
	}
	return bonus
}

func (s *Scorer) sizeBonus(chart ChartType, size int) float64 {
	table, ok := s.cfg.SizeBonuses[chart]
	if !ok {
		return 0
	}
	switch {
	case size < s.cfg.SmallSize:
		return table.Small
	case size < s.cfg.MediumSize:
		return table.Medium
	default:
		return table.Large
	}
}

func (s *Scorer) complexityBonus(chart ChartType, p profile) float64 {
	target, ok := s.cfg.ComplexityTargets[chart]
	if !ok {
		return 0
	}
	complexity := (p.avgPotency + float64(p.distinctTypes())/s.cfg.ComplexityTypeDivisor) / 2
	quality := 1 - math.Abs(complexity-target)
	switch {
	case quality > s.cfg.ComplexityHighMatch:
		return s.cfg.ComplexityHighBonus
	case quality > s.cfg.ComplexityMidMatch:
		return s.cfg.ComplexityMidBonus
	}
	return 0
}

func (s *Scorer) qualityBonus(avgPotency float64) float64 {
	switch {
	case avgPotency > s.cfg.QualityHigh:
		return s.cfg.QualityHighBonus
	case avgPotency > s.cfg.QualityMid:
		return s.cfg.QualityMidBonus
	case avgPotency < s.cfg.QualityLow:
		return -s.cfg.QualityLowPenalty
	}
	return 0
}

// overcrowding returns the penalty for ingredients beyond the recipe's
// declared shape.
func (s *Scorer) overcrowding(r Recipe, count int) float64 {
	optimal := len(r.Requirements.Primary) + len(r.Requirements.Secondary)
	excess := count - optimal
	if excess <= 0 {
		return 0
	}
	tolerance, ok := s.cfg.Tolerances[r.ChartType]
	if !ok {
		tolerance = s.cfg.DefaultTolerance
	}
	return math.Min(float64(excess)*tolerance, s.cfg.MaxOvercrowding)
}
