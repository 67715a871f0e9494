// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import (
	"math"
	"slices"
	"strings"
)

// Classifier rule names, in evaluation order.
const (
	RuleGeoKeyword        = "geo_keyword"
	RuleGeoAmbiguous      = "geo_ambiguous"
	RuleGeoValueHint      = "geo_value_hint"
	RuleTemporalCanonical = "temporal_canonical"
	RuleTemporalDeclared  = "temporal_declared"
	RuleTemporalName      = "temporal_name"
	RuleTemporalValues    = "temporal_values"
	RuleFallbackDeclared  = "fallback_declared"
)

// ruleInput is everything a rule may inspect about one column.
type ruleInput struct {
	name     nameParts
	declared DeclaredType
	sample   sample
}

// classifierRule decides a column's type or passes. tags are added to the
// ingredient's properties when the rule fires.
type classifierRule struct {
	name  string
	match func(cfg *ClassifierConfig, in ruleInput) (t IngredientType, tags []string, ok bool)
}

// classifierRules is the ordered rule table. The first rule that matches
// decides the type; the last rule always matches.
var classifierRules = []classifierRule{
	{RuleGeoKeyword, matchGeoKeyword},
	{RuleGeoAmbiguous, matchGeoAmbiguous},
	{RuleGeoValueHint, matchGeoValueHint},
	{RuleTemporalCanonical, matchTemporalCanonical},
	{RuleTemporalDeclared, matchTemporalDeclared},
	{RuleTemporalName, matchTemporalName},
	{RuleTemporalValues, matchTemporalValues},
	{RuleFallbackDeclared, matchDeclaredFallback},
}

// RuleNames returns the classifier rule names in evaluation order.
func RuleNames() []string {
	names := make([]string, len(classifierRules))
	for i, r := range classifierRules {
		names[i] = r.name
	}
	return names
}

// Classifier turns raw columns into ingredients. It holds no mutable state
// and is safe for concurrent use.
type Classifier struct {
	cfg ClassifierConfig
}

// NewClassifier creates a classifier with the given thresholds.
func NewClassifier(cfg ClassifierConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify derives an ingredient from a column. It never fails: sparse or
// malformed columns degrade to the least specific type their declared type
// allows.
func (c *Classifier) Classify(col Column) Ingredient {
	in := ruleInput{
		name:     splitName(col.Name),
		declared: normalizeDeclared(col.DeclaredType),
		sample:   newSample(col.Values),
	}

	t, rule, tags := c.decide(in)

	props := make([]string, 0, len(tags)+3)
	props = append(props, rule, cardinalityClass(in.sample.distinct, in.sample.total()))
	if in.sample.total() == 0 {
		props = append(props, propertySparse)
	}
	props = append(props, tags...)
	slices.Sort(props)

	return Ingredient{
		SourceColumn:     col.Name,
		Type:             t,
		Potency:          c.potency(in),
		UniqueValueCount: in.sample.distinct,
		Properties:       slices.Compact(props),
		Rule:             rule,
	}
}

// AnalyzeIngredients classifies columns in order.
func (c *Classifier) AnalyzeIngredients(columns []Column) []Ingredient {
	out := make([]Ingredient, 0, len(columns))
	for _, col := range columns {
		out = append(out, c.Classify(col))
	}
	return out
}

func (c *Classifier) decide(in ruleInput) (IngredientType, string, []string) {
	for _, r := range classifierRules {
		if t, tags, ok := r.match(&c.cfg, in); ok {
			return t, r.name, tags
		}
	}
	return Textual, RuleFallbackDeclared, nil
}

func (c *Classifier) potency(in ruleInput) float64 {
	p := c.cfg.PotencyBase + math.Min(c.cfg.PotencyDiversityCap, in.sample.uniqueRatio()*c.cfg.PotencyDiversityWeight)
	if in.declared == DeclaredDate || in.declared == DeclaredNumeric {
		p += c.cfg.PotencyTypedBonus
	}
	return clamp01(p)
}

func normalizeDeclared(d DeclaredType) DeclaredType {
	return DeclaredType(strings.ToLower(strings.TrimSpace(string(d))))
}

func matchGeoKeyword(_ *ClassifierConfig, in ruleInput) (IngredientType, []string, bool) {
	if !in.name.anyIn(geoKeywords) {
		return "", nil, false
	}
	return Geographic, geoNameTags(in.name), true
}

func matchGeoAmbiguous(_ *ClassifierConfig, in ruleInput) (IngredientType, []string, bool) {
	if !in.name.anyIn(ambiguousGeoTerms) || in.name.anyIn(nonGeoContext) {
		return "", nil, false
	}
	if in.name.anyIn(geoQualifiers) {
		return Geographic, []string{"geo_qualified"}, true
	}
	if canonicalGeoName.MatchString(in.name.normalized) {
		return Geographic, []string{"geo_canonical_name"}, true
	}
	return "", nil, false
}

func matchGeoValueHint(cfg *ClassifierConfig, in ruleInput) (IngredientType, []string, bool) {
	if in.declared != DeclaredNumeric || in.sample.total() < cfg.GeoMinValues || !in.name.hasGeoHint() {
		return "", nil, false
	}

	switch {
	case in.name.anyIn(latitudeNames) && in.sample.allNumbersIn(-90, 90, false):
		return Geographic, []string{"latitude"}, true
	case in.name.anyIn(longitudeNames) && in.sample.allNumbersIn(-180, 180, false):
		return Geographic, []string{"longitude"}, true
	case in.sample.matchRatio(postalCodeValues, cfg.SampleSize) > cfg.ValueMatchRatio:
		return Geographic, []string{"postal_code"}, true
	case in.name.anyIn(countryNames) &&
		in.sample.matchRatio(countryCodeValues, cfg.SampleSize) > cfg.ValueMatchRatio:
		return Geographic, []string{"country_code"}, true
	}
	return "", nil, false
}

func matchTemporalCanonical(_ *ClassifierConfig, in ruleInput) (IngredientType, []string, bool) {
	if _, ok := canonicalTemporalNames[in.name.normalized]; !ok {
		return "", nil, false
	}
	return Temporal, []string{propertyMaxConfident}, true
}

func matchTemporalDeclared(_ *ClassifierConfig, in ruleInput) (IngredientType, []string, bool) {
	return Temporal, nil, in.declared == DeclaredDate
}

func matchTemporalName(_ *ClassifierConfig, in ruleInput) (IngredientType, []string, bool) {
	n := in.name.normalized
	if !matchesAny(temporalInclusion, n) || matchesAny(temporalExclusion, n) {
		return "", nil, false
	}
	return Temporal, []string{"temporal_name"}, true
}

// matchTemporalValues samples values for date strings, quarter codes and
// years. Names matching an exclusion pattern never reach temporal here.
func matchTemporalValues(cfg *ClassifierConfig, in ruleInput) (IngredientType, []string, bool) {
	if in.sample.total() == 0 || matchesAny(temporalExclusion, in.name.normalized) {
		return "", nil, false
	}
	if in.sample.matchRatio(temporalValuePatterns, cfg.SampleSize) <= cfg.ValueMatchRatio {
		return "", nil, false
	}
	return Temporal, []string{"temporal_values"}, true
}

func matchDeclaredFallback(cfg *ClassifierConfig, in ruleInput) (IngredientType, []string, bool) {
	s := in.sample
	switch in.declared {
	case DeclaredDate:
		return Temporal, nil, true

	case DeclaredNumeric:
		if in.name.anyIn(postalNames) && s.uniqueRatio() > cfg.PostalUniqueRatio {
			return Geographic, []string{"postal_code"}, true
		}
		if s.allNumbersIn(cfg.YearMin, cfg.YearMax, true) {
			return Temporal, []string{"year"}, true
		}
		if s.allNumbersIn(cfg.EpochMin, cfg.EpochMax, false) {
			return Temporal, []string{"epoch"}, true
		}
		return Numeric, nil, true

	case DeclaredCategorical:
		return Categorical, nil, true

	case DeclaredText:
		if s.total() == 0 {
			return Textual, nil, true
		}
		ratio := s.uniqueRatio()
		if s.distinct <= cfg.CategoricalMaxUnique && ratio < cfg.CategoricalMaxRatio {
			return Categorical, []string{"low_cardinality_text"}, true
		}
		if s.distinct <= cfg.CategoricalPatternMaxUnique && ratio < cfg.CategoricalPatternMaxRatio &&
			s.matchRatio(categoricalValuePatterns, 0) > cfg.ValueMatchRatio {
			return Categorical, []string{"categorical_pattern"}, true
		}
		return Textual, nil, true
	}

	return Textual, nil, true
}

func geoNameTags(name nameParts) []string {
	switch {
	case name.anyIn(latitudeNames):
		return []string{"latitude"}
	case name.anyIn(longitudeNames):
		return []string{"longitude"}
	case name.anyIn(postalNames):
		return []string{"postal_code"}
	case name.anyIn(countryNames):
		return []string{"country_code"}
	}
	return nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
