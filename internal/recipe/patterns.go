// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package recipe

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/tomtom215/chartkitchen/internal/cache"
)

// Keyword group fed to the substring matcher.
const groupGeoHint = "geo_hint"

// Exact-token sets.
var (
	geoKeywords = wordSet(
		"lat", "lng", "lon", "latitude", "longitude",
		"postal_code", "zip_code", "country_code", "geohash", "geo_point", "coordinates",
	)

	ambiguousGeoTerms = wordSet(
		"state", "location", "address", "city", "region", "country",
		"county", "province", "district", "territory", "place",
	)

	nonGeoContext = wordSet(
		"email", "ip", "order", "session", "status", "payment", "account", "device",
		"machine", "server", "workflow", "process", "file", "url", "web", "memory",
	)

	geoQualifiers = wordSet(
		"shipping", "billing", "customer", "warehouse", "store", "office", "home",
		"delivery", "origin", "destination", "branch", "mailing", "residence", "headquarters",
	)

	canonicalTemporalNames = wordSet(
		"date", "datetime", "timestamp", "time", "created_at", "updated_at", "modified_at",
		"deleted_at", "published_at", "event_time", "event_date", "dt", "ts",
		"year", "month", "day", "week", "quarter", "period",
	)

	// Short words like "loc" or "lat" only count as whole tokens so that
	// velocity, relative and balloon stay out of the geographic rules.
	geoHintTokens  = wordSet("loc", "location", "map", "pos", "position")
	latitudeNames  = wordSet("lat", "latitude", "north", "northing")
	longitudeNames = wordSet("lon", "lng", "long", "longitude", "east", "easting")
	postalNames    = wordSet(
		"zip", "zipcode", "postal", "postcode", "plz", "fips", "geoid",
		"zip_code", "postal_code", "geo_id",
	)
	countryNames = wordSet("country", "iso", "nation")
)

// nameMatcher finds hint words anywhere in a normalized column name, so
// geocoords and gpsnorthing both carry the hint.
var nameMatcher = cache.NewKeywordMatcher(map[string][]string{
	groupGeoHint: {"coord", "geo", "gps"},
})

// hasGeoHint reports whether a name carries a coordinate hint either as a
// substring (coord, geo, gps) or as a whole token (loc, map, position).
func (p nameParts) hasGeoHint() bool {
	return nameMatcher.Contains(p.normalized, groupGeoHint) || p.anyIn(geoHintTokens)
}

// Name regexes. All run against normalized names.
var (
	canonicalGeoName = regexp.MustCompile(
		`^((street_)?address(_line)?(_?[0-9])?|city|town|city_name|state|state_name|state_code|` +
			`province|country|country_name|nation|region|region_name|location|location_name|` +
			`county|district|territory|place|place_name)$`)

	temporalInclusion = []*regexp.Regexp{
		regexp.MustCompile(`(^|_)(year|yr|month|day|week|quarter|qtr|hour)(_|$)`),
		regexp.MustCompile(`_(date|time)$`),
		regexp.MustCompile(`^(date|time)_`),
		regexp.MustCompile(`(^|_)(datetime|timestamp)(_|$)`),
	}

	temporalExclusion = []*regexp.Regexp{
		// financial
		regexp.MustCompile(`(^|_)(spend|spent|cost|costs|price|prices|revenue|amount|budget|sales|profit|income|expense|expenses|fee|fees)(_|$)`),
		// aggregation
		regexp.MustCompile(`(^|_)(count|cnt|total|sum|avg|average|mean|median|min|max|rate|ratio|pct|percent)(_|$)`),
		// identifier
		regexp.MustCompile(`(^|_)(id|code|number|num|no|key|uuid)(_|$)`),
	}
)

// Value regexes.
var (
	temporalValuePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}([T ]\d{1,2}:\d{2}(:\d{2}(\.\d+)?)?(Z|[+-]\d{2}:?\d{2})?)?$`),
		regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}$`),
		regexp.MustCompile(`^\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}$`),
		regexp.MustCompile(`^\d{4}-\d{2}$`),
		regexp.MustCompile(`(?i)^(jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|june?|july?|aug(ust)?|sep(t(ember)?)?|oct(ober)?|nov(ember)?|dec(ember)?)\.?(\s+\d{1,2}(st|nd|rd|th)?,?)?(\s+\d{2,4})?$`),
		// quarter codes
		regexp.MustCompile(`(?i)^(q[1-4]([ /-]?(\d{2}|\d{4}))?|\d{4}[ /-]?q[1-4])$`),
		// bare years
		regexp.MustCompile(`^(1[89]|20)\d{2}$`),
	}

	categoricalValuePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(yes|no|y|n|true|false|t|f)$`),
		regexp.MustCompile(`(?i)^(active|inactive|pending|enabled|disabled|open|closed|approved|rejected|complete|completed|cancelled|canceled|new|draft)$`),
		regexp.MustCompile(`(?i)^(low|medium|high|critical|none)$`),
		// short uppercase codes
		regexp.MustCompile(`^[A-Z][A-Z0-9_-]{0,4}$`),
	}

	// US ZIP, Canadian and UK postcodes
	postalCodeValues = []*regexp.Regexp{
		regexp.MustCompile(`^(\d{5}(-\d{4})?|[A-Z]\d[A-Z] ?\d[A-Z]\d|[A-Z]{1,2}\d[A-Z\d]? ?\d[A-Z]{2})$`),
	}

	countryCodeValues = []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2,3}$`)}
)

// Cardinality classes used as ingredient properties.
const (
	cardinalityEmpty     = "empty"
	cardinalityUnique    = "unique"
	cardinalityNear      = "near_unique"
	cardinalityEnumLike  = "enum_like"
	cardinalityLow       = "low_cardinality"
	cardinalityHigh      = "high_cardinality"
	enumLikeMaxDistinct  = 20
	lowCardinalityMax    = 200
	nearUniqueMinRatio   = 0.9
	propertySparse       = "sparse"
	propertyMaxConfident = "max_confidence"
)

// cardinalityClass grades distinct/total counts.
func cardinalityClass(distinct, total int) string {
	switch {
	case total == 0:
		return cardinalityEmpty
	case distinct == total:
		return cardinalityUnique
	case float64(distinct)/float64(total) >= nearUniqueMinRatio:
		return cardinalityNear
	case distinct <= enumLikeMaxDistinct:
		return cardinalityEnumLike
	case distinct <= lowCardinalityMax:
		return cardinalityLow
	default:
		return cardinalityHigh
	}
}

// normalizeName lower-cases a column name, splits camelCase and collapses
// every run of non-alphanumeric characters into a single underscore.
//
//	"orderDate"      -> "order_date"
//	"Shipping City"  -> "shipping_city"
//	"HTTPStatusCode" -> "http_status_code"
func normalizeName(name string) string {
	runes := []rune(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(runes) + 4)

	pendingSep := false
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingSep = b.Len() > 0
			continue
		}
		if unicode.IsUpper(r) && i > 0 && b.Len() > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				pendingSep = true
			}
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// nameParts holds a normalized name with its tokens and adjacent-token bigrams.
type nameParts struct {
	normalized string
	tokens     []string
	bigrams    []string
}

func splitName(name string) nameParts {
	n := normalizeName(name)
	p := nameParts{normalized: n}
	if n == "" {
		return p
	}
	p.tokens = strings.Split(n, "_")
	for i := 0; i+1 < len(p.tokens); i++ {
		p.bigrams = append(p.bigrams, p.tokens[i]+"_"+p.tokens[i+1])
	}
	return p
}

// anyIn reports whether a token or bigram is in set.
func (p nameParts) anyIn(set map[string]struct{}) bool {
	for _, t := range p.tokens {
		if _, ok := set[t]; ok {
			return true
		}
	}
	for _, b := range p.bigrams {
		if _, ok := set[b]; ok {
			return true
		}
	}
	return false
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// valueString renders a sampled value for regex matching. ok is false for nil.
func valueString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(x)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case bool:
		return strconv.FormatBool(x), true
	case time.Time:
		return x.Format(time.RFC3339), true
	default:
		return fmt.Sprint(x), true
	}
}

// valueFloat converts a sampled value to a number. Numeric strings count.
func valueFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, !math.IsNaN(x) && !math.IsInf(x, 0)
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return 0, false
	}
}

// sample is the non-null portion of a column's values in string and numeric form.
type sample struct {
	strings []string
	numbers []float64
	// numeric is true when every non-null value converts to a number.
	numeric bool
	distinct int
}

func newSample(values []any) sample {
	s := sample{numeric: true}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		str, ok := valueString(v)
		if !ok {
			continue
		}
		s.strings = append(s.strings, str)
		seen[str] = struct{}{}
		if f, ok := valueFloat(v); ok {
			s.numbers = append(s.numbers, f)
		} else {
			s.numeric = false
		}
	}
	s.distinct = len(seen)
	if len(s.strings) == 0 {
		s.numeric = false
	}
	return s
}

func (s sample) total() int {
	return len(s.strings)
}

func (s sample) uniqueRatio() float64 {
	if len(s.strings) == 0 {
		return 0
	}
	return float64(s.distinct) / float64(len(s.strings))
}

// allNumbersIn reports whether the sample is non-empty, fully numeric and
// every value lies in [lo, hi]. When integers is set every value must also
// be whole.
func (s sample) allNumbersIn(lo, hi float64, integers bool) bool {
	if !s.numeric || len(s.numbers) == 0 {
		return false
	}
	for _, f := range s.numbers {
		if f < lo || f > hi {
			return false
		}
		if integers && f != math.Trunc(f) {
			return false
		}
	}
	return true
}

// matchRatio returns the fraction of the first limit values matching any
// pattern. limit <= 0 means all values.
func (s sample) matchRatio(patterns []*regexp.Regexp, limit int) float64 {
	values := s.strings
	if limit > 0 && len(values) > limit {
		values = values[:limit]
	}
	if len(values) == 0 {
		return 0
	}
	hits := 0
	for _, v := range values {
		if matchesAny(patterns, v) {
			hits++
		}
	}
	return float64(hits) / float64(len(values))
}
