// Package vocabulary builds the relevance vocabulary used to decide
// whether a candidate question or keyword is on-topic for the business
// being analyzed.
package vocabulary

import (
	"sort"
	"strings"
)

// Vocabulary is the resolved relevance keyword set for one analysis run.
// Built once, read-only afterward.
type Vocabulary struct {
	industry Industry
	resolved bool
	terms    map[string]struct{}
	ordered  []string
}

// Resolve builds the vocabulary for an optional industry string.
//
// Resolution is a three-step: exact code match, then substring match in
// either direction against the known codes (declaration order, first hit
// wins), then the union of every industry's keywords. The union fallback
// trades precision for recall so thin metadata never zeroes out a run.
func Resolve(industry string) Vocabulary {
	v := Vocabulary{terms: make(map[string]struct{})}
	for _, kw := range universalKeywords {
		v.add(kw)
	}

	code, ok := resolveIndustry(industry)
	if ok {
		v.industry = code
		v.resolved = true
		for _, kw := range industryKeywords[code] {
			v.add(kw)
		}
		return v
	}

	for _, ind := range industryOrder {
		for _, kw := range industryKeywords[ind] {
			v.add(kw)
		}
	}
	return v
}

func resolveIndustry(industry string) (Industry, bool) {
	normalized := strings.ToLower(strings.TrimSpace(industry))
	if normalized == "" {
		return "", false
	}

	if _, ok := industryKeywords[Industry(normalized)]; ok {
		return Industry(normalized), true
	}

	// "dental clinic" resolves to "dental", "auto" to "automotive".
	for _, ind := range industryOrder {
		code := string(ind)
		if strings.Contains(normalized, code) || strings.Contains(code, normalized) {
			return ind, true
		}
	}

	return "", false
}

// Industry reports the resolved industry code and whether resolution
// found one (false means the union fallback was used).
func (v Vocabulary) Industry() (Industry, bool) {
	return v.industry, v.resolved
}

// Contains reports whether text holds at least one vocabulary term as a
// case-insensitive substring.
func (v Vocabulary) Contains(text string) bool {
	lower := strings.ToLower(text)
	for term := range v.terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// MatchAll returns every distinct vocabulary term found in text, in a
// stable (sorted) order. One hit per term regardless of occurrences;
// multiplicity is the aggregator's concern.
func (v Vocabulary) MatchAll(text string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, term := range v.ordered {
		if strings.Contains(lower, term) {
			hits = append(hits, term)
		}
	}
	return hits
}

// Len reports the number of distinct terms.
func (v Vocabulary) Len() int { return len(v.terms) }

func (v *Vocabulary) add(term string) {
	term = strings.ToLower(term)
	if _, seen := v.terms[term]; seen {
		return
	}
	v.terms[term] = struct{}{}

	i := sort.SearchStrings(v.ordered, term)
	v.ordered = append(v.ordered, "")
	copy(v.ordered[i+1:], v.ordered[i:])
	v.ordered[i] = term
}

// KnownIndustries lists every industry code in declaration order.
func KnownIndustries() []Industry {
	out := make([]Industry, len(industryOrder))
	copy(out, industryOrder)
	return out
}

// UniversalKeywords returns the domain-independent keyword list. Used by
// the classify table validation.
func UniversalKeywords() []string {
	out := make([]string, len(universalKeywords))
	copy(out, universalKeywords)
	return out
}
