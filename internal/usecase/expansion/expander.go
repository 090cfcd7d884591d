// Package expansion maps recognized oncology keywords to related terms,
// used to build a single broadened query embedding per question.
package expansion

import (
	"sort"
	"strings"
)

// maxTerms caps the number of expansion terms returned per query.
const maxTerms = 10

// allMaps in priority order: cancer types first, genomics last.
var allMaps = []map[string][]string{
	cancerTypeTerms,
	geneTerms,
	therapyTerms,
	biomarkerTerms,
	pathwayTerms,
	resistanceTerms,
	clinicalTerms,
	trialTerms,
	immunotherapyTerms,
	surgeryRadiationTerms,
	toxicityTerms,
	genomicsTerms,
}

// Expander returns related terms for recognized domain keywords.
// The zero value is not usable; construct with New.
type Expander struct {
	maps []orderedMap
}

type orderedMap struct {
	keys  []string
	terms map[string][]string
}

// New builds an expander over the built-in term maps.
func New() *Expander {
	e := &Expander{maps: make([]orderedMap, 0, len(allMaps))}
	for _, m := range allMaps {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		// Deterministic key order within each map.
		sort.Strings(keys)
		e.maps = append(e.maps, orderedMap{keys: keys, terms: m})
	}
	return e
}

// Expand returns up to 10 unique related terms for the query, matching
// every map key case-insensitively as a substring. First-match order is
// preserved; duplicates are dropped case-insensitively.
func (e *Expander) Expand(query string) []string {
	queryLower := strings.ToLower(query)
	seen := make(map[string]struct{})
	var out []string

	for _, m := range e.maps {
		for _, key := range m.keys {
			if !strings.Contains(queryLower, strings.ToLower(key)) {
				continue
			}
			for _, term := range m.terms[key] {
				lower := strings.ToLower(term)
				if _, dup := seen[lower]; dup {
					continue
				}
				seen[lower] = struct{}{}
				out = append(out, term)
				if len(out) >= maxTerms {
					return out
				}
			}
		}
	}
	return out
}
