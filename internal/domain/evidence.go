package domain

import "time"

// Relevance is a coarse tier derived from the weighted score.
type Relevance string

const (
	RelevanceHigh   Relevance = "high"
	RelevanceMedium Relevance = "medium"
	RelevanceLow    Relevance = "low"
)

// Weighted-score thresholds for relevance tiers.
const (
	relevanceHighMin   = 0.85
	relevanceMediumMin = 0.65
)

// RelevanceFor classifies a weighted score into a relevance tier.
func RelevanceFor(weightedScore float64) Relevance {
	switch {
	case weightedScore >= relevanceHighMin:
		return RelevanceHigh
	case weightedScore >= relevanceMediumMin:
		return RelevanceMedium
	default:
		return RelevanceLow
	}
}

// EvidenceItem is one retrieval hit, normalized across collection schemas
// and annotated with provenance. Not mutated after scoring.
type EvidenceItem struct {
	Collection string
	RecordID   string
	RawScore   float64
	Score      float64 // RawScore * collection weight
	Label      string
	Citation   string
	Relevance  Relevance
	Content    string
	Metadata   map[string]string
}

// EvidenceSet is the merged, ranked output of one retrieval pass.
// Items are sorted descending by weighted score with no duplicate record IDs.
type EvidenceSet struct {
	Query               string
	Items               []EvidenceItem
	CollectionsSearched int
	Elapsed             time.Duration
}
