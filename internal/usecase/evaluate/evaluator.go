// Package evaluate scores an accumulated evidence set as insufficient,
// partial, or sufficient, driving the agent's retry decisions.
package evaluate

import "github.com/kailas-cloud/oncodex/internal/domain"

// Verdict is the three-valued sufficiency judgment.
type Verdict string

const (
	Insufficient Verdict = "insufficient"
	Partial      Verdict = "partial"
	Sufficient   Verdict = "sufficient"
)

// Thresholds configure the sufficiency decision.
type Thresholds struct {
	MinSimilarity  float64 // raw-score floor below which a hit is discounted
	MinHits        int
	MinCollections int
}

// DefaultThresholds returns the production thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{MinSimilarity: 0.30, MinHits: 3, MinCollections: 2}
}

// Evaluator rates the adequacy of retrieved evidence using hit count,
// collection diversity, and raw similarity scores.
type Evaluator struct {
	t Thresholds
}

// New creates an evaluator.
func New(t Thresholds) *Evaluator {
	return &Evaluator{t: t}
}

// Evaluate classifies the evidence set. Items below the raw-score floor
// are discounted. Volume plus collection diversity alone qualify as
// sufficient; average score is not a gate.
func (ev *Evaluator) Evaluate(items []domain.EvidenceItem) Verdict {
	if len(items) == 0 {
		return Insufficient
	}

	hitCount := 0
	collections := make(map[string]struct{})
	for _, it := range items {
		if it.RawScore < ev.t.MinSimilarity {
			continue
		}
		hitCount++
		if it.Collection != "" {
			collections[it.Collection] = struct{}{}
		}
	}

	if hitCount >= ev.t.MinHits && len(collections) >= ev.t.MinCollections {
		return Sufficient
	}
	if hitCount > 0 {
		return Partial
	}
	return Insufficient
}
