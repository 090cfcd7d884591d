package retrieval

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/kailas-cloud/oncodex/internal/domain"
)

// ComparativeResult is the dual-entity retrieval output for comparative
// questions ("osimertinib vs gefitinib").
type ComparativeResult struct {
	EntityA string
	EntityB string
	HitsA   []domain.EvidenceItem
	HitsB   []domain.EvidenceItem
	// Shared holds hits whose record IDs appear on both sides,
	// taken from the A side.
	Shared []domain.EvidenceItem
}

var (
	vsRe   = regexp.MustCompile(`(?i)(.+?)\s+(?:vs\.?|versus)\s+(.+?)(?:\?|$)`)
	cmpRe  = regexp.MustCompile(`(?i)compare\s+(.+?)\s+and\s+(.+?)(?:\?|$)`)
	diffRe = regexp.MustCompile(`(?i)difference between\s+(.+?)\s+and\s+(.+?)(?:\?|$)`)
)

// ParseComparisonEntities extracts the two entities being compared.
// Handles "A vs B", "compare A and B", and "difference between A and B";
// when no pattern matches, the whole question is entity A and B is empty.
func ParseComparisonEntities(question string) (string, string) {
	for _, re := range []*regexp.Regexp{vsRe, cmpRe, diffRe} {
		if m := re.FindStringSubmatch(question); m != nil {
			return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		}
	}
	return question, ""
}

// RetrieveComparative retrieves evidence for each compared entity
// independently and intersects the two hit sets.
func (s *Service) RetrieveComparative(ctx context.Context, question string, base domain.Query) (ComparativeResult, error) {
	entityA, entityB := ParseComparisonEntities(question)

	queryA := base
	queryA.Text = entityA
	resultA, err := s.Retrieve(ctx, queryA, "")
	if err != nil {
		return ComparativeResult{}, fmt.Errorf("retrieve %q: %w", entityA, err)
	}

	comp := ComparativeResult{
		EntityA: entityA,
		EntityB: entityB,
		HitsA:   resultA.Items,
	}
	if entityB == "" {
		return comp, nil
	}

	queryB := base
	queryB.Text = entityB
	resultB, err := s.Retrieve(ctx, queryB, "")
	if err != nil {
		return ComparativeResult{}, fmt.Errorf("retrieve %q: %w", entityB, err)
	}
	comp.HitsB = resultB.Items

	idsB := make(map[string]struct{}, len(comp.HitsB))
	for _, h := range comp.HitsB {
		idsB[h.RecordID] = struct{}{}
	}
	for _, h := range comp.HitsA {
		if _, ok := idsB[h.RecordID]; ok {
			comp.Shared = append(comp.Shared, h)
		}
	}
	return comp, nil
}
