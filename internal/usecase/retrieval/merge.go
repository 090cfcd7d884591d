package retrieval

import (
	"sort"

	"github.com/kailas-cloud/oncodex/internal/domain"
)

// maxEvidence caps the merged evidence list handed to synthesis.
const maxEvidence = 30

// MergeAndRank deduplicates by record ID (first occurrence wins), sorts
// descending by weighted score, and truncates to maxEvidence. Pure and
// idempotent; ties keep input order via the stable sort.
func MergeAndRank(items []domain.EvidenceItem) []domain.EvidenceItem {
	seen := make(map[string]struct{}, len(items))
	unique := make([]domain.EvidenceItem, 0, len(items))
	for _, it := range items {
		if _, dup := seen[it.RecordID]; dup {
			continue
		}
		seen[it.RecordID] = struct{}{}
		unique = append(unique, it)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Score > unique[j].Score
	})

	if len(unique) > maxEvidence {
		unique = unique[:maxEvidence]
	}
	return unique
}
