package retrieval

import (
	"fmt"
	"strings"
)

// FormatCitation generates a citation string for a record. Recognized
// identifier patterns produce clickable markdown references:
//
//   - "PMID:<n>" links to pubmed.ncbi.nlm.nih.gov
//   - "NCT<n>" links to clinicaltrials.gov
//
// anything else falls back to a bracketed label+id reference.
func FormatCitation(label, recordID string) string {
	if pmid, ok := strings.CutPrefix(recordID, "PMID:"); ok {
		return fmt.Sprintf("[PubMed %s](https://pubmed.ncbi.nlm.nih.gov/%s/)", pmid, pmid)
	}

	if strings.HasPrefix(strings.ToUpper(recordID), "NCT") {
		nct := strings.ToUpper(recordID)
		return fmt.Sprintf("[%s](https://clinicaltrials.gov/study/%s)", nct, nct)
	}

	return fmt.Sprintf("[%s: %s]", label, recordID)
}
