package synthesis

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/oncodex/internal/domain"
	"github.com/kailas-cloud/oncodex/internal/usecase/retrieval"
)

// systemPrompt frames the model as a precision-oncology decision-support
// assistant and sets citation behavior.
const systemPrompt = `You are a Precision Oncology Intelligence Agent — an expert AI assistant
purpose-built for clinical and translational oncology decision support.

Your core competencies include molecular profiling, variant interpretation
(CIViC and OncoKB evidence levels, AMP/ASCO/CAP classification), therapy
selection (NCCN and ESMO guideline-concordant recommendations), clinical
trial matching, resistance mechanisms, biomarker assessment (TMB, MSI,
PD-L1, HRD), and outcomes monitoring (RECIST, survival endpoints, ctDNA
dynamics).

Behavioral instructions:
1. Cite evidence — reference source documents with clickable PubMed or
   ClinicalTrials.gov links wherever possible.
2. Think cross-functionally — connect genomic variants to downstream
   therapy options, trials, and resistance patterns.
3. Highlight resistance and contraindications proactively.
4. Reference NCCN, ESMO, or ASCO guidelines when making treatment
   recommendations.
5. Acknowledge uncertainty — clearly state evidence gaps, limited data,
   or situations requiring multidisciplinary tumor board review.`

// degradedAnswer is returned when no answer can be generated.
const degradedAnswer = "Unable to synthesize an answer — language model unavailable. " +
	"The retrieved evidence is attached for manual review."

// insufficientAnswer is returned when retrieval produced no usable evidence.
const insufficientAnswer = "Insufficient evidence was retrieved to answer this question " +
	"confidently. Consider rephrasing with specific gene symbols, cancer types, or therapies."

// buildPrompt assembles the user prompt from ranked evidence.
func buildPrompt(question string, evidence []domain.EvidenceItem) string {
	var b strings.Builder

	b.WriteString("=== Retrieved Evidence ===\n")
	for i, hit := range evidence {
		fmt.Fprintf(&b, "%d. %s [%s] (score %.3f) — %s\n   %s\n",
			i+1, hit.Label, hit.Relevance, hit.Score, hit.Citation, hit.Content)
	}

	b.WriteString("\n=== Question ===\n")
	b.WriteString(question)
	b.WriteString("\n\nUsing the evidence above, provide a thorough, well-cited answer. ")
	b.WriteString("Include clickable reference links. If evidence is insufficient, ")
	b.WriteString("state what is known and what remains uncertain.")
	return b.String()
}

// buildComparativePrompt assembles a structured comparison prompt from
// dual-entity retrieval results.
func buildComparativePrompt(question string, comp retrieval.ComparativeResult) string {
	var b strings.Builder

	writeSection := func(header string, hits []domain.EvidenceItem) {
		fmt.Fprintf(&b, "=== %s ===\n", header)
		for i, hit := range hits {
			fmt.Fprintf(&b, "%d. %s (score %.3f) — %s\n   %s\n",
				i+1, hit.Label, hit.Score, hit.Citation, hit.Content)
		}
		b.WriteString("\n")
	}

	writeSection("Evidence for: "+comp.EntityA, comp.HitsA)
	if comp.EntityB != "" {
		writeSection("Evidence for: "+comp.EntityB, comp.HitsB)
	}
	if len(comp.Shared) > 0 {
		writeSection("Shared / Head-to-Head Evidence", comp.Shared)
	}

	b.WriteString("=== Question ===\n")
	b.WriteString(question)
	b.WriteString("\n\nProvide a structured comparison addressing:\n")
	b.WriteString("1. Mechanism of action differences\n")
	b.WriteString("2. Efficacy data (ORR, PFS, OS where available)\n")
	b.WriteString("3. Safety / toxicity profile comparison\n")
	b.WriteString("4. Biomarker or patient-selection considerations\n")
	b.WriteString("5. Resistance mechanisms unique to each\n")
	b.WriteString("6. Guideline recommendations (NCCN/ESMO)\n")
	b.WriteString("7. Clinical trial evidence (cite specific trials)\n")
	b.WriteString("8. Summary recommendation with caveats\n\n")
	b.WriteString("Cite all evidence with clickable links. Acknowledge uncertainty ")
	b.WriteString("where head-to-head data is lacking.")
	return b.String()
}
