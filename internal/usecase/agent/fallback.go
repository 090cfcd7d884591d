package agent

import "github.com/kailas-cloud/oncodex/internal/domain"

// fallbackQueries generates broader queries for a retry pass. Extracted
// genes and cancer types drive generic broadened templates; with neither,
// the original question gets a domain qualifier.
func fallbackQueries(plan domain.SearchPlan) []string {
	var fallbacks []string

	for _, gene := range plan.Genes {
		fallbacks = append(fallbacks,
			gene+" oncology therapeutic implications",
			gene+" mutation clinical significance",
		)
	}

	for _, ct := range plan.CancerTypes {
		fallbacks = append(fallbacks, ct+" precision medicine current landscape")
	}

	if len(fallbacks) == 0 {
		fallbacks = append(fallbacks, plan.Question+" precision oncology")
	}

	return fallbacks
}
