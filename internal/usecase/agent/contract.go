package agent

import (
	"context"

	"github.com/kailas-cloud/oncodex/internal/domain"
	"github.com/kailas-cloud/oncodex/internal/usecase/evaluate"
)

// Planner derives a search plan from a question.
type Planner interface {
	Plan(question string) domain.SearchPlan
}

// Retriever runs one embedded fan-out pass and returns raw hits.
type Retriever interface {
	CrossCollectionSearch(ctx context.Context, query domain.Query) ([]domain.EvidenceItem, error)
}

// Evaluator rates accumulated evidence.
type Evaluator interface {
	Evaluate(items []domain.EvidenceItem) evaluate.Verdict
}
