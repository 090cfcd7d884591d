// Package synthesis hands the merged evidence set to a language model and
// produces the natural-language answer. It is the degradation boundary:
// an unavailable or failing model yields a service-degraded answer, never
// an error to the API caller.
package synthesis

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/oncodex/internal/domain"
	"github.com/kailas-cloud/oncodex/internal/usecase/retrieval"
)

// ChatClient is the LLM contract.
type ChatClient interface {
	Chat(ctx context.Context, system, user string) (string, error)
	// ChatStream invokes fn for every incremental answer chunk.
	ChatStream(ctx context.Context, system, user string, fn func(delta string) error) error
}

// Response is the consolidated answer handed back to the caller.
type Response struct {
	Question string
	Answer   string
	Evidence domain.EvidenceSet
	Plan     domain.SearchPlan
}

// Service synthesizes answers from pre-retrieved evidence.
type Service struct {
	llm    ChatClient // nil = evidence-only mode
	logger *zap.Logger
}

// New creates a synthesis service. llm may be nil; synthesis then always
// returns the degraded answer alongside the evidence.
func New(llm ChatClient, logger *zap.Logger) *Service {
	return &Service{llm: llm, logger: logger}
}

// Synthesize produces an answer from the merged evidence and plan.
func (s *Service) Synthesize(ctx context.Context, question string, evidence domain.EvidenceSet, plan domain.SearchPlan) Response {
	resp := Response{
		Question: question,
		Evidence: evidence,
		Plan:     plan,
	}

	if len(evidence.Items) == 0 {
		resp.Answer = insufficientAnswer
		return resp
	}
	if s.llm == nil {
		resp.Answer = degradedAnswer
		return resp
	}

	answer, err := s.llm.Chat(ctx, systemPrompt, buildPrompt(question, evidence.Items))
	if err != nil {
		s.logger.Warn("synthesis failed", zap.Error(err))
		resp.Answer = degradedAnswer
		return resp
	}
	resp.Answer = answer
	return resp
}

// SynthesizeStream is the streaming variant of Synthesize. Evidence-only
// and degraded cases emit their message as a single chunk.
func (s *Service) SynthesizeStream(ctx context.Context, question string, evidence domain.EvidenceSet, fn func(delta string) error) error {
	if len(evidence.Items) == 0 {
		return fn(insufficientAnswer)
	}
	if s.llm == nil {
		return fn(degradedAnswer)
	}

	err := s.llm.ChatStream(ctx, systemPrompt, buildPrompt(question, evidence.Items), fn)
	if err != nil {
		s.logger.Warn("streaming synthesis failed", zap.Error(err))
		return fn(degradedAnswer)
	}
	return nil
}

// SynthesizeComparative produces a structured comparison answer from
// dual-entity retrieval results.
func (s *Service) SynthesizeComparative(ctx context.Context, question string, comp retrieval.ComparativeResult) Response {
	resp := Response{Question: question}

	if len(comp.HitsA) == 0 && len(comp.HitsB) == 0 {
		resp.Answer = insufficientAnswer
		return resp
	}
	if s.llm == nil {
		resp.Answer = degradedAnswer
		return resp
	}

	answer, err := s.llm.Chat(ctx, systemPrompt, buildComparativePrompt(question, comp))
	if err != nil {
		s.logger.Warn("comparative synthesis failed", zap.Error(err))
		resp.Answer = degradedAnswer
		return resp
	}
	resp.Answer = answer
	return resp
}
