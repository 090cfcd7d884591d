// Package agent runs the adaptive retrieval loop: plan once, fan the
// question and its sub-questions out across collections, evaluate
// sufficiency, and broaden the search on insufficiency until the retry
// budget is spent.
package agent

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/oncodex/internal/domain"
	"github.com/kailas-cloud/oncodex/internal/metrics"
	"github.com/kailas-cloud/oncodex/internal/usecase/evaluate"
	"github.com/kailas-cloud/oncodex/internal/usecase/retrieval"
)

// Options tune the loop.
type Options struct {
	MaxRetries int // search-broadening retries after the first pass, default 2
}

func (o *Options) applyDefaults() {
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = 2
	}
}

// RunOptions are per-run search parameters.
type RunOptions struct {
	TopK        int
	Collections []string // restrict to these collections, nil = all
	YearMin     int
	YearMax     int
}

// Outcome is the loop's terminal state: merged evidence plus the plan,
// ready for hand-off to synthesis.
type Outcome struct {
	RunID    string
	Plan     domain.SearchPlan
	Evidence []domain.EvidenceItem
	Verdict  evaluate.Verdict
	Attempts int
	Elapsed  time.Duration
}

// Service is the adaptive retrieval orchestrator.
type Service struct {
	planner   Planner
	retriever Retriever
	eval      Evaluator
	opts      Options
	logger    *zap.Logger
}

// New creates an agent service.
func New(planner Planner, retriever Retriever, eval Evaluator, opts Options, logger *zap.Logger) *Service {
	opts.applyDefaults()
	return &Service{
		planner:   planner,
		retriever: retriever,
		eval:      eval,
		opts:      opts,
		logger:    logger,
	}
}

// Run executes the plan → search → evaluate → broaden loop. It never
// fails: per-collection and per-query-variant errors are absorbed below,
// and a context deadline falls through to the merged evidence gathered so
// far. Worst case the outcome carries an empty, insufficient evidence
// list after exhausting retries.
func (s *Service) Run(ctx context.Context, question string, opts RunOptions) Outcome {
	start := time.Now()
	runID := uuid.NewString()
	logger := s.logger.With(zap.String("run_id", runID))

	plan := s.planner.Plan(question)
	logger.Info("search plan",
		zap.String("strategy", string(plan.Strategy)),
		zap.Strings("genes", plan.Genes),
		zap.Strings("cancer_types", plan.CancerTypes),
		zap.Int("sub_questions", len(plan.SubQuestions)),
	)

	queries := append([]string{plan.Question}, plan.SubQuestions...)

	// The accumulator is owned by this goroutine; workers below the
	// retriever hand their results back before it is appended to.
	var allEvidence []domain.EvidenceItem
	verdict := evaluate.Insufficient
	attempt := 1

	for ; attempt <= s.opts.MaxRetries+1; attempt++ {
		for _, text := range queries {
			if ctx.Err() != nil {
				break
			}
			query := domain.Query{
				Text:        text,
				Genes:       plan.Genes,
				CancerTypes: plan.CancerTypes,
				Strategy:    plan.Strategy,
				Collections: opts.Collections,
				YearMin:     opts.YearMin,
				YearMax:     opts.YearMax,
				TopK:        opts.TopK,
			}
			hits, err := s.retriever.CrossCollectionSearch(ctx, query)
			if err != nil {
				// No vector means no search for this variant; skip it.
				logger.Warn("query variant skipped",
					zap.String("query", text),
					zap.Error(err),
				)
				continue
			}
			allEvidence = append(allEvidence, hits...)
		}

		verdict = s.eval.Evaluate(allEvidence)
		logger.Info("evidence evaluated",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.opts.MaxRetries+1),
			zap.String("verdict", string(verdict)),
			zap.Int("hits", len(allEvidence)),
		)

		if verdict == evaluate.Sufficient || attempt > s.opts.MaxRetries || ctx.Err() != nil {
			break
		}

		// Broaden for the next attempt.
		metrics.AgentRetriesTotal.Inc()
		if plan.Strategy == domain.StrategyTargeted {
			plan.Strategy = domain.StrategyBroad
		}
		queries = fallbackQueries(plan)
		logger.Info("broadening search", zap.Strings("fallback_queries", queries))
	}

	merged := retrieval.MergeAndRank(allEvidence)
	metrics.AgentRunsTotal.WithLabelValues(string(verdict)).Inc()
	metrics.EvidenceReturned.Observe(float64(len(merged)))

	elapsed := time.Since(start)
	logger.Info("agent run complete",
		zap.String("verdict", string(verdict)),
		zap.Int("evidence", len(merged)),
		zap.Duration("elapsed", elapsed),
	)

	return Outcome{
		RunID:    runID,
		Plan:     plan,
		Evidence: merged,
		Verdict:  verdict,
		Attempts: attempt,
		Elapsed:  elapsed,
	}
}
