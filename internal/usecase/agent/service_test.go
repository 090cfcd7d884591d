package agent

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/oncodex/internal/config"
	"github.com/kailas-cloud/oncodex/internal/domain"
	"github.com/kailas-cloud/oncodex/internal/usecase/evaluate"
)

// --- Mocks ---

type mockPlanner struct {
	plan domain.SearchPlan
}

func (m *mockPlanner) Plan(question string) domain.SearchPlan {
	p := m.plan
	p.Question = question
	return p
}

type mockRetriever struct {
	hits    [][]domain.EvidenceItem // one batch per call, last repeats
	err     error
	calls   int
	queries []domain.Query
}

func (m *mockRetriever) CrossCollectionSearch(_ context.Context, q domain.Query) ([]domain.EvidenceItem, error) {
	m.queries = append(m.queries, q)
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if len(m.hits) == 0 {
		return nil, nil
	}
	idx := m.calls - 1
	if idx >= len(m.hits) {
		idx = len(m.hits) - 1
	}
	return m.hits[idx], nil
}

func newAgent(p Planner, r Retriever, opts Options) *Service {
	return New(p, r, evaluate.New(evaluate.DefaultThresholds()), opts, zap.NewNop())
}

func item(id, collection string, raw, weighted float64) domain.EvidenceItem {
	return domain.EvidenceItem{RecordID: id, Collection: collection, RawScore: raw, Score: weighted}
}

// --- Tests ---

func TestRun_SufficientFirstPass(t *testing.T) {
	planner := &mockPlanner{plan: domain.SearchPlan{
		Genes:       []string{"EGFR", "KRAS"},
		CancerTypes: []string{"NSCLC"},
		Strategy:    domain.StrategyTargeted,
	}}
	retriever := &mockRetriever{hits: [][]domain.EvidenceItem{{
		item("a", "onco_variants", 0.9, 0.162),
		item("b", "onco_variants", 0.8, 0.144),
		item("c", "onco_literature", 0.7, 0.112),
		item("d", "onco_trials", 0.6, 0.06),
		item("e", "onco_trials", 0.5, 0.05),
	}}}

	svc := newAgent(planner, retriever, Options{})
	outcome := svc.Run(context.Background(), "EGFR and KRAS in lung cancer", RunOptions{})

	if outcome.Verdict != evaluate.Sufficient {
		t.Errorf("verdict %q, want sufficient", outcome.Verdict)
	}
	if outcome.Attempts != 1 {
		t.Errorf("attempts %d, want 1", outcome.Attempts)
	}
	if retriever.calls != 1 {
		t.Errorf("expected 1 search (no sub-questions), got %d", retriever.calls)
	}
	if len(outcome.Evidence) != 5 {
		t.Errorf("evidence size %d, want 5", len(outcome.Evidence))
	}
	if !sort.SliceIsSorted(outcome.Evidence, func(i, j int) bool {
		return outcome.Evidence[i].Score > outcome.Evidence[j].Score
	}) {
		t.Error("evidence not sorted descending by weighted score")
	}
	if outcome.RunID == "" {
		t.Error("missing run ID")
	}
}

func TestRun_RetryBound(t *testing.T) {
	planner := &mockPlanner{plan: domain.SearchPlan{Strategy: domain.StrategyBroad}}
	retriever := &mockRetriever{} // always empty, never sufficient

	svc := newAgent(planner, retriever, Options{MaxRetries: 2})
	outcome := svc.Run(context.Background(), "obscure question", RunOptions{})

	if outcome.Verdict != evaluate.Insufficient {
		t.Errorf("verdict %q, want insufficient", outcome.Verdict)
	}
	if outcome.Attempts != 3 {
		t.Errorf("attempts %d, want maxRetries+1 = 3", outcome.Attempts)
	}
	// One query variant per attempt: the question, then one fallback per retry.
	if retriever.calls != 3 {
		t.Errorf("search calls %d, want 3", retriever.calls)
	}
}

func TestRun_RetriesDisabledThroughConfig(t *testing.T) {
	// max_retries: -1 in config must disable broadening end to end, not
	// get re-defaulted to 2 by the agent's own option defaulting.
	cfg := config.Config{
		HTTP:      config.HTTPConfig{Port: 8080},
		Database:  config.DatabaseConfig{Driver: "memory"},
		Retrieval: config.RetrievalConfig{MaxRetries: -1},
	}
	cfg.ApplyDefaults()

	planner := &mockPlanner{plan: domain.SearchPlan{Strategy: domain.StrategyBroad}}
	retriever := &mockRetriever{} // always empty, never sufficient

	svc := newAgent(planner, retriever, Options{MaxRetries: cfg.Retrieval.MaxRetries})
	outcome := svc.Run(context.Background(), "q", RunOptions{})

	if outcome.Attempts != 1 {
		t.Errorf("attempts %d, want 1 with retries disabled", outcome.Attempts)
	}
	if retriever.calls != 1 {
		t.Errorf("search calls %d, want 1 with retries disabled", retriever.calls)
	}
	if outcome.Verdict != evaluate.Insufficient {
		t.Errorf("verdict %q, want insufficient", outcome.Verdict)
	}
}

func TestRun_BroadensWithFallbackQueries(t *testing.T) {
	planner := &mockPlanner{plan: domain.SearchPlan{
		Genes:       []string{"EGFR"},
		CancerTypes: []string{"NSCLC"},
		Strategy:    domain.StrategyTargeted,
	}}
	retriever := &mockRetriever{}

	svc := newAgent(planner, retriever, Options{MaxRetries: 1})
	outcome := svc.Run(context.Background(), "q", RunOptions{})

	// Attempt 1: the question itself. Attempt 2: three fallbacks.
	if retriever.calls != 4 {
		t.Fatalf("search calls %d, want 4", retriever.calls)
	}
	wantFallbacks := []string{
		"EGFR oncology therapeutic implications",
		"EGFR mutation clinical significance",
		"NSCLC precision medicine current landscape",
	}
	for i, want := range wantFallbacks {
		if got := retriever.queries[i+1].Text; got != want {
			t.Errorf("fallback %d: %q, want %q", i, got, want)
		}
	}

	// Targeted flips to broad before the retry.
	if outcome.Plan.Strategy != domain.StrategyBroad {
		t.Errorf("strategy %q, want broad after retry", outcome.Plan.Strategy)
	}
	for _, q := range retriever.queries[1:] {
		if q.Strategy != domain.StrategyBroad {
			t.Errorf("retry query still targeted: %+v", q)
		}
	}
}

func TestRun_GenericFallbackWithoutEntities(t *testing.T) {
	planner := &mockPlanner{plan: domain.SearchPlan{Strategy: domain.StrategyBroad}}
	retriever := &mockRetriever{}

	svc := newAgent(planner, retriever, Options{MaxRetries: 1})
	svc.Run(context.Background(), "something rare", RunOptions{})

	if retriever.calls != 2 {
		t.Fatalf("search calls %d, want 2", retriever.calls)
	}
	if got := retriever.queries[1].Text; got != "something rare precision oncology" {
		t.Errorf("generic fallback %q", got)
	}
}

func TestRun_SubQuestionsSearched(t *testing.T) {
	planner := &mockPlanner{plan: domain.SearchPlan{
		Strategy:     domain.StrategyBroad,
		SubQuestions: []string{"sub one", "sub two"},
	}}
	retriever := &mockRetriever{hits: [][]domain.EvidenceItem{{
		item("a", "onco_variants", 0.9, 0.1),
		item("b", "onco_literature", 0.8, 0.1),
		item("c", "onco_trials", 0.7, 0.1),
	}}}

	svc := newAgent(planner, retriever, Options{})
	svc.Run(context.Background(), "main question", RunOptions{})

	if retriever.calls != 3 {
		t.Fatalf("search calls %d, want question + 2 sub-questions", retriever.calls)
	}
	if retriever.queries[0].Text != "main question" ||
		retriever.queries[1].Text != "sub one" ||
		retriever.queries[2].Text != "sub two" {
		t.Errorf("unexpected query order: %v", texts(retriever.queries))
	}
}

func TestRun_VariantErrorSkipped(t *testing.T) {
	planner := &mockPlanner{plan: domain.SearchPlan{Strategy: domain.StrategyBroad}}
	retriever := &mockRetriever{err: errors.New("embed failed")}

	svc := newAgent(planner, retriever, Options{MaxRetries: -1})
	outcome := svc.Run(context.Background(), "q", RunOptions{})

	if outcome.Verdict != evaluate.Insufficient {
		t.Errorf("verdict %q, want insufficient", outcome.Verdict)
	}
	if len(outcome.Evidence) != 0 {
		t.Errorf("expected no evidence, got %d items", len(outcome.Evidence))
	}
}

func TestRun_PropagatesRunOptions(t *testing.T) {
	planner := &mockPlanner{plan: domain.SearchPlan{Strategy: domain.StrategyBroad}}
	retriever := &mockRetriever{}

	svc := newAgent(planner, retriever, Options{MaxRetries: -1})
	svc.Run(context.Background(), "q", RunOptions{
		TopK:        7,
		Collections: []string{"onco_trials"},
		YearMin:     2021,
		YearMax:     2025,
	})

	q := retriever.queries[0]
	if q.TopK != 7 || q.YearMin != 2021 || q.YearMax != 2025 {
		t.Errorf("run options not propagated: %+v", q)
	}
	if len(q.Collections) != 1 || q.Collections[0] != "onco_trials" {
		t.Errorf("collections not propagated: %v", q.Collections)
	}
}

func TestRun_ExpiredContextFallsThrough(t *testing.T) {
	planner := &mockPlanner{plan: domain.SearchPlan{Strategy: domain.StrategyBroad}}
	retriever := &mockRetriever{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newAgent(planner, retriever, Options{MaxRetries: 2})
	start := time.Now()
	outcome := svc.Run(ctx, "q", RunOptions{})

	if retriever.calls != 0 {
		t.Errorf("cancelled context should skip searches, got %d calls", retriever.calls)
	}
	if outcome.Verdict != evaluate.Insufficient {
		t.Errorf("verdict %q", outcome.Verdict)
	}
	if time.Since(start) > time.Second {
		t.Error("run did not return promptly on cancelled context")
	}
}

func TestRun_MergesAcrossAttempts(t *testing.T) {
	planner := &mockPlanner{plan: domain.SearchPlan{Strategy: domain.StrategyBroad}}
	retriever := &mockRetriever{hits: [][]domain.EvidenceItem{
		{item("dup", "onco_variants", 0.4, 0.07)},
		{
			item("dup", "onco_variants", 0.4, 0.07),
			item("b", "onco_literature", 0.5, 0.08),
			item("c", "onco_trials", 0.6, 0.06),
		},
	}}

	svc := newAgent(planner, retriever, Options{MaxRetries: 1})
	outcome := svc.Run(context.Background(), "q", RunOptions{})

	if outcome.Attempts != 2 {
		t.Fatalf("attempts %d, want 2", outcome.Attempts)
	}
	if len(outcome.Evidence) != 3 {
		t.Errorf("expected 3 deduped items across attempts, got %d", len(outcome.Evidence))
	}
	if outcome.Verdict != evaluate.Sufficient {
		t.Errorf("verdict %q, want sufficient after broadening", outcome.Verdict)
	}
}

func texts(queries []domain.Query) []string {
	out := make([]string, len(queries))
	for i, q := range queries {
		out[i] = q.Text
	}
	return out
}
