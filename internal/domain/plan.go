package domain

// Strategy classifies query intent and governs filter and sub-question
// generation.
type Strategy string

const (
	StrategyBroad       Strategy = "broad"
	StrategyTargeted    Strategy = "targeted"
	StrategyComparative Strategy = "comparative"
)

// SearchPlan is the planner's decomposition of a question. Created once
// per top-level question; the only in-place mutation is the targeted→broad
// strategy flip when the agent broadens a retry.
type SearchPlan struct {
	Question     string
	Topics       []string
	Genes        []string
	CancerTypes  []string
	Strategy     Strategy
	SubQuestions []string
}
