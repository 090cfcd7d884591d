// Package planner analyzes a free-text oncology question and produces a
// structured search plan: extracted genes, cancer types, topics, a search
// strategy, and focused sub-questions.
package planner

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/oncodex/internal/domain"
)

// Planner derives search plans from questions. Pure string analysis over
// static vocabularies; never fails.
type Planner struct{}

// New creates a planner.
func New() *Planner {
	return &Planner{}
}

// Plan analyzes the question. On no recognizable entity or topic it
// returns a minimal broad-strategy plan with no sub-questions.
func (p *Planner) Plan(question string) domain.SearchPlan {
	upper := strings.ToUpper(question)
	lower := strings.ToLower(question)

	genes := extractGenes(upper)
	cancerTypes := extractCancerTypes(upper, lower)
	topics := extractTopics(lower)

	strategy := domain.StrategyBroad
	switch {
	case containsAny(lower, comparativeSignals):
		strategy = domain.StrategyComparative
	case len(genes) > 0 && len(cancerTypes) > 0:
		strategy = domain.StrategyTargeted
	}

	return domain.SearchPlan{
		Question:     question,
		Topics:       topics,
		Genes:        genes,
		CancerTypes:  cancerTypes,
		Strategy:     strategy,
		SubQuestions: decompose(genes, cancerTypes, topics),
	}
}

func extractGenes(upper string) []string {
	var genes []string
	for _, g := range knownGenes {
		if strings.Contains(upper, g) {
			genes = append(genes, g)
		}
	}
	return genes
}

func extractCancerTypes(upper, lower string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(canonical string) {
		if _, dup := seen[canonical]; !dup {
			seen[canonical] = struct{}{}
			out = append(out, canonical)
		}
	}
	for _, ct := range knownCancerTypes {
		if strings.Contains(upper, ct) {
			add(ct)
		}
	}
	for _, a := range cancerAliases {
		if strings.Contains(lower, a.text) {
			add(a.canonical)
		}
	}
	return out
}

func extractTopics(lower string) []string {
	var topics []string
	seen := make(map[string]struct{})
	for _, tk := range topicKeywords {
		if !strings.Contains(lower, tk.keyword) {
			continue
		}
		if _, dup := seen[tk.topic]; dup {
			continue
		}
		seen[tk.topic] = struct{}{}
		topics = append(topics, tk.topic)
	}
	return topics
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// decompose breaks a complex question into focused sub-queries.
func decompose(genes, cancerTypes, topics []string) []string {
	var subs []string

	if len(genes) > 1 {
		cancerCtx := ""
		if len(cancerTypes) > 0 {
			cancerCtx = " in " + cancerTypes[0]
		}
		for _, gene := range genes {
			subs = append(subs, fmt.Sprintf("What is the role of %s%s?", gene, cancerCtx))
		}
	}

	if len(cancerTypes) > 1 {
		geneCtx := ""
		if len(genes) > 0 {
			geneCtx = genes[0] + " "
		}
		for _, ct := range cancerTypes {
			subs = append(subs, fmt.Sprintf("%stherapeutic landscape in %s", geneCtx, ct))
		}
	}

	if hasTopic(topics, topicResistance) && len(genes) > 0 {
		subs = append(subs, fmt.Sprintf("Mechanisms of resistance to %s inhibitors", genes[0]))
	}
	if hasTopic(topics, topicTrials) {
		geneCtx, cancerCtx := "", ""
		if len(genes) > 0 {
			geneCtx = " targeting " + genes[0]
		}
		if len(cancerTypes) > 0 {
			cancerCtx = " in " + cancerTypes[0]
		}
		subs = append(subs, fmt.Sprintf("Active clinical trials%s%s", geneCtx, cancerCtx))
	}
	if hasTopic(topics, topicBiomarker) {
		cancerCtx := ""
		if len(cancerTypes) > 0 {
			cancerCtx = " for " + cancerTypes[0]
		}
		subs = append(subs, "Predictive biomarkers"+cancerCtx)
	}
	if hasTopic(topics, topicCombination) && len(genes) > 0 {
		subs = append(subs, fmt.Sprintf("Combination strategies with %s inhibitors", genes[0]))
	}

	// Deduplicate preserving first occurrence.
	seen := make(map[string]struct{}, len(subs))
	unique := subs[:0]
	for _, sq := range subs {
		if _, dup := seen[sq]; dup {
			continue
		}
		seen[sq] = struct{}{}
		unique = append(unique, sq)
	}
	return unique
}

func hasTopic(topics []string, topic string) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}
