package synthesis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/oncodex/internal/domain"
)

// reportDisplayCap limits hits listed per collection in the report.
const reportDisplayCap = 10

// Report renders a markdown report from a synthesized response: query,
// plan analysis, evidence sources grouped by collection, and the answer.
func Report(resp Response) string {
	var b strings.Builder

	b.WriteString("# Precision Oncology Intelligence Report\n\n")
	b.WriteString("## Query\n")
	fmt.Fprintf(&b, "**Question:** %s\n\n", resp.Question)

	writePlan(&b, resp.Plan)
	writeEvidence(&b, resp.Evidence.Items)

	b.WriteString("## Synthesis\n")
	b.WriteString(resp.Answer)
	b.WriteString("\n\n---\n*Generated by oncodex*\n")
	return b.String()
}

func writePlan(b *strings.Builder, plan domain.SearchPlan) {
	if plan.Question == "" {
		return
	}
	b.WriteString("## Analysis\n")
	fmt.Fprintf(b, "- **Strategy:** %s\n", plan.Strategy)
	if len(plan.Genes) > 0 {
		fmt.Fprintf(b, "- **Target genes:** %s\n", strings.Join(plan.Genes, ", "))
	}
	if len(plan.CancerTypes) > 0 {
		fmt.Fprintf(b, "- **Cancer types:** %s\n", strings.Join(plan.CancerTypes, ", "))
	}
	if len(plan.Topics) > 0 {
		fmt.Fprintf(b, "- **Topics:** %s\n", strings.Join(plan.Topics, ", "))
	}
	if len(plan.SubQuestions) > 0 {
		b.WriteString("- **Sub-questions:**\n")
		for _, sq := range plan.SubQuestions {
			fmt.Fprintf(b, "  - %s\n", sq)
		}
	}
	b.WriteString("\n")
}

func writeEvidence(b *strings.Builder, items []domain.EvidenceItem) {
	if len(items) == 0 {
		return
	}
	b.WriteString("## Evidence Sources\n")
	fmt.Fprintf(b, "Total evidence items: **%d**\n\n", len(items))

	byCollection := make(map[string][]domain.EvidenceItem)
	for _, it := range items {
		byCollection[it.Collection] = append(byCollection[it.Collection], it)
	}

	names := make([]string, 0, len(byCollection))
	for name := range byCollection {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		hits := byCollection[name]
		fmt.Fprintf(b, "### %s (%d hits)\n", name, len(hits))
		shown := hits
		if len(shown) > reportDisplayCap {
			shown = shown[:reportDisplayCap]
		}
		for i, it := range shown {
			fmt.Fprintf(b, "%d. %s (score: %.3f)\n", i+1, it.Citation, it.Score)
		}
		if len(hits) > reportDisplayCap {
			fmt.Fprintf(b, "   _...and %d more_\n", len(hits)-reportDisplayCap)
		}
		b.WriteString("\n")
	}
}
