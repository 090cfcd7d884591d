package planner

import (
	"reflect"
	"testing"

	"github.com/kailas-cloud/oncodex/internal/domain"
)

func TestPlan_BroadFallback(t *testing.T) {
	p := New()
	plan := p.Plan("What is precision medicine?")

	if plan.Strategy != domain.StrategyBroad {
		t.Errorf("expected broad strategy, got %q", plan.Strategy)
	}
	if len(plan.Genes) != 0 || len(plan.CancerTypes) != 0 {
		t.Errorf("expected no entities, got genes=%v cancers=%v", plan.Genes, plan.CancerTypes)
	}
	if len(plan.SubQuestions) != 0 {
		t.Errorf("expected no sub-questions, got %v", plan.SubQuestions)
	}
}

func TestPlan_Targeted(t *testing.T) {
	p := New()
	plan := p.Plan("What is the best therapy for EGFR mutated lung cancer?")

	if plan.Strategy != domain.StrategyTargeted {
		t.Errorf("expected targeted strategy, got %q", plan.Strategy)
	}
	if !reflect.DeepEqual(plan.Genes, []string{"EGFR"}) {
		t.Errorf("expected [EGFR], got %v", plan.Genes)
	}
	if !reflect.DeepEqual(plan.CancerTypes, []string{"NSCLC"}) {
		t.Errorf("expected lung cancer resolved to [NSCLC], got %v", plan.CancerTypes)
	}
}

func TestPlan_Comparative(t *testing.T) {
	p := New()
	plan := p.Plan("osimertinib versus gefitinib in NSCLC")

	if plan.Strategy != domain.StrategyComparative {
		t.Errorf("expected comparative strategy, got %q", plan.Strategy)
	}
}

func TestPlan_ComparativeBeatsTargeted(t *testing.T) {
	p := New()
	// Genes and cancer types present, but a comparison signal wins.
	plan := p.Plan("compare EGFR and KRAS inhibitors in lung cancer")

	if plan.Strategy != domain.StrategyComparative {
		t.Errorf("expected comparative strategy, got %q", plan.Strategy)
	}
}

func TestPlan_GeneSpecificity(t *testing.T) {
	p := New()
	plan := p.Plan("Role of BRCA1 in ovarian cancer")

	// BRCA1 matches both BRCA1 and the BRCA family symbol.
	want := []string{"BRCA1", "BRCA"}
	if !reflect.DeepEqual(plan.Genes, want) {
		t.Errorf("expected %v, got %v", want, plan.Genes)
	}
	if !reflect.DeepEqual(plan.CancerTypes, []string{"OVARIAN"}) {
		t.Errorf("expected [OVARIAN], got %v", plan.CancerTypes)
	}
}

func TestPlan_AliasResolution(t *testing.T) {
	p := New()
	plan := p.Plan("treatment options for lung adenocarcinoma")

	if !reflect.DeepEqual(plan.CancerTypes, []string{"NSCLC"}) {
		t.Errorf("expected alias resolved to [NSCLC], got %v", plan.CancerTypes)
	}
}

func TestPlan_NoDuplicateCancerTypes(t *testing.T) {
	p := New()
	plan := p.Plan("NSCLC lung cancer non-small cell lung treatment")

	if !reflect.DeepEqual(plan.CancerTypes, []string{"NSCLC"}) {
		t.Errorf("expected single [NSCLC], got %v", plan.CancerTypes)
	}
}

func TestPlan_Topics(t *testing.T) {
	p := New()
	plan := p.Plan("Mechanisms of resistance and predictive biomarker use")

	wantTopics := map[string]bool{
		"therapeutic resistance":   false,
		"biomarker identification": false,
	}
	for _, topic := range plan.Topics {
		if _, ok := wantTopics[topic]; ok {
			wantTopics[topic] = true
		}
	}
	for topic, found := range wantTopics {
		if !found {
			t.Errorf("missing topic %q in %v", topic, plan.Topics)
		}
	}
}

func TestDecompose_MultiGene(t *testing.T) {
	p := New()
	plan := p.Plan("Role of EGFR and KRAS in NSCLC")

	want := []string{
		"What is the role of EGFR in NSCLC?",
		"What is the role of KRAS in NSCLC?",
	}
	if !reflect.DeepEqual(plan.SubQuestions, want) {
		t.Errorf("expected %v, got %v", want, plan.SubQuestions)
	}
}

func TestDecompose_ResistanceAndTrials(t *testing.T) {
	p := New()
	plan := p.Plan("EGFR resistance in NSCLC and active clinical trial options")

	wantSubs := map[string]bool{
		"Mechanisms of resistance to EGFR inhibitors": false,
		"Active clinical trials targeting EGFR in NSCLC": false,
	}
	for _, sq := range plan.SubQuestions {
		if _, ok := wantSubs[sq]; ok {
			wantSubs[sq] = true
		}
	}
	for sq, found := range wantSubs {
		if !found {
			t.Errorf("missing sub-question %q in %v", sq, plan.SubQuestions)
		}
	}
}

func TestPlan_Deterministic(t *testing.T) {
	p := New()
	question := "compare EGFR and KRAS resistance biomarker trials in lung cancer and melanoma"
	first := p.Plan(question)
	for i := 0; i < 10; i++ {
		again := p.Plan(question)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: plan differs\nfirst: %+v\nagain: %+v", i, first, again)
		}
	}
}
