package expansion

import (
	"strings"
	"testing"
)

func TestExpand_NoMatch(t *testing.T) {
	e := New()
	if got := e.Expand("completely unrelated question about weather"); len(got) != 0 {
		t.Errorf("expected no terms, got %v", got)
	}
}

func TestExpand_GeneKeyword(t *testing.T) {
	e := New()
	terms := e.Expand("What are EGFR mutations?")

	if len(terms) == 0 {
		t.Fatal("expected expansion terms for EGFR")
	}
	found := false
	for _, term := range terms {
		if term == "epidermal growth factor receptor" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected EGFR long form in %v", terms)
	}
}

func TestExpand_CaseInsensitive(t *testing.T) {
	e := New()
	lower := e.Expand("egfr resistance")
	upper := e.Expand("EGFR RESISTANCE")

	if len(lower) == 0 {
		t.Fatal("expected terms for lowercase query")
	}
	if len(lower) != len(upper) {
		t.Fatalf("case should not matter: %d vs %d terms", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] != upper[i] {
			t.Errorf("term %d differs: %q vs %q", i, lower[i], upper[i])
		}
	}
}

func TestExpand_CapsAtTen(t *testing.T) {
	e := New()
	// Matches several maps at once.
	terms := e.Expand("EGFR KRAS BRAF resistance immunotherapy clinical trial NSCLC")
	if len(terms) > 10 {
		t.Errorf("expected at most 10 terms, got %d: %v", len(terms), terms)
	}
	if len(terms) != 10 {
		t.Errorf("rich query should saturate the cap, got %d", len(terms))
	}
}

func TestExpand_NoDuplicates(t *testing.T) {
	e := New()
	terms := e.Expand("EGFR KRAS resistance NSCLC biomarker trial")

	seen := make(map[string]struct{})
	for _, term := range terms {
		key := strings.ToLower(term)
		if _, dup := seen[key]; dup {
			t.Errorf("duplicate term %q", term)
		}
		seen[key] = struct{}{}
	}
}

func TestExpand_Deterministic(t *testing.T) {
	e := New()
	first := e.Expand("EGFR NSCLC resistance")
	for i := 0; i < 20; i++ {
		again := e.Expand("EGFR NSCLC resistance")
		if len(again) != len(first) {
			t.Fatalf("run %d: %d terms vs %d", i, len(again), len(first))
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d: term %d %q vs %q", i, j, again[j], first[j])
			}
		}
	}
}
