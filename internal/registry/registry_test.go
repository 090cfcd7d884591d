package registry

import (
	"math"
	"testing"
)

func TestDefault_TableShape(t *testing.T) {
	reg := Default()

	if reg.Len() != 11 {
		t.Fatalf("expected 11 collections, got %d", reg.Len())
	}

	names := reg.Names()
	if names[0] != Variants {
		t.Errorf("expected %q first, got %q", Variants, names[0])
	}
	if names[len(names)-1] != Genomic {
		t.Errorf("expected %q last, got %q", Genomic, names[len(names)-1])
	}

	var sum float64
	for _, n := range names {
		c, ok := reg.Get(n)
		if !ok {
			t.Fatalf("missing config for %q", n)
		}
		if c.Weight <= 0 || c.Weight > 1 {
			t.Errorf("%s: weight %g out of range", n, c.Weight)
		}
		sum += c.Weight
	}
	if math.Abs(sum-1.0) > 0.001 {
		t.Errorf("weights sum to %g, expected ~1.0", sum)
	}
}

func TestDefault_WeightOrdering(t *testing.T) {
	reg := Default()

	variants, _ := reg.Get(Variants)
	cases, _ := reg.Get(Cases)
	if variants.Weight <= cases.Weight {
		t.Errorf("variants weight %g should exceed cases weight %g", variants.Weight, cases.Weight)
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, ok := Default().Get("unknown_collection"); ok {
		t.Error("expected Get to report unknown collection")
	}
}

func TestTargets(t *testing.T) {
	reg := Default()

	if got := reg.Targets(nil); len(got) != reg.Len() {
		t.Errorf("nil filter: expected all %d collections, got %d", reg.Len(), len(got))
	}

	got := reg.Targets([]string{Trials, "bogus", Variants})
	if len(got) != 2 {
		t.Fatalf("expected 2 targets, got %v", got)
	}
	if got[0] != Trials || got[1] != Variants {
		t.Errorf("expected filter order preserved, got %v", got)
	}
}

func TestWithWeight(t *testing.T) {
	reg := Default()
	modified := reg.WithWeight(Trials, 0.5)

	orig, _ := reg.Get(Trials)
	if orig.Weight != 0.10 {
		t.Errorf("original registry mutated: trials weight %g", orig.Weight)
	}

	c, _ := modified.Get(Trials)
	if c.Weight != 0.5 {
		t.Errorf("expected overridden weight 0.5, got %g", c.Weight)
	}

	if modified.Len() != reg.Len() {
		t.Errorf("length changed: %d vs %d", modified.Len(), reg.Len())
	}
}

func TestNew_DropsDuplicates(t *testing.T) {
	reg := New(
		CollectionConfig{Name: "a", Weight: 0.5},
		CollectionConfig{Name: "a", Weight: 0.9},
		CollectionConfig{Name: "b", Weight: 0.5},
	)
	if reg.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", reg.Len())
	}
	c, _ := reg.Get("a")
	if c.Weight != 0.5 {
		t.Errorf("first occurrence should win, got weight %g", c.Weight)
	}
}
