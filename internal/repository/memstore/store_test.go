package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/oncodex/internal/domain"
)

func seed(t *testing.T, s *Store) {
	t.Helper()
	err := s.Add("onco_variants",
		Document{ID: "v1", Vector: []float32{1, 0}, Content: "BRAF V600E",
			Metadata: map[string]string{"gene": "BRAF"}},
		Document{ID: "v2", Vector: []float32{0, 1}, Content: "EGFR L858R",
			Metadata: map[string]string{"gene": "EGFR"}},
		Document{ID: "v3", Vector: []float32{0.9, 0.1}, Content: "BRAF V600K",
			Metadata: map[string]string{"gene": "BRAF", "year": "2021"}},
	)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestSearch_UnknownCollection(t *testing.T) {
	s := New()
	_, err := s.Search(context.Background(), "nope", []float32{1}, 5, domain.SearchFilter{})
	if !errors.Is(err, domain.ErrCollectionNotFound) {
		t.Errorf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestSearch_RanksByCosine(t *testing.T) {
	s := New()
	seed(t, s)

	hits, err := s.Search(context.Background(), "onco_variants", []float32{1, 0}, 10, domain.SearchFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %d", len(hits))
	}
	if hits[0].ID != "v1" {
		t.Errorf("expected exact match first, got %q", hits[0].ID)
	}
	if hits[1].ID != "v3" {
		t.Errorf("expected near match second, got %q", hits[1].ID)
	}
	if hits[0].Score <= hits[1].Score || hits[1].Score <= hits[2].Score {
		t.Errorf("scores not descending: %v %v %v", hits[0].Score, hits[1].Score, hits[2].Score)
	}
	if hits[0].Score < 0.999 {
		t.Errorf("identical vector should score ~1.0, got %g", hits[0].Score)
	}
}

func TestSearch_TopK(t *testing.T) {
	s := New()
	seed(t, s)

	hits, err := s.Search(context.Background(), "onco_variants", []float32{1, 0}, 2, domain.SearchFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 2 {
		t.Errorf("expected topK=2 hits, got %d", len(hits))
	}
}

func TestSearch_GeneFilter(t *testing.T) {
	s := New()
	seed(t, s)

	hits, err := s.Search(context.Background(), "onco_variants", []float32{1, 0}, 10,
		domain.SearchFilter{GeneField: "gene", Gene: "EGFR"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != "v2" {
		t.Errorf("expected only v2, got %v", hits)
	}
}

func TestSearch_YearFilter(t *testing.T) {
	s := New()
	seed(t, s)

	hits, err := s.Search(context.Background(), "onco_variants", []float32{1, 0}, 10,
		domain.SearchFilter{YearField: "year", YearMin: 2020, YearMax: 2022})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only v3 carries a year; documents without the field are excluded.
	if len(hits) != 1 || hits[0].ID != "v3" {
		t.Errorf("expected only v3, got %v", hits)
	}
}

func TestSearch_DimMismatch(t *testing.T) {
	s := New()
	seed(t, s)

	_, err := s.Search(context.Background(), "onco_variants", []float32{1, 0, 0}, 10, domain.SearchFilter{})
	if !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Errorf("expected ErrVectorDimMismatch, got %v", err)
	}
}

func TestAdd_DimMismatch(t *testing.T) {
	s := New()
	seed(t, s)

	err := s.Add("onco_variants", Document{ID: "bad", Vector: []float32{1, 2, 3}})
	if !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Errorf("expected ErrVectorDimMismatch, got %v", err)
	}
}

func TestSearch_CancelledContext(t *testing.T) {
	s := New()
	seed(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Search(ctx, "onco_variants", []float32{1, 0}, 10, domain.SearchFilter{}); err == nil {
		t.Error("expected context error")
	}
}
