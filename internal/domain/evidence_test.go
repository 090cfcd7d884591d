package domain

import (
	"context"
	"testing"
)

func TestRelevanceFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Relevance
	}{
		{0.95, RelevanceHigh},
		{0.85, RelevanceHigh},
		{0.84, RelevanceMedium},
		{0.65, RelevanceMedium},
		{0.64, RelevanceLow},
		{0.0, RelevanceLow},
	}
	for _, tt := range tests {
		if got := RelevanceFor(tt.score); got != tt.want {
			t.Errorf("RelevanceFor(%g) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

type recordingEmbedder struct {
	lastText string
}

func (m *recordingEmbedder) Embed(_ context.Context, text string) (EmbeddingResult, error) {
	m.lastText = text
	return EmbeddingResult{Embedding: []float32{1}}, nil
}

func TestInstructionEmbedder_PrependsInstruction(t *testing.T) {
	inner := &recordingEmbedder{}
	e := NewInstructionEmbedder(inner, "Represent this sentence for searching relevant passages: ")

	if _, err := e.Embed(context.Background(), "BRAF melanoma"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Represent this sentence for searching relevant passages: BRAF melanoma"
	if inner.lastText != want {
		t.Errorf("embedded %q, want %q", inner.lastText, want)
	}
}
