// Package memstore provides an in-memory vector store with brute-force
// cosine search. It backs the "memory" database driver for local runs
// and is the store of choice in tests.
package memstore

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"

	"github.com/kailas-cloud/oncodex/internal/domain"
)

// Document is a single record to index into a collection.
type Document struct {
	ID       string
	Vector   []float32
	Content  string
	Metadata map[string]string
}

// Store keeps documents per collection and searches them exhaustively.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string][]Document)}
}

// CreateCollection registers an empty collection.
func (s *Store) CreateCollection(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[name]; !ok {
		s.collections[name] = nil
	}
}

// Add indexes documents into a collection, creating it if absent.
func (s *Store) Add(collection string, docs ...Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.collections[collection]
	for _, d := range docs {
		if len(existing) > 0 && len(d.Vector) != len(existing[0].Vector) {
			return fmt.Errorf("add %s/%s: %w", collection, d.ID, domain.ErrVectorDimMismatch)
		}
		existing = append(existing, d)
	}
	s.collections[collection] = existing
	return nil
}

// Search returns the topK nearest documents by cosine similarity,
// restricted by the filter. Unknown collections yield
// domain.ErrCollectionNotFound.
func (s *Store) Search(
	ctx context.Context, collection string, vector []float32, topK int, filter domain.SearchFilter,
) ([]domain.StoreHit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	docs, ok := s.collections[collection]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", collection, domain.ErrCollectionNotFound)
	}

	hits := make([]domain.StoreHit, 0, len(docs))
	for _, d := range docs {
		if !matches(d, filter) {
			continue
		}
		if len(d.Vector) != len(vector) {
			return nil, fmt.Errorf("search %s/%s: %w", collection, d.ID, domain.ErrVectorDimMismatch)
		}
		hits = append(hits, domain.StoreHit{
			ID:       d.ID,
			Score:    cosine(vector, d.Vector),
			Content:  d.Content,
			Metadata: d.Metadata,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if topK > 0 && len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close releases all indexed documents.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = make(map[string][]Document)
}

func matches(d Document, f domain.SearchFilter) bool {
	if f.IsZero() {
		return true
	}
	if f.GeneField != "" && f.Gene != "" {
		if d.Metadata[f.GeneField] != f.Gene {
			return false
		}
	}
	if f.YearField != "" && (f.YearMin > 0 || f.YearMax > 0) {
		year, err := strconv.Atoi(d.Metadata[f.YearField])
		if err != nil {
			return false
		}
		if f.YearMin > 0 && year < f.YearMin {
			return false
		}
		if f.YearMax > 0 && year > f.YearMax {
			return false
		}
	}
	return true
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
