package retrieval

import (
	"context"

	"github.com/kailas-cloud/oncodex/internal/domain"
)

// Store defines the vector-store contract for collection searches.
// Implementations must return domain.ErrCollectionNotFound for unknown
// collections; the executor treats any error as zero hits.
type Store interface {
	Search(
		ctx context.Context, collection string,
		vector []float32, topK int, filter domain.SearchFilter,
	) ([]domain.StoreHit, error)
}

// Embedder vectorizes query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Expander returns related terms for recognized domain keywords.
type Expander interface {
	Expand(query string) []string
}
