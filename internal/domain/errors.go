package domain

import "errors"

var (
	// ErrCollectionNotFound signals a search against an unknown collection.
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrSynthesisUnavailable signals that no LLM client is configured.
	ErrSynthesisUnavailable = errors.New("synthesis unavailable")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
)
