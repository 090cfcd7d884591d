// Package retrieval fans queries out across the configured collections in
// parallel, weights and tags the hits, and merges them into one ranked,
// deduplicated evidence list.
package retrieval

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/oncodex/internal/domain"
	"github.com/kailas-cloud/oncodex/internal/metrics"
	"github.com/kailas-cloud/oncodex/internal/registry"
)

// maxWorkers bounds the per-batch fan-out pool.
const maxWorkers = 8

// Options tune the executor.
type Options struct {
	TopK          int           // per-collection hit limit, default 10
	SearchTimeout time.Duration // per-collection call timeout, default 10s
}

func (o *Options) applyDefaults() {
	if o.TopK <= 0 {
		o.TopK = 10
	}
	if o.SearchTimeout <= 0 {
		o.SearchTimeout = 10 * time.Second
	}
}

// Service is the fan-out search executor.
type Service struct {
	store    Store
	embed    Embedder
	expander Expander // nil disables the expanded pass
	reg      *registry.Registry
	opts     Options
	logger   *zap.Logger
}

// New creates a retrieval service. expander may be nil.
func New(store Store, embed Embedder, expander Expander, reg *registry.Registry, opts Options, logger *zap.Logger) *Service {
	opts.applyDefaults()
	return &Service{
		store:    store,
		embed:    embed,
		expander: expander,
		reg:      reg,
		opts:     opts,
		logger:   logger,
	}
}

// CrossCollectionSearch embeds the query, runs the primary fan-out pass
// plus one expansion pass, and returns the raw (unmerged) hit list. The
// caller merges once accumulation is done.
func (s *Service) CrossCollectionSearch(ctx context.Context, query domain.Query) ([]domain.EvidenceItem, error) {
	return s.crossCollectionSearch(ctx, query, "")
}

func (s *Service) crossCollectionSearch(ctx context.Context, query domain.Query, conversationContext string) ([]domain.EvidenceItem, error) {
	embedText := query.Text
	if conversationContext != "" {
		embedText = conversationContext + " " + query.Text
	}

	emb, err := s.embed.Embed(ctx, embedText)
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	topK := query.TopK
	if topK <= 0 {
		topK = s.opts.TopK
	}

	hits := s.SearchAll(ctx, emb.Embedding, query, topK)

	if s.expander != nil {
		expandedK := topK / 2
		if expandedK < 3 {
			expandedK = 3
		}
		hits = append(hits, s.expandedSearch(ctx, query, expandedK)...)
	}
	return hits, nil
}

// Retrieve runs the full merged retrieval for one query: fan-out plus
// expansion, then merge/rank/dedupe. conversationContext, when non-empty,
// is prepended to the embedded text for follow-up questions.
func (s *Service) Retrieve(ctx context.Context, query domain.Query, conversationContext string) (domain.EvidenceSet, error) {
	start := time.Now()

	hits, err := s.crossCollectionSearch(ctx, query, conversationContext)
	if err != nil {
		return domain.EvidenceSet{}, err
	}

	return domain.EvidenceSet{
		Query:               query.Text,
		Items:               MergeAndRank(hits),
		CollectionsSearched: len(s.reg.Targets(query.Collections)),
		Elapsed:             time.Since(start),
	}, nil
}

// SearchAll issues one search per target collection concurrently on a
// bounded worker pool sized min(collection count, 8), created for the
// batch and torn down after it. A failing or timed-out collection
// contributes zero hits and is logged, never propagated.
func (s *Service) SearchAll(ctx context.Context, vector []float32, query domain.Query, topK int) []domain.EvidenceItem {
	targets := s.reg.Targets(query.Collections)
	if len(targets) == 0 {
		return nil
	}

	size := len(targets)
	if size > maxWorkers {
		size = maxWorkers
	}

	pool, err := ants.NewPool(size)
	if err != nil {
		// Pool construction only fails on invalid size; search serially.
		s.logger.Warn("worker pool unavailable, searching serially", zap.Error(err))
		var all []domain.EvidenceItem
		for _, name := range targets {
			all = append(all, s.searchOne(ctx, name, vector, query, topK)...)
		}
		return all
	}
	defer pool.Release()

	results := make(chan []domain.EvidenceItem, len(targets))
	var wg sync.WaitGroup
	for _, name := range targets {
		name := name
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results <- s.searchOne(ctx, name, vector, query, topK)
		}); err != nil {
			wg.Done()
			results <- nil
			s.logger.Warn("submit search task", zap.String("collection", name), zap.Error(err))
		}
	}
	wg.Wait()
	close(results)

	// Workers hand results back over the channel; only this goroutine
	// touches the accumulator.
	var all []domain.EvidenceItem
	for hits := range results {
		all = append(all, hits...)
	}
	return all
}

// searchOne runs a single collection search and normalizes the hits.
func (s *Service) searchOne(ctx context.Context, collection string, vector []float32, query domain.Query, topK int) []domain.EvidenceItem {
	cfg, ok := s.reg.Get(collection)
	if !ok {
		return nil
	}

	filter := domain.SearchFilter{}
	if cfg.GeneField != "" && query.Gene() != "" {
		filter.GeneField = cfg.GeneField
		filter.Gene = query.Gene()
	}
	if cfg.YearField != "" && (query.YearMin > 0 || query.YearMax > 0) {
		filter.YearField = cfg.YearField
		filter.YearMin = query.YearMin
		filter.YearMax = query.YearMax
	}

	callCtx, cancel := context.WithTimeout(ctx, s.opts.SearchTimeout)
	defer cancel()

	start := time.Now()
	storeHits, err := s.store.Search(callCtx, collection, vector, topK, filter)
	metrics.CollectionSearchDuration.WithLabelValues(collection).Observe(time.Since(start).Seconds())
	if err != nil {
		status := "error"
		if callCtx.Err() != nil {
			status = "timeout"
		}
		metrics.CollectionSearchesTotal.WithLabelValues(collection, status).Inc()
		s.logger.Warn("collection search failed",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return nil
	}
	metrics.CollectionSearchesTotal.WithLabelValues(collection, "success").Inc()

	items := make([]domain.EvidenceItem, 0, len(storeHits))
	for _, h := range storeHits {
		items = append(items, mapHit(cfg, h))
	}
	return items
}

// mapHit normalizes one raw store hit into a weighted, provenance-tagged
// evidence item.
func mapHit(cfg registry.CollectionConfig, h domain.StoreHit) domain.EvidenceItem {
	weighted := h.Score * cfg.Weight
	return domain.EvidenceItem{
		Collection: cfg.Name,
		RecordID:   h.ID,
		RawScore:   h.Score,
		Score:      weighted,
		Label:      cfg.Label,
		Citation:   FormatCitation(cfg.Label, h.ID),
		Relevance:  domain.RelevanceFor(weighted),
		Content:    h.Content,
		Metadata:   h.Metadata,
	}
}

// expandedSearch runs one extra fan-out pass with the expansion-term
// broadened embedding. Failures are absorbed: a broadened pass is a
// recall bonus, never a reason to fail the primary search.
func (s *Service) expandedSearch(ctx context.Context, query domain.Query, topK int) []domain.EvidenceItem {
	terms := s.expander.Expand(query.Text)
	if len(terms) == 0 {
		return nil
	}

	expandedText := query.Text + " " + strings.Join(terms, " ")
	emb, err := s.embed.Embed(ctx, expandedText)
	if err != nil {
		s.logger.Warn("expanded query embedding failed", zap.Error(err))
		return nil
	}

	return s.SearchAll(ctx, emb.Embedding, query, topK)
}

// FindRelated searches every collection for hits related to a single
// entity (gene, drug, pathway) and groups them by collection. Collections
// with no hits are omitted.
func (s *Service) FindRelated(ctx context.Context, entity string, topK int) (map[string][]domain.EvidenceItem, error) {
	if topK <= 0 {
		topK = 5
	}

	emb, err := s.embed.Embed(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("vectorize entity: %w", err)
	}

	hits := s.SearchAll(ctx, emb.Embedding, domain.Query{Text: entity, TopK: topK}, topK)

	grouped := make(map[string][]domain.EvidenceItem)
	for _, h := range hits {
		grouped[h.Collection] = append(grouped[h.Collection], h)
	}
	return grouped, nil
}
