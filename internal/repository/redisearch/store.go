// Package redisearch implements the vector store on Redis 8+ via FT.SEARCH.
package redisearch

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/oncodex/internal/domain"
)

const keyPrefix = "oncodex:"

// Config holds connection parameters for a Redis store.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
}

// Store performs KNN searches over per-collection RediSearch indexes.
// Each collection maps to index "oncodex:<collection>:idx" over HASH keys
// "oncodex:<collection>:<id>" with a FLOAT32 vector field named "vector".
type Store struct {
	client rueidis.Client
}

// New creates a Redis-backed store via rueidis.
func New(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
		AlwaysRESP2:  true, // FT.SEARCH result parsing expects RESP2 array format
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client}, nil
}

// Search runs a KNN vector similarity search against one collection index.
// Scores are cosine similarities in [0,1]. An unknown collection yields
// domain.ErrCollectionNotFound.
func (s *Store) Search(
	ctx context.Context, collection string, vector []float32, topK int, filter domain.SearchFilter,
) ([]domain.StoreHit, error) {
	if collection == "" {
		return nil, fmt.Errorf("collection is required")
	}
	if len(vector) == 0 {
		return nil, fmt.Errorf("vector is required")
	}
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be positive")
	}

	indexName := fmt.Sprintf("%s%s:idx", keyPrefix, collection)

	knnPart := fmt.Sprintf("[KNN %d @vector $BLOB]", topK)
	var queryStr string
	if filterStr := buildFilter(filter); filterStr != "" {
		queryStr = fmt.Sprintf("(%s)=>%s", filterStr, knnPart)
	} else {
		queryStr = fmt.Sprintf("*=>%s", knnPart)
	}

	cmd := s.client.B().Arbitrary("FT.SEARCH").
		Args(indexName, queryStr, "PARAMS", "2", "BLOB", vectorToBytes(vector), "DIALECT", "2").
		Build()

	raw, err := s.client.Do(ctx, cmd).ToArray()
	if err != nil {
		if isRedisErr(err, "no such index") {
			return nil, fmt.Errorf("%s: %w", collection, domain.ErrCollectionNotFound)
		}
		return nil, fmt.Errorf("search %s: %w", collection, err)
	}

	return parseKNNResult(raw, collection)
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// Close shuts down the client.
func (s *Store) Close() {
	s.client.Close()
}

// --- Result parsing ---

func parseKNNResult(raw []rueidis.RedisMessage, collection string) ([]domain.StoreHit, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return nil, nil
	}

	docPrefix := fmt.Sprintf("%s%s:", keyPrefix, collection)
	hits := make([]domain.StoreHit, 0, total)

	// 2-stride: [total, key1, fields1, key2, fields2, ...]
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		hit := domain.StoreHit{
			ID:       strings.TrimPrefix(key, docPrefix),
			Metadata: make(map[string]string),
		}

		for j := 0; j+1 < len(fields); j += 2 {
			name, err := fields[j].ToString()
			if err != nil {
				continue
			}
			value, err := fields[j+1].ToString()
			if err != nil {
				continue
			}
			switch name {
			case "__vector_score":
				if dist, err := strconv.ParseFloat(value, 64); err == nil {
					hit.Score = max(0, 1.0-dist) // cosine distance → similarity, clamped to [0,1]
				}
			case "content":
				hit.Content = value
			case "vector":
				// binary blob, not useful downstream
			default:
				hit.Metadata[name] = value
			}
		}

		hits = append(hits, hit)
	}

	return hits, nil
}

// --- Filter building ---

func buildFilter(f domain.SearchFilter) string {
	if f.IsZero() {
		return ""
	}

	var parts []string

	if f.GeneField != "" && f.Gene != "" {
		parts = append(parts, fmt.Sprintf("@%s:{%s}", f.GeneField, tagEscaper.Replace(f.Gene)))
	}

	if f.YearField != "" && (f.YearMin > 0 || f.YearMax > 0) {
		minBound := "-inf"
		maxBound := "+inf"
		if f.YearMin > 0 {
			minBound = strconv.Itoa(f.YearMin)
		}
		if f.YearMax > 0 {
			maxBound = strconv.Itoa(f.YearMax)
		}
		parts = append(parts, fmt.Sprintf("@%s:[%s %s]", f.YearField, minBound, maxBound))
	}

	return strings.Join(parts, " ")
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return rueidis.BinaryString(buf)
}

func isRedisErr(err error, substr string) bool {
	re, ok := rueidis.IsRedisErr(err)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(re.Error()), strings.ToLower(substr))
}
