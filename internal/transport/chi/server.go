// Package chi exposes the retrieval and question-answering API over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/oncodex/internal/domain"
	"github.com/kailas-cloud/oncodex/internal/logger"
	agentuc "github.com/kailas-cloud/oncodex/internal/usecase/agent"
	healthuc "github.com/kailas-cloud/oncodex/internal/usecase/health"
	"github.com/kailas-cloud/oncodex/internal/usecase/retrieval"
	"github.com/kailas-cloud/oncodex/internal/usecase/synthesis"
)

const defaultRelatedTopK = 5

// Server wires the usecase services into HTTP handlers. Handlers log
// through the request-scoped logger installed by the middleware.
type Server struct {
	agent     *agentuc.Service
	retriever *retrieval.Service
	synth     *synthesis.Service
	health    *healthuc.Service
}

// NewServer creates an HTTP API server.
func NewServer(
	agent *agentuc.Service,
	retriever *retrieval.Service,
	synth *synthesis.Service,
	health *healthuc.Service,
) *Server {
	return &Server{
		agent:     agent,
		retriever: retriever,
		synth:     synth,
		health:    health,
	}
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/query", s.Query)
	r.Post("/v1/search", s.Search)
	r.Get("/v1/related/{entity}", s.Related)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// --- Request/response DTOs ---

type queryRequest struct {
	Question    string   `json:"question"`
	TopK        int      `json:"top_k,omitempty"`
	Collections []string `json:"collections,omitempty"`
	YearMin     int      `json:"year_min,omitempty"`
	YearMax     int      `json:"year_max,omitempty"`
	Stream      bool     `json:"stream,omitempty"`
	Report      bool     `json:"report,omitempty"`
}

type searchRequest struct {
	Query       string   `json:"query"`
	Context     string   `json:"context,omitempty"`
	TopK        int      `json:"top_k,omitempty"`
	Collections []string `json:"collections,omitempty"`
	YearMin     int      `json:"year_min,omitempty"`
	YearMax     int      `json:"year_max,omitempty"`
}

type evidenceItem struct {
	Collection string            `json:"collection"`
	RecordID   string            `json:"record_id"`
	Score      float64           `json:"score"`
	RawScore   float64           `json:"raw_score"`
	Label      string            `json:"label"`
	Citation   string            `json:"citation"`
	Relevance  string            `json:"relevance"`
	Content    string            `json:"content"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type planView struct {
	Question     string   `json:"question"`
	Strategy     string   `json:"strategy"`
	Genes        []string `json:"genes,omitempty"`
	CancerTypes  []string `json:"cancer_types,omitempty"`
	Topics       []string `json:"topics,omitempty"`
	SubQuestions []string `json:"sub_questions,omitempty"`
}

type queryResponse struct {
	RunID               string         `json:"run_id"`
	Question            string         `json:"question"`
	Answer              string         `json:"answer"`
	Verdict             string         `json:"verdict"`
	Attempts            int            `json:"attempts"`
	Plan                planView       `json:"plan"`
	Evidence            []evidenceItem `json:"evidence"`
	CollectionsSearched int            `json:"collections_searched"`
	ElapsedMS           int64          `json:"elapsed_ms"`
	Report              string         `json:"report,omitempty"`
}

type searchResponse struct {
	Query               string         `json:"query"`
	Evidence            []evidenceItem `json:"evidence"`
	CollectionsSearched int            `json:"collections_searched"`
	ElapsedMS           int64          `json:"elapsed_ms"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// --- Handlers ---

// Query handles POST /v1/query: the full plan → search → evaluate →
// synthesize pipeline.
func (s *Server) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "question is required")
		return
	}

	outcome := s.agent.Run(r.Context(), req.Question, agentuc.RunOptions{
		TopK:        req.TopK,
		Collections: req.Collections,
		YearMin:     req.YearMin,
		YearMax:     req.YearMax,
	})

	set := domain.EvidenceSet{
		Query:               req.Question,
		Items:               outcome.Evidence,
		CollectionsSearched: distinctCollections(outcome.Evidence),
		Elapsed:             outcome.Elapsed,
	}

	if req.Stream {
		s.streamAnswer(w, r, req.Question, set)
		return
	}

	var resp synthesis.Response
	if outcome.Plan.Strategy == domain.StrategyComparative {
		comp, err := s.retriever.RetrieveComparative(r.Context(), req.Question, domain.Query{
			Collections: req.Collections,
			YearMin:     req.YearMin,
			YearMax:     req.YearMax,
			TopK:        req.TopK,
		})
		if err == nil {
			resp = s.synth.SynthesizeComparative(r.Context(), req.Question, comp)
			resp.Evidence = set
			resp.Plan = outcome.Plan
		} else {
			logger.FromContext(r.Context()).Warn("comparative retrieval failed, falling back", zap.Error(err))
			resp = s.synth.Synthesize(r.Context(), req.Question, set, outcome.Plan)
		}
	} else {
		resp = s.synth.Synthesize(r.Context(), req.Question, set, outcome.Plan)
	}

	out := queryResponse{
		RunID:               outcome.RunID,
		Question:            req.Question,
		Answer:              resp.Answer,
		Verdict:             string(outcome.Verdict),
		Attempts:            outcome.Attempts,
		Plan:                planToView(outcome.Plan),
		Evidence:            evidenceToView(outcome.Evidence),
		CollectionsSearched: set.CollectionsSearched,
		ElapsedMS:           outcome.Elapsed.Milliseconds(),
	}
	if req.Report {
		out.Report = synthesis.Report(resp)
	}

	writeJSON(w, http.StatusOK, out)
}

// streamAnswer streams the synthesized answer as chunked plain text.
func (s *Server) streamAnswer(w http.ResponseWriter, r *http.Request, question string, set domain.EvidenceSet) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusNotImplemented, "not_implemented", "streaming unsupported by connection")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	err := s.synth.SynthesizeStream(r.Context(), question, set, func(delta string) error {
		if _, werr := w.Write([]byte(delta)); werr != nil {
			return werr
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		logger.FromContext(r.Context()).Warn("answer stream aborted", zap.Error(err))
	}
}

// Search handles POST /v1/search: a single retrieval pass without the
// agent loop or synthesis.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "query is required")
		return
	}

	set, err := s.retriever.Retrieve(r.Context(), domain.Query{
		Text:        req.Query,
		Collections: req.Collections,
		YearMin:     req.YearMin,
		YearMax:     req.YearMax,
		TopK:        req.TopK,
	}, req.Context)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:               set.Query,
		Evidence:            evidenceToView(set.Items),
		CollectionsSearched: set.CollectionsSearched,
		ElapsedMS:           set.Elapsed.Milliseconds(),
	})
}

// Related handles GET /v1/related/{entity}: evidence about one entity
// grouped by collection.
func (s *Server) Related(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	if entity == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "entity is required")
		return
	}

	groups, err := s.retriever.FindRelated(r.Context(), entity, defaultRelatedTopK)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	out := make(map[string][]evidenceItem, len(groups))
	for collection, items := range groups {
		out[collection] = evidenceToView(items)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entity":      entity,
		"collections": out,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// --- Helpers ---

func planToView(p domain.SearchPlan) planView {
	return planView{
		Question:     p.Question,
		Strategy:     string(p.Strategy),
		Genes:        p.Genes,
		CancerTypes:  p.CancerTypes,
		Topics:       p.Topics,
		SubQuestions: p.SubQuestions,
	}
}

func evidenceToView(items []domain.EvidenceItem) []evidenceItem {
	out := make([]evidenceItem, len(items))
	for i, it := range items {
		out[i] = evidenceItem{
			Collection: it.Collection,
			RecordID:   it.RecordID,
			Score:      it.Score,
			RawScore:   it.RawScore,
			Label:      it.Label,
			Citation:   it.Citation,
			Relevance:  string(it.Relevance),
			Content:    it.Content,
			Metadata:   it.Metadata,
		}
	}
	return out
}

func distinctCollections(items []domain.EvidenceItem) int {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[it.Collection] = struct{}{}
	}
	return len(seen)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrCollectionNotFound,
		domain.ErrEmbeddingProviderError,
		domain.ErrSynthesisUnavailable,
		domain.ErrVectorDimMismatch,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	switch {
	case errors.Is(err, domain.ErrCollectionNotFound):
		writeError(w, http.StatusNotFound, "collection_not_found", msg)
	case errors.Is(err, domain.ErrVectorDimMismatch):
		writeError(w, http.StatusBadRequest, "vector_dim_mismatch", msg)
	case errors.Is(err, domain.ErrEmbeddingProviderError):
		writeError(w, http.StatusBadGateway, "embedding_provider_error", msg)
	case errors.Is(err, domain.ErrSynthesisUnavailable):
		writeError(w, http.StatusBadGateway, "synthesis_unavailable", msg)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", msg)
	}
}
