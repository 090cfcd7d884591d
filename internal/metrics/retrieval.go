package metrics

import "github.com/prometheus/client_golang/prometheus"

// Retrieval and agent-loop Prometheus metrics.
var (
	CollectionSearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oncodex",
			Name:      "collection_searches_total",
			Help:      "Per-collection search calls by outcome",
		},
		[]string{"collection", "status"}, // status: success / error / timeout
	)

	CollectionSearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "oncodex",
			Name:      "collection_search_duration_seconds",
			Help:      "Per-collection search duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"collection"},
	)

	AgentRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oncodex",
			Name:      "agent_runs_total",
			Help:      "Completed agent runs by final evidence verdict",
		},
		[]string{"verdict"},
	)

	AgentRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "oncodex",
			Name:      "agent_retries_total",
			Help:      "Search broadening retries across all agent runs",
		},
	)

	EvidenceReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "oncodex",
			Name:      "evidence_items_returned",
			Help:      "Merged evidence list size per agent run",
			Buckets:   []float64{0, 1, 3, 5, 10, 15, 20, 25, 30},
		},
	)
)

var retrievalMetricsRegistered bool

// RegisterRetrievalMetrics registers retrieval metrics. Called once from main.
func RegisterRetrievalMetrics() {
	if retrievalMetricsRegistered {
		return
	}
	prometheus.MustRegister(CollectionSearchesTotal)
	prometheus.MustRegister(CollectionSearchDuration)
	prometheus.MustRegister(AgentRunsTotal)
	prometheus.MustRegister(AgentRetriesTotal)
	prometheus.MustRegister(EvidenceReturned)
	retrievalMetricsRegistered = true
}
