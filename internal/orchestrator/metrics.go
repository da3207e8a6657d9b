package orchestrator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Completion outcomes recorded on llmCallsTotal.
const (
	outcomeSuccess  = "success"
	outcomeFallback = "fallback"
	outcomeApology  = "apology"
)

var (
	// knowledgeQueriesTotal counts knowledge queries.
	knowledgeQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "solaced",
			Subsystem: "orchestrator",
			Name:      "knowledge_queries_total",
			Help:      "Total number of knowledge queries",
		},
	)

	// llmCallsTotal counts completion attempts by outcome.
	llmCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solaced",
			Subsystem: "orchestrator",
			Name:      "llm_calls_total",
			Help:      "Total number of completion calls by outcome",
		},
		[]string{"outcome"},
	)

	// llmCallDuration observes end-to-end completion latency, including
	// any fallback attempt.
	llmCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "solaced",
			Subsystem: "orchestrator",
			Name:      "llm_call_duration_seconds",
			Help:      "Completion call latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
