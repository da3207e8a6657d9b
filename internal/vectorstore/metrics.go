package vectorstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// documentsStored tracks the current index size.
	documentsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "solaced",
			Subsystem: "vectorstore",
			Name:      "documents_stored",
			Help:      "Current number of documents in the index",
		},
	)

	// searchesTotal counts similarity searches.
	searchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "solaced",
			Subsystem: "vectorstore",
			Name:      "searches_total",
			Help:      "Total number of similarity searches",
		},
	)

	// searchDuration tracks how long similarity searches take.
	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "solaced",
			Subsystem: "vectorstore",
			Name:      "search_duration_seconds",
			Help:      "Duration of similarity searches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
