package contexttracker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// contextUpdatesTotal counts UpdateContext calls.
	contextUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "solaced",
			Subsystem: "contexttracker",
			Name:      "context_updates_total",
			Help:      "Total number of per-user context updates",
		},
	)

	// persistenceFailuresTotal counts store reads/writes that failed and
	// were swallowed. Labels: operation (load, save).
	persistenceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solaced",
			Subsystem: "contexttracker",
			Name:      "persistence_failures_total",
			Help:      "Total number of swallowed key-value store failures",
		},
		[]string{"operation"},
	)
)
