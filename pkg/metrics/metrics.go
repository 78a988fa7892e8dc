// Package metrics holds the Prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Sync outcomes used as the "outcome" label of SyncedMutations.
const (
	OutcomeApplied = "applied"
	OutcomeFailed  = "failed"
)

//nolint: gochecknoglobals
var (
	// SyncedMutations counts submission mutations handled by the sync worker.
	SyncedMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ground",
		Subsystem: "sync",
		Name:      "mutations_total",
		Help:      "Number of submission mutations handled by the sync worker, by outcome.",
	}, []string{"outcome"})

	// SyncDuration observes how long a submission sync job runs.
	SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ground",
		Subsystem: "sync",
		Name:      "duration_seconds",
		Help:      "Duration of submission sync jobs.",
		Buckets:   DefaultBuckets,
	})
)
