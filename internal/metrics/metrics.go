// Package metrics exposes Prometheus collectors for the research and
// generation steps of the guide pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values recorded by the pipeline steps.
const (
	OutcomeFound     = "found"
	OutcomeNoResults = "no_results"
	OutcomeFailed    = "failed"
	OutcomeOK        = "ok"
	OutcomeEmpty     = "empty"
)

var (
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prep_search_requests_total",
			Help: "Total number of company research searches executed",
		},
		[]string{"outcome"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prep_search_duration_seconds",
			Help:    "Duration of company research searches in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"outcome"},
	)

	GenerationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prep_generation_requests_total",
			Help: "Total number of guide generation calls executed",
		},
		[]string{"outcome"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prep_generation_duration_seconds",
			Help:    "Duration of guide generation calls in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"outcome"},
	)
)

// RecordSearch updates the search metrics for one research call.
func RecordSearch(outcome string, duration time.Duration) {
	SearchRequestsTotal.WithLabelValues(outcome).Inc()
	SearchDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordGeneration updates the generation metrics for one completion call.
func RecordGeneration(outcome string, duration time.Duration) {
	GenerationRequestsTotal.WithLabelValues(outcome).Inc()
	GenerationDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// Handler returns the Prometheus exposition handler for mounting on a mux.
func Handler() http.Handler {
	return promhttp.Handler()
}
