// Package metrics declares the Prometheus collectors of pathviz.
// Collectors are registered with the default registry through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for AlgorithmRuns.
const (
	OutcomeOK           = "ok"
	OutcomeDisconnected = "disconnected"
	OutcomeError        = "error"
)

var (
	// AlgorithmRuns counts algorithm invocations by algorithm and outcome.
	AlgorithmRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathviz_algorithm_runs_total",
			Help: "Algorithm runs by algorithm and outcome",
		},
		[]string{"algorithm", "outcome"},
	)

	// StepsPerRun measures the length of emitted step sequences.
	StepsPerRun = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathviz_steps_per_run",
			Help:    "Number of animation steps emitted per successful run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"algorithm"},
	)

	// GeneratedNodes and GeneratedEdges measure generator output size.
	GeneratedNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathviz_generated_nodes",
		Help:    "Nodes per generated graph",
		Buckets: prometheus.LinearBuckets(5, 5, 8),
	})
	GeneratedEdges = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathviz_generated_edges",
		Help:    "Edges per generated graph",
		Buckets: prometheus.LinearBuckets(5, 10, 10),
	})

	// HttpRequestsTotal counts requests by method, route and status code.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathviz_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HttpRequestDuration measures handler latency.
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathviz_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	// StoredGraphs tracks the record count after each store mutation.
	StoredGraphs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pathviz_stored_graphs",
		Help: "Number of graph records in the configured store",
	})
)
