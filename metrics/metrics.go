// Package metrics exports solver activity as Prometheus metrics.
//
// Metrics (namespace "shortpath"):
//
//  1. solves_total (counter): finished solves. Labels: outcome (ok/error).
//  2. frontier_pops_total (counter): frontier extractions, stale ones included.
//  3. stale_pops_total (counter): extractions of already-settled vertices.
//  4. relaxations_total (counter): edges that lowered a distance label.
//  5. solve_duration_seconds (histogram): wall time of a solve.
//  6. reachable_vertices (gauge): size of the reachable set of the last solve.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/shortpath/dijkstra"
)

const (
	namespace = "shortpath"

	// OutcomeOK and OutcomeError are the values of the solves_total outcome label.
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder holds the solver metrics registered with one registry.
// All methods are safe for concurrent use; the collectors synchronize.
type Recorder struct {
	solves      *prometheus.CounterVec
	pops        prometheus.Counter
	stalePops   prometheus.Counter
	relaxations prometheus.Counter
	duration    prometheus.Histogram
	reachable   prometheus.Gauge
}

// NewRecorder creates and registers the solver metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer. Registering twice on the same
// registry panics, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Number of finished shortest-path solves by outcome",
		}, []string{"outcome"}),
		pops: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frontier_pops_total",
			Help:      "Frontier extractions, stale duplicates included",
		}),
		stalePops: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_pops_total",
			Help:      "Frontier extractions of vertices that were already settled",
		}),
		relaxations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Edges that strictly lowered a distance label",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a solve, reachability scan included",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to ~26s
		}),
		reachable: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reachable_vertices",
			Help:      "Size of the reachable set of the most recent solve",
		}),
	}
}

// Observe records one solve. Work counters are added even when err is set,
// since Solve returns the partial stats of an aborted run.
func (r *Recorder) Observe(stats dijkstra.Stats, took time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	r.solves.WithLabelValues(outcome).Inc()
	r.pops.Add(float64(stats.Pops))
	r.stalePops.Add(float64(stats.StalePops))
	r.relaxations.Add(float64(stats.Relaxations))
	r.duration.Observe(took.Seconds())
	r.reachable.Set(float64(stats.Reachable))
}
