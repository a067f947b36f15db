// Package dijkstra defines the errors, options and statistics of the
// shortest-path solver.
//
// Options:
//
//	– WithLogger:   debug logging of the reachable-set size and final stats.
//	– WithOnSettle: hook called the first time a vertex is settled.
//	– WithOnRelax:  hook called whenever an edge lowers a distance label.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrVertexNotFound    if the source (or PathTo target) is not in the graph.
//	– ErrFrontierExhausted if the frontier empties before every reachable vertex is settled.
//	– ErrUnreachable       if PathTo is asked for a vertex that was never reached.
//	– ErrBrokenPath        if a predecessor walk does not terminate at a root.
package dijkstra

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors returned by the solver and the path helpers.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a handle does not address a vertex of the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrFrontierExhausted indicates that the frontier ran dry while reachable
	// vertices were still unsettled. It can only happen when the graph is
	// mutated during a solve.
	ErrFrontierExhausted = errors.New("dijkstra: frontier exhausted before all reachable vertices were settled")

	// ErrUnreachable indicates that the requested vertex has no path from the source.
	ErrUnreachable = errors.New("dijkstra: vertex is unreachable")

	// ErrBrokenPath indicates a predecessor chain longer than the vertex count.
	ErrBrokenPath = errors.New("dijkstra: predecessor chain does not terminate")
)

// Options configures a single Solve call.
type Options struct {
	Logger   *slog.Logger                                     // Debug sink; discards by default
	OnSettle func(id core.VertexID, dist float64) error       // First-settle hook
	OnRelax  func(from, to core.VertexID, dist float64) error // Improvement hook
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger and no hooks.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger routes solver debug records to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSettle installs fn, called once per vertex when it is first settled,
// with its final distance. Returning an error aborts the solve.
func WithOnSettle(fn func(id core.VertexID, dist float64) error) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithOnRelax installs fn, called each time the edge from→to strictly lowers
// the distance of to. Returning an error aborts the solve.
func WithOnRelax(fn func(from, to core.VertexID, dist float64) error) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// Stats describes the work done by one Solve call.
type Stats struct {
	Reachable   int // size of the reachable set, source included
	Settled     int // distinct vertices settled; equals Reachable on success
	Pops        int // frontier extractions, stale ones included
	StalePops   int // extractions of an already-settled vertex
	Pushes      int // frontier insertions, source included
	EdgeScans   int // edges examined into unsettled targets
	Relaxations int // edges that strictly lowered a distance label
}
