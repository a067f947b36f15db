// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over a core.Graph with non-negative edge costs.
//
// Notes on implementation choices:
//
//   - The main loop is bounded by the reachable set: it runs until exactly as
//     many vertices are settled as the depth-first scan found reachable.
//   - Lazy frontier: every scan of an edge into an unsettled vertex pushes that
//     vertex with its current label, improved or not. Duplicates are never
//     removed; the settled set makes them harmless.
//   - A stale pop (vertex already settled) is counted and dropped; the
//     vertex's edges were scanned when it was settled. Each vertex is
//     expanded once, so pushes are bounded by E+1.
//   - Equal-cost entries are extracted in insertion order.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dfs"
)

// Solve computes shortest distances from source to every vertex of g and
// writes them into g's labels: g.Dist(v) is the minimal total cost and
// g.Prev(v) the previous vertex on one shortest path. Vertices that are not
// reachable keep Dist = +Inf and Prev = core.NoVertex. All labels are reset
// before the run, so repeated solves on the same graph are independent.
//
// Preconditions (not checked): edge costs are non-negative and the graph is
// not mutated during the call. core.Graph already rejects negative costs.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log E) with the lazy frontier: each vertex is expanded
//     once, so there are at most E+1 pushes.
//   - Space: O(V + E).
func Solve(g *core.Graph, source core.VertexID, opts ...Option) (Stats, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Stats{}, ErrNilGraph
	}
	if !g.Has(source) {
		return Stats{}, fmt.Errorf("%w: source=%d", ErrVertexNotFound, source)
	}

	// 3) Bound the main loop by the reachable set.
	reachable, err := dfs.Reachable(g, source)
	if err != nil {
		return Stats{}, fmt.Errorf("dijkstra: reachability scan: %w", err)
	}
	cfg.Logger.Debug("reachable set computed",
		"source", g.Name(source),
		"size", reachable.Len())

	r := &runner{
		g:         g,
		options:   cfg,
		reachable: reachable,
		settled:   core.NewSet(g.VertexCount()),
		pq:        make(frontier, 0, reachable.Len()),
	}
	r.stats.Reachable = reachable.Len()

	// 4) Initialize labels and frontier, then run.
	r.init(source)
	if err = r.process(); err != nil {
		return r.stats, err
	}

	cfg.Logger.Debug("solve finished",
		"source", g.Name(source),
		"settled", r.stats.Settled,
		"pops", r.stats.Pops,
		"stale_pops", r.stats.StalePops,
		"relaxations", r.stats.Relaxations)

	return r.stats, nil
}

// runner holds the mutable state for a single solve.
type runner struct {
	g         *core.Graph
	options   Options
	reachable *core.Set // termination bound
	settled   *core.Set // vertices whose labels are final
	pq        frontier  // lazy min-heap; may hold duplicates
	seq       uint64    // next insertion sequence number
	stats     Stats
}

// init resets every label, sets the source distance to zero and pushes it.
func (r *runner) init(source core.VertexID) {
	r.g.ResetLabels()
	r.g.SetDist(source, 0)
	heap.Init(&r.pq)
	r.push(source, 0)
}

// push inserts (id, cost) into the frontier with the next sequence number.
func (r *runner) push(id core.VertexID, cost float64) {
	heap.Push(&r.pq, step{id: id, cost: cost, seq: r.seq})
	r.seq++
	r.stats.Pushes++
}

// process is the main loop: extract the cheapest entry, settle it, relax its
// outgoing edges, until |settled| == |reachable|. Stale entries are skipped.
func (r *runner) process() error {
	var st step
	for r.settled.Len() != r.reachable.Len() {
		if r.pq.Len() == 0 {
			return fmt.Errorf("%w: settled %d of %d",
				ErrFrontierExhausted, r.settled.Len(), r.reachable.Len())
		}

		// 1) Extract the minimum-cost entry.
		st = heap.Pop(&r.pq).(step)
		r.stats.Pops++

		// 2) Settle it. A duplicate entry for a settled vertex is dropped.
		if !r.settled.Add(st.id) {
			r.stats.StalePops++
			continue
		}
		r.stats.Settled++
		if r.options.OnSettle != nil {
			if err := r.options.OnSettle(st.id, r.g.Dist(st.id)); err != nil {
				return fmt.Errorf("dijkstra: OnSettle hook for %q: %w", r.g.Name(st.id), err)
			}
		}

		// 3) Relax outgoing edges.
		if err := r.relax(st.id); err != nil {
			return err
		}
	}

	return nil
}

// relax scans the outgoing edges of u into unsettled vertices. A strictly
// cheaper candidate updates the target's distance and predecessor; the target
// is pushed with its current distance either way.
func (r *runner) relax(u core.VertexID) error {
	du := r.g.Dist(u)
	var candidate float64
	for _, e := range r.g.Edges(u) {
		if r.settled.Has(e.To) {
			continue
		}
		r.stats.EdgeScans++

		candidate = du + e.Cost
		if candidate < r.g.Dist(e.To) {
			r.g.SetDist(e.To, candidate)
			r.g.SetPrev(e.To, u)
			r.stats.Relaxations++
			if r.options.OnRelax != nil {
				if err := r.options.OnRelax(u, e.To, candidate); err != nil {
					return fmt.Errorf("dijkstra: OnRelax hook for %q→%q: %w", r.g.Name(u), r.g.Name(e.To), err)
				}
			}
		}

		r.push(e.To, r.g.Dist(e.To))
	}

	return nil
}
