// Package dfs implements the depth-first reachability scan used to bound the
// shortest-path main loop.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Reachable returns the set of vertices reachable from source by following
// outgoing edges transitively, source included.
//
// The walk is iterative: an explicit stack replaces recursion, and a visited
// bitset sized to the arena guards against revisits, so cycles and very deep
// graphs are both safe. Neighbors are pushed in reverse edge order, which makes
// the visit order identical to the recursive pre-order (first edge first).
// Vertex labels are not touched.
//
// Complexity: O(V + E) time, O(V + E) worst-case stack.
func Reachable(g *core.Graph, source core.VertexID, opts ...Option) (*core.Set, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Has(source) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, source)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Walk
	visited := core.NewSet(g.VertexCount())
	stack := []core.VertexID{source}
	var u core.VertexID
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A vertex may sit on the stack more than once; only the first pop counts.
		if !visited.Add(u) {
			continue
		}

		if o.OnVisit != nil {
			if err := o.OnVisit(u); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit hook for %q: %w", g.Name(u), err)
			}
		}

		edges := g.Edges(u)
		for i := len(edges) - 1; i >= 0; i-- {
			if !visited.Has(edges[i].To) {
				stack = append(stack, edges[i].To)
			}
		}
	}

	return visited, nil
}
