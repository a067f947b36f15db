package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/core"
)

// PathTo reconstructs the shortest path ending at target from the labels left
// by the last Solve on g. The result runs from the source to target, both
// included; for the source itself it is a single element.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrUnreachable (Dist is +Inf),
// ErrBrokenPath (the predecessor chain is longer than the vertex count).
//
// Complexity: O(path length).
func PathTo(g *core.Graph, target core.VertexID) ([]core.VertexID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Has(target) {
		return nil, fmt.Errorf("%w: target=%d", ErrVertexNotFound, target)
	}
	if math.IsInf(g.Dist(target), 1) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, g.Name(target))
	}

	limit := g.VertexCount()
	path := make([]core.VertexID, 0, 8)
	for v := target; v != core.NoVertex; v = g.Prev(v) {
		if len(path) == limit {
			return nil, fmt.Errorf("%w: from %q", ErrBrokenPath, g.Name(target))
		}
		path = append(path, v)
	}

	// Reverse in place: collected target→source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
