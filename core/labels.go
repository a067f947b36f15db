// File: labels.go
// Role: Shortest-path labels (distance, predecessor) stored beside the arena.
//
// Labels are written by solvers and read by callers. Setters silently ignore
// out-of-range handles; getters return the unreached label for them.

package core

// Labels is a snapshot of every vertex's distance and predecessor, keyed by handle.
type Labels struct {
	Dist []float64
	Prev []VertexID
}

// Dist returns the current distance label of id (+Inf when unreached or unknown).
func (g *Graph) Dist(id VertexID) float64 {
	if !g.Has(id) {
		return Unreached
	}

	return g.dist[id]
}

// Prev returns the current predecessor of id (NoVertex when none or unknown).
func (g *Graph) Prev(id VertexID) VertexID {
	if !g.Has(id) {
		return NoVertex
	}

	return g.prev[id]
}

// SetDist overwrites the distance label of id.
func (g *Graph) SetDist(id VertexID, d float64) {
	if g.Has(id) {
		g.dist[id] = d
	}
}

// SetPrev overwrites the predecessor label of id.
func (g *Graph) SetPrev(id VertexID, p VertexID) {
	if g.Has(id) {
		g.prev[id] = p
	}
}

// ResetLabels puts every vertex back into the unreached state.
// Complexity: O(V).
func (g *Graph) ResetLabels() {
	for i := range g.dist {
		g.dist[i] = Unreached
		g.prev[i] = NoVertex
	}
}

// Labels returns a copy of all labels.
func (g *Graph) Labels() Labels {
	l := Labels{
		Dist: make([]float64, len(g.dist)),
		Prev: make([]VertexID, len(g.prev)),
	}
	copy(l.Dist, g.dist)
	copy(l.Prev, g.prev)

	return l
}
