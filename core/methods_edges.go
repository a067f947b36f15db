// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Connect/Edges/EdgeCount/HasEdge.
// Determinism:
//   - Edges(id) returns the outgoing edges of id in insertion order.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends a directed edge from→to with the given cost to the edge
// list of from.
//
// Steps:
//  1. Validate both handles (ErrVertexNotFound).
//  2. Validate cost: finite and non-negative (ErrBadCost).
//  3. Reject self-loops unless WithLoops (ErrLoopNotAllowed).
//  4. Reject parallel edges unless WithMultiEdges (ErrMultiEdgeNotAllowed).
//
// Complexity: O(1) amortized with WithMultiEdges, O(deg(from)) otherwise.
func (g *Graph) AddEdge(from, to VertexID, cost float64) error {
	if !g.Has(from) {
		return fmt.Errorf("%w: from=%d", ErrVertexNotFound, from)
	}
	if !g.Has(to) {
		return fmt.Errorf("%w: to=%d", ErrVertexNotFound, to)
	}
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: %s→%s cost=%g", ErrBadCost, g.Name(from), g.Name(to), cost)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, g.Name(from))
	}
	if !g.allowMulti && g.HasEdge(from, to) {
		return fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, g.Name(from), g.Name(to))
	}

	g.vertices[from].edges = append(g.vertices[from].edges, Edge{To: to, Cost: cost})
	g.edges++

	return nil
}

// Connect is the name-based form of AddEdge. Missing endpoints are added
// (from first, then to), so handle order follows first mention.
func (g *Graph) Connect(from, to string, cost float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	u, err := g.ensureVertex(from)
	if err != nil {
		return err
	}
	v, err := g.ensureVertex(to)
	if err != nil {
		return err
	}

	return g.AddEdge(u, v, cost)
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to VertexID) bool {
	if !g.Has(from) {
		return false
	}
	for _, e := range g.vertices[from].edges {
		if e.To == to {
			return true
		}
	}

	return false
}

// Edges returns the outgoing edges of id in insertion order, or nil if id is
// unknown. The returned slice is owned by the graph and must not be modified.
func (g *Graph) Edges(id VertexID) []Edge {
	if !g.Has(id) {
		return nil
	}

	return g.vertices[id].edges
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return g.edges }
