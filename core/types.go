// Package core defines the arena-backed Graph, the VertexID handle, the Edge
// record, and the per-vertex shortest-path labels (distance, predecessor).
//
// This file declares sentinel errors, VertexID, Edge, Graph, GraphOption and
// the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex name is the empty string.
//	ErrDuplicateVertex     - vertex name already registered.
//	ErrVertexNotFound      - handle or name does not address a vertex.
//	ErrBadCost             - negative, NaN or infinite edge cost.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex name is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that a vertex with the same name already exists.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadCost indicates an edge cost that is negative, NaN or infinite.
	ErrBadCost = errors.New("core: edge cost must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// VertexID is a stable handle into the vertex arena of a Graph.
// Handles are dense: the n-th added vertex gets handle n-1.
type VertexID int

// NoVertex is the handle used for "no predecessor".
const NoVertex VertexID = -1

// Unreached is the initial distance label of every vertex.
var Unreached = math.Inf(1)

// Edge is a directed, weighted connection owned by its source vertex.
// To is a handle, not a pointer, so edges never keep vertices alive on their own.
type Edge struct {
	// To is the target vertex.
	To VertexID

	// Cost is the non-negative traversal cost.
	Cost float64
}

// vertex is the arena record for one vertex.
type vertex struct {
	name  string
	edges []Edge
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithCapacity preallocates room for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// Graph is a directed, weighted graph stored as a vertex arena.
//
// Vertex records live in a slice indexed by VertexID. The shortest-path labels
// are kept in companion slices keyed by the same handle, so a solver can write
// them without touching the vertex records.
//
// Graph is not safe for concurrent use. A solve mutates the labels in place;
// callers must not run two solves, or a solve and a mutation, at the same time.
type Graph struct {
	// Configuration flags
	allowLoops bool
	allowMulti bool
	capHint    int

	// Storage
	vertices []vertex
	index    map[string]VertexID
	edges    int

	// Labels, indexed by VertexID.
	dist []float64
	prev []VertexID
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops and parallel edges are rejected.
// Complexity: O(1), or O(n) with WithCapacity(n).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	g.vertices = make([]vertex, 0, g.capHint)
	g.index = make(map[string]VertexID, g.capHint)
	g.dist = make([]float64, 0, g.capHint)
	g.prev = make([]VertexID, 0, g.capHint)

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
