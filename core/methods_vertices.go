// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Handles are assigned in insertion order; Vertices() returns them ascending.

package core

import "fmt"

// AddVertex registers a new vertex named name and returns its handle.
// The vertex starts unreached: distance +Inf, no predecessor.
//
// Errors:
//   - ErrEmptyVertexID if name == "".
//   - ErrDuplicateVertex if name is already registered.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name string) (VertexID, error) {
	if name == "" {
		return NoVertex, ErrEmptyVertexID
	}
	if _, exists := g.index[name]; exists {
		return NoVertex, fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}

	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, vertex{name: name})
	g.index[name] = id
	g.dist = append(g.dist, Unreached)
	g.prev = append(g.prev, NoVertex)

	return id, nil
}

// ensureVertex returns the handle for name, adding the vertex if missing.
func (g *Graph) ensureVertex(name string) (VertexID, error) {
	if id, ok := g.index[name]; ok {
		return id, nil
	}

	return g.AddVertex(name)
}

// Has reports whether id addresses a vertex of g.
func (g *Graph) Has(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// Lookup returns the handle registered for name.
func (g *Graph) Lookup(name string) (VertexID, bool) {
	id, ok := g.index[name]

	return id, ok
}

// Name returns the name of vertex id, or "" if id is out of range.
func (g *Graph) Name(id VertexID) string {
	if !g.Has(id) {
		return ""
	}

	return g.vertices[id].name
}

// Vertices returns all handles in ascending (insertion) order.
// Complexity: O(V).
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, len(g.vertices))
	for i := range out {
		out[i] = VertexID(i)
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }
