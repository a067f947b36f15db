// Package core provides the in-memory graph that the shortest-path engine
// runs on: a directed, weighted graph stored as a vertex arena.
//
// Model:
//
//   - Vertices are addressed by a dense integer handle (VertexID) assigned in
//     insertion order. Names are unique and resolvable via Lookup.
//   - Each vertex owns an ordered list of outgoing edges. An Edge holds the
//     target handle and a finite, non-negative Cost.
//   - Every vertex carries two labels written by solvers: a distance
//     (initially +Inf, see Unreached) and a predecessor (initially NoVertex).
//     Labels live in companion slices keyed by handle; read them with Dist and
//     Prev, snapshot them with Labels.
//   - Set is a bitset of handles with O(1) cardinality, used for reachable and
//     settled sets.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()        permit self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//	– WithMultiEdges()   permit parallel edges; otherwise a second from→to → ErrMultiEdgeNotAllowed.
//	– WithCapacity(n)    preallocate the arena for n vertices.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(name string) (VertexID, error)          // O(1)
//	Lookup(name string) (VertexID, bool)              // O(1)
//	Name(id) string / Has(id) bool                    // O(1)
//	Vertices() []VertexID                             // O(V)
//
//	// Edge lifecycle
//	AddEdge(from, to VertexID, cost float64) error    // O(1)†
//	Connect(from, to string, cost float64) error      // O(1)†, creates missing endpoints
//	Edges(id) []Edge                                  // O(1), insertion order
//
//	// Labels
//	Dist(id) / Prev(id) / SetDist / SetPrev           // O(1)
//	ResetLabels()                                     // O(V)
//	Labels() Labels                                   // O(V) copy
//
//	† O(deg(from)) unless WithMultiEdges, because of the parallel-edge check.
//
// Thread safety:
//
//	Graph is not safe for concurrent use. Build it, then solve it, from one goroutine.
package core
