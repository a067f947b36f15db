// Package dfs implements the reachability scanner: a depth-first walk that
// returns the exact set of vertices reachable from a source vertex.
//
// What:
//
//   - Reachable(g, source, opts...) returns a *core.Set holding the source and
//     every vertex reachable from it along outgoing edges.
//   - The shortest-path solver uses the size of this set as its termination
//     bound: it stops once it has settled exactly that many vertices.
//
// How:
//
//   - Iterative walk with an explicit stack; no recursion depth limit.
//   - Visited bitset sized to the vertex arena. A vertex is marked on first
//     visit and never expanded again, so cyclic graphs terminate.
//   - Visit order matches recursive pre-order (edges in insertion order).
//
// Options:
//
//   - WithOnVisit(fn)  pre-order hook; an error aborts the scan.
//
// Complexity:
//
//   - Time O(V+E), Memory O(V) for the bitset plus O(E) worst-case stack.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  source handle not in graph
//   - hook errors             propagated from OnVisit, wrapped
package dfs
