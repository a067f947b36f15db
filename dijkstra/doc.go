// Package dijkstra provides the shortest-path solver: Dijkstra's algorithm
// driven by a lazy min-priority frontier, bounded by a reachability scan.
//
// Overview:
//
//   - Solve(g, source) computes, for every vertex reachable from source, the
//     minimal total edge cost and a predecessor on one shortest path. Results
//     are written in place into the graph's labels (g.Dist, g.Prev).
//   - The reachable set is computed first with dfs.Reachable. The main loop
//     stops as soon as the number of settled vertices equals its size, so
//     unreachable vertices are never touched and keep Dist = +Inf.
//   - The frontier is a min-heap of (vertex, cost) steps that may contain
//     several entries per vertex. Every examined edge into an unsettled vertex
//     pushes that vertex with its current label, improved or not.
//
// Algorithm, per iteration:
//
//  1. Pop the cheapest step; call its vertex u.
//  2. Add u to the settled set. If u was already settled the entry is stale:
//     count it and go back to 1 without touching u's edges.
//  3. For each edge u→v with v unsettled: if dist(u)+cost < dist(v), lower
//     dist(v) and set prev(v)=u; push (v, dist(v)).
//
// Tie-break:
//
//   - Steps of equal cost leave the frontier in the order they entered it.
//     This fixes extraction order; it never changes the final distances.
//
// Preconditions:
//
//   - Edge costs are non-negative. The solver does not check this; core.Graph
//     refuses negative, NaN and infinite costs when edges are added.
//   - The graph is not mutated during Solve.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E); each vertex is expanded once, so there is at
//     most one push per edge plus the source.
//   - Space: O(V + E) for the sets and the frontier.
//
// Supplementary API:
//
//   - PathTo(g, target) rebuilds the source→target path from predecessors.
//   - Stats reports pops, stale pops, pushes, edge scans and relaxations.
//   - WithOnSettle / WithOnRelax hooks observe progress; WithLogger enables
//     debug records.
//
// Thread safety:
//
//   - Solve mutates g. Never run two solves on the same graph concurrently;
//     solves over different graphs are independent.
package dijkstra
