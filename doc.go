// Package shortpath is an in-memory toolkit for single-source shortest paths
// over directed graphs with non-negative edge costs.
//
// Everything is organized under these subpackages:
//
//	core/      - arena Graph, VertexID handles, edges and the distance/predecessor labels
//	dfs/       - iterative depth-first reachability scan
//	dijkstra/  - the solver (lazy priority frontier bounded by the reachable set) and PathTo
//	pathtree/  - distance table and shortest-path tree printers
//	builder/   - deterministic graph constructors (literal edges, paths, cycles, random)
//	graphfile/ - YAML/JSON graph documents
//	metrics/   - Prometheus solver metrics
//	telemetry/ - OpenTelemetry spans around solves
//	store/     - SQLite/MySQL persistence of solve results
//
// Quick ASCII example:
//
//	     9
//	v0 ──────▶ v1
//	 │ 6       ▲
//	 ▼         │ 2
//	v2 ────────┘
//
// The direct edge costs 9, the detour through v2 costs 8; Solve from v0 sets
// Dist(v1) = 8 and Prev(v1) = v2.
//
//	go install github.com/katalvlaran/shortpath/cmd/shortpath@latest
package shortpath
