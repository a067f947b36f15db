// Package builder provides deterministic, functional-options constructors
// for directed, weighted core.Graph fixtures: literal edge lists for demos
// and graph files, and generated topologies for tests and benchmarks.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...) / Apply(g, bopts, cons...):
//     run constructors in order; each reuses vertices that already exist.
//   - Constructors:
//     – Edges(list), Vertices(names...):  literal data.
//     – Path(n), Cycle(n), Star(n), Complete(n):  fixed topologies.
//     – RandomSparse(n, p):  directed Erdős–Rényi sample (needs WithSeed/WithRand).
//   - Vertex-name schemes (IDFn): DefaultIDFn and PrefixedIDFn(prefix).
//   - Edge-cost distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntegerWeightFn.
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical graphs, handles included.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with method context.
package builder
