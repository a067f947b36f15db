// Package pathtree renders the labels left by dijkstra.Solve as text.
//
//   - WriteDistances lists every vertex with its distance from the source,
//     in handle order, under a one-line header.
//   - WriteTree prints the shortest-path tree rooted at the source: one line
//     per vertex, indented three spaces per level, children in edge order.
//     A neighbor is a child only if its predecessor label is the current
//     vertex, so the printed tree is exactly the predecessor tree.
//
// Distances are printed in the shortest form that round-trips
// (strconv.FormatFloat with 'f', -1); unreachable vertices print +Inf.
package pathtree
