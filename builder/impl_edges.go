// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_edges.go - Edges(list) constructor for literal graph data.
//
// Contract:
//   - Endpoints are added on first mention (From before To), so handle order
//     follows the literal order of the list.
//   - Costs come from the list; cfg.weightFn is not consulted.
//   - Empty endpoint names → ErrConstructFailed (wrapping core.ErrEmptyVertexID).
//
// Complexity: O(len(list)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const methodEdges = "Edges"

// EdgeSpec is one literal directed edge.
type EdgeSpec struct {
	From string
	To   string
	Cost float64
}

// Edges returns a Constructor that adds every edge of list in order.
func Edges(list []EdgeSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, e := range list {
			if e.From == "" || e.To == "" {
				return fmt.Errorf("%s: edge %d: %w: %w", methodEdges, i, core.ErrEmptyVertexID, ErrConstructFailed)
			}
			u, err := vertexFor(g, e.From)
			if err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodEdges, e.From, err)
			}
			v, err := vertexFor(g, e.To)
			if err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodEdges, e.To, err)
			}
			if err = g.AddEdge(u, v, e.Cost); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodEdges, e.From, e.To, e.Cost, err)
			}
		}

		return nil
	}
}

// Vertices returns a Constructor that declares vertices by name, in order,
// without edges. Already present names are kept.
func Vertices(names ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, name := range names {
			if _, err := vertexFor(g, name); err != nil {
				return fmt.Errorf("Vertices: AddVertex(%s): %w", name, err)
			}
		}

		return nil
	}
}
