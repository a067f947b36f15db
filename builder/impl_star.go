// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center", then leaves via cfg.idFn for i = 1..n-1.
//   - Emits spokes Center → leaf[i] in ascending i.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	// StarCenterID is the fixed name of the hub vertex.
	StarCenterID = "Center"
)

// Star returns a Constructor that builds an out-star with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub, err := vertexFor(g, StarCenterID)
		if err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, StarCenterID, err)
		}
		var leaf core.VertexID
		for i := 1; i < n; i++ {
			name := cfg.idFn(i)
			if leaf, err = vertexFor(g, name); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, name, err)
			}
			if err = addEdge(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
