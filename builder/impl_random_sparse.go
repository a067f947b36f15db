// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like directed generator: each ordered pair (i,j) is included
//     independently with probability p. Self-loops are tried iff g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc.
//   - For each trial the RNG is drawn once for inclusion, then the weight
//     function may draw again; outcomes are fixed for a fixed seed.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed Erdős–Rényi-like
// graph over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Add all vertices deterministically.
		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}

		// 3) Sample edges over ordered pairs.
		loops := g.Looped()
		var include bool
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				switch {
				case p == probMax:
					include = true
				case p == probMin:
					include = false
				default:
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err = addEdge(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
