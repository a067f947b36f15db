// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs and handles.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph flags (loops/multi-edges).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Constructors reuse vertices that already exist by name, so several
// constructors can be layered onto one graph. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph with options bopts.
// It is the in-place counterpart of BuildGraph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// vertexFor returns the handle named name, adding the vertex if missing.
func vertexFor(g *core.Graph, name string) (core.VertexID, error) {
	if id, ok := g.Lookup(name); ok {
		return id, nil
	}

	return g.AddVertex(name)
}

// addVertices ensures vertices cfg.idFn(0..n-1) exist and returns their handles in index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]core.VertexID, error) {
	ids := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		name := cfg.idFn(i)
		id, err := vertexFor(g, name)
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, name, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// addEdge draws a cost from cfg and adds u→v.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v core.VertexID) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, g.Name(u), g.Name(v), w, err)
	}

	return nil
}
