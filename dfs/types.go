// Package dfs defines types and options for the depth-first reachability scan.
package dfs

import (
	"errors"

	"github.com/katalvlaran/shortpath/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Reachable.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start handle does not address
	// a vertex of the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of the reachability scan.
type Option func(*Options)

// Options holds configurable parameters for Reachable.
type Options struct {
	// OnVisit, if non-nil, is invoked once per vertex when it is first
	// visited (pre-order). Returning an error aborts the scan.
	OnVisit func(id core.VertexID) error
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{OnVisit: nil}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.VertexID) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
