// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, e.g. "Cycle: n=2 < min=3: ...".
//   • Priority when several validations fail: size, then probability, then RNG.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure: nil constructor, nil
// graph, or a literal edge list that cannot be applied.
var ErrConstructFailed = errors.New("builder: construction failed")
