// SPDX-License-Identifier: MIT
// Package: linkedlists/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Converging: shared=0 < min=1: ...").
//   • Constructors never panic; option constructors (WithX) panic on meaningless input.

package builder

import "errors"

// ErrTooFewNodes indicates that a length parameter is below the constructor's minimum
// (negative prefix, empty shared tail, n < 1 for Cyclic).
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrBadEntry indicates a Cyclic entry index outside [-1, n-1].
var ErrBadEntry = errors.New("builder: cycle entry out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
