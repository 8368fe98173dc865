// SPDX-License-Identifier: MIT
// Package: linkedlists/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: randomness only via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig before use.
type BuilderOption func(*builderConfig)

// WithValueScheme sets the payload generator: index → value.
// Panics on nil.
func WithValueScheme(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueScheme(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxPrefix bounds each random prefix length to [0, n]. Panics if n < 0.
func WithMaxPrefix(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithMaxPrefix(n<0)")
	}
	return func(c *builderConfig) {
		c.maxPrefix = n
	}
}

// WithMaxShared bounds the random shared-tail length to [1, n]. Panics if n < 1.
func WithMaxShared(n int) BuilderOption {
	if n < minShared {
		panic("builder: WithMaxShared(n<1)")
	}
	return func(c *builderConfig) {
		c.maxShared = n
	}
}
