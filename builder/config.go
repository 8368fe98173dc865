// SPDX-License-Identifier: MIT
// Package: linkedlists/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • valueFn   = DefaultValueFn   (1, 2, 3, ...)
//   • rng       = nil              (RandomConverging requires WithSeed/WithRand)
//   • maxPrefix = 8
//   • maxShared = 8

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// Payload strategy: index -> value.
	valueFn ValueFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Bounds for RandomConverging.
	maxPrefix int // ≥ 0
	maxShared int // ≥ 1
}

const (
	defaultMaxPrefix = 8
	defaultMaxShared = 8
)

// newBuilderConfig applies opts in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		valueFn:   DefaultValueFn,
		rng:       nil,
		maxPrefix: defaultMaxPrefix,
		maxShared: defaultMaxShared,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
