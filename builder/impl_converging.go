// SPDX-License-Identifier: MIT
// Package: linkedlists/builder
//
// impl_converging.go — Converging and RandomConverging.
//
// Contract:
//   • prefixA, prefixB ≥ 0 and shared ≥ 1 (else ErrTooFewNodes).
//   • Values by cfg.valueFn in index order: A's prefix, then B's prefix, then the shared tail.
//   • The shared tail is built once and linked from both prefixes (identity, not copies).
//
// Complexity: O(prefixA + prefixB + shared) time and cells.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkedlists/list"
)

const (
	methodConverging       = "Converging"
	methodRandomConverging = "RandomConverging"
	minShared              = 1
)

// Converging builds two chains with prefixA and prefixB private cells that merge
// into a shared tail of shared cells.
func Converging(prefixA, prefixB, shared int, opts ...BuilderOption) (Pair, error) {
	cfg := newBuilderConfig(opts...)

	return converging(methodConverging, prefixA, prefixB, shared, cfg)
}

// RandomConverging draws prefix lengths from [0, maxPrefix] and the shared length
// from [1, maxShared] using the configured RNG, then builds the pair as Converging.
// Requires WithSeed or WithRand.
func RandomConverging(opts ...BuilderOption) (Pair, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return Pair{}, fmt.Errorf("%s: %w", methodRandomConverging, ErrNeedRandSource)
	}

	prefixA := cfg.rng.Intn(cfg.maxPrefix + 1)
	prefixB := cfg.rng.Intn(cfg.maxPrefix + 1)
	shared := minShared + cfg.rng.Intn(cfg.maxShared)

	return converging(methodRandomConverging, prefixA, prefixB, shared, cfg)
}

// converging is the shared implementation; method tags the error context.
func converging(method string, prefixA, prefixB, shared int, cfg builderConfig) (Pair, error) {
	if prefixA < 0 || prefixB < 0 {
		return Pair{}, fmt.Errorf("%s: prefixA=%d prefixB=%d < 0: %w", method, prefixA, prefixB, ErrTooFewNodes)
	}
	if shared < minShared {
		return Pair{}, fmt.Errorf("%s: shared=%d < min=%d: %w", method, shared, minShared, ErrTooFewNodes)
	}

	// Shared tail first, so both prefixes can link to it.
	merge := chain(cfg.valueFn, prefixA+prefixB, shared, nil)

	return Pair{
		A:       chain(cfg.valueFn, 0, prefixA, merge),
		B:       chain(cfg.valueFn, prefixA, prefixB, merge),
		Merge:   merge,
		PrefixA: prefixA,
		PrefixB: prefixB,
		Shared:  shared,
	}, nil
}

// chain builds n cells with values fn(from) .. fn(from+n-1) ending in tail.
// It returns tail unchanged when n == 0.
func chain(fn ValueFn, from, n int, tail *list.Node) *list.Node {
	head := tail
	for i := from + n - 1; i >= from; i-- {
		head = list.NewNode(fn(i), head)
	}

	return head
}
