// SPDX-License-Identifier: MIT
// Package: linkedlists/builder
//
// impl_cyclic.go — Cyclic(n, entry).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes); entry ∈ [-1, n-1] (else ErrBadEntry).
//   • Cells get handles 0..n-1 in order and values cfg.valueFn(0..n-1); head is handle 0.
//   • entry == -1 leaves the chain acyclic; otherwise cell n-1 links back to cell entry.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkedlists/cycle"
)

const (
	methodCyclic = "Cyclic"
	minCyclic    = 1
	acyclicEntry = -1
)

// Cyclic builds an n-cell chain whose last cell links back to cell entry.
func Cyclic(n, entry int, opts ...BuilderOption) (*cycle.Chain, cycle.Handle, error) {
	cfg := newBuilderConfig(opts...)

	if n < minCyclic {
		return nil, cycle.Nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCyclic, n, minCyclic, ErrTooFewNodes)
	}
	if entry < acyclicEntry || entry >= n {
		return nil, cycle.Nil, fmt.Errorf("%s: entry=%d not in [-1,%d]: %w", methodCyclic, entry, n-1, ErrBadEntry)
	}

	values := make([]int, n)
	for i := range values {
		values[i] = cfg.valueFn(i)
	}
	c := cycle.NewChain()
	head := c.Append(values...)

	if entry != acyclicEntry {
		if err := c.Link(cycle.Handle(n-1), cycle.Handle(entry)); err != nil {
			return nil, cycle.Nil, fmt.Errorf("%s: Link(%d→%d): %w", methodCyclic, n-1, entry, err)
		}
	}

	return c, head, nil
}
