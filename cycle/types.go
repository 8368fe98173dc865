// SPDX-License-Identifier: MIT
// Package cycle defines the arena chain, handles, options and sentinel errors.

package cycle

import (
	"errors"
	"fmt"
)

// ErrHandleNotFound indicates a Handle that does not address a cell of the Chain.
var ErrHandleNotFound = errors.New("cycle: handle not found")

// Handle addresses a cell within its Chain. It is a non-owning reference.
type Handle int

// Nil is the absent Handle: the forward link of a tail, or an empty head.
const Nil Handle = -1

// cell is one arena slot.
type cell struct {
	value int
	next  Handle
}

// Chain is an arena of linked cells. Links are handles, so a cell may point to
// any cell of the same chain, including an earlier one.
// The zero value is an empty chain ready to use.
type Chain struct {
	cells []cell
	last  Handle // tail of the most recent Append run; Nil before any Append
	began bool   // whether Append has ever run
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{last: Nil}
}

// Len returns the number of cells in the arena.
func (c *Chain) Len() int {
	return len(c.cells)
}

// Add allocates a cell holding v whose forward link is next (Nil for a tail).
func (c *Chain) Add(v int, next Handle) (Handle, error) {
	if next != Nil && !c.valid(next) {
		return Nil, fmt.Errorf("Add(next=%d): %w", next, ErrHandleNotFound)
	}
	c.cells = append(c.cells, cell{value: v, next: next})

	return Handle(len(c.cells) - 1), nil
}

// Append allocates one cell per value, each linked to the next, and links the
// tail of the previous Append run to the first new cell. It returns the handle
// of the first new cell, or Nil when values is empty.
func (c *Chain) Append(values ...int) Handle {
	if len(values) == 0 {
		return Nil
	}
	if !c.began {
		c.last, c.began = Nil, true
	}

	first := Handle(len(c.cells))
	for i, v := range values {
		next := Nil
		if i < len(values)-1 {
			next = first + Handle(i) + 1
		}
		c.cells = append(c.cells, cell{value: v, next: next})
	}
	if c.last != Nil {
		c.cells[c.last].next = first
	}
	c.last = Handle(len(c.cells) - 1)

	return first
}

// Link redirects the forward link of from to to. to may be Nil (terminate) or any
// cell of the chain, earlier cells included.
func (c *Chain) Link(from, to Handle) error {
	if !c.valid(from) {
		return fmt.Errorf("Link(from=%d): %w", from, ErrHandleNotFound)
	}
	if to != Nil && !c.valid(to) {
		return fmt.Errorf("Link(to=%d): %w", to, ErrHandleNotFound)
	}
	c.cells[from].next = to

	return nil
}

// Value returns the payload stored at h.
func (c *Chain) Value(h Handle) (int, error) {
	if !c.valid(h) {
		return 0, fmt.Errorf("Value(%d): %w", h, ErrHandleNotFound)
	}

	return c.cells[h].value, nil
}

// Next returns the forward link of h (Nil for a tail).
func (c *Chain) Next(h Handle) (Handle, error) {
	if !c.valid(h) {
		return Nil, fmt.Errorf("Next(%d): %w", h, ErrHandleNotFound)
	}

	return c.cells[h].next, nil
}

// valid reports whether h addresses a cell.
func (c *Chain) valid(h Handle) bool {
	return h >= 0 && int(h) < len(c.cells)
}

// next is the unchecked forward step used by the traversals.
func (c *Chain) next(h Handle) Handle {
	return c.cells[h].next
}

// Option configures HasCycle.
type Option func(*Options)

// Options holds HasCycle configuration.
type Options struct {
	// Identity, if true, compares tortoise and hare by Handle instead of by Value.
	Identity bool
}

// DefaultOptions returns value comparison.
func DefaultOptions() Options {
	return Options{Identity: false}
}

// WithIdentity returns an Option that compares cells by Handle.
func WithIdentity() Option {
	return func(o *Options) {
		o.Identity = true
	}
}

// Report is the outcome of Detect.
type Report struct {
	// HasCycle is true when the traversal from head never terminates.
	HasCycle bool

	// Entry is the first cell on the loop, or Nil when HasCycle is false.
	Entry Handle

	// Length is the number of cells on the loop (λ); 0 when acyclic.
	Length int

	// Tail is the number of cells before Entry (μ). For an acyclic chain it is
	// the total number of cells reachable from head.
	Tail int
}
