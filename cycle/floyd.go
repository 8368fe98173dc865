// SPDX-License-Identifier: MIT
// Package cycle implements Floyd's tortoise-and-hare cycle detection.
//
// Termination: on an acyclic chain the hare reaches Nil within μ/2 rounds. On a
// cyclic chain both pointers are on the loop after μ rounds and the gap between
// them shrinks by one cell per round, so they meet within λ further rounds.

package cycle

import (
	"fmt"

	"github.com/katalvlaran/linkedlists/list"
)

// HasCycle reports whether the traversal from head revisits a cell.
// Returns (false, nil) for a nil chain or a Nil head.
// Returns ErrHandleNotFound when head does not address a cell.
func HasCycle(c *Chain, head Handle, opts ...Option) (bool, error) {
	if c == nil || head == Nil {
		return false, nil
	}
	if !c.valid(head) {
		return false, fmt.Errorf("HasCycle(head=%d): %w", head, ErrHandleNotFound)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	same := func(x, y Handle) bool { return c.cells[x].value == c.cells[y].value }
	if o.Identity {
		same = func(x, y Handle) bool { return x == y }
	}

	slow, fast := head, head
	for fast != Nil && c.next(fast) != Nil {
		slow = c.next(slow)
		fast = c.next(c.next(fast))
		if fast != Nil && same(slow, fast) {
			return true, nil
		}
	}

	return false, nil
}

// Detect runs Floyd's full analysis from head, comparing cells by Handle:
//  1. tortoise and hare until they meet or the hare runs off the end;
//  2. restart the tortoise at head, advance both one step until they meet at the entry;
//  3. walk the loop once from the entry to measure its length.
//
// Returns ErrHandleNotFound when head does not address a cell.
func Detect(c *Chain, head Handle) (*Report, error) {
	if c == nil || head == Nil {
		return &Report{Entry: Nil}, nil
	}
	if !c.valid(head) {
		return nil, fmt.Errorf("Detect(head=%d): %w", head, ErrHandleNotFound)
	}

	// 1) Meeting point, or count the acyclic chain.
	slow, fast := head, head
	met := false
	for fast != Nil && c.next(fast) != Nil {
		slow = c.next(slow)
		fast = c.next(c.next(fast))
		if slow == fast {
			met = true
			break
		}
	}
	if !met {
		n := 0
		for h := head; h != Nil; h = c.next(h) {
			n++
		}
		return &Report{Entry: Nil, Tail: n}, nil
	}

	// 2) Entry: head and the meeting point are equally far from it.
	tail := 0
	slow = head
	for slow != fast {
		slow, fast = c.next(slow), c.next(fast)
		tail++
	}

	// 3) Loop length.
	length := 1
	for h := c.next(slow); h != slow; h = c.next(h) {
		length++
	}

	return &Report{HasCycle: true, Entry: slow, Length: length, Tail: tail}, nil
}

// FromList copies the values of l into a new acyclic Chain and returns the chain
// and its head (Nil for an empty list).
func FromList(l *list.LinkedList) (*Chain, Handle) {
	c := NewChain()
	if l == nil {
		return c, Nil
	}

	return c, c.Append(l.ToSlice()...)
}
