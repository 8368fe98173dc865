// SPDX-License-Identifier: MIT
// Package: linkedlists/builder
//
// api.go — sample scenarios and the Pair result type.
//
// The sample scenarios are fixed, hand-wired fixtures. They take no options and
// cannot fail, so they return values directly.

package builder

import (
	"github.com/katalvlaran/linkedlists/cycle"
	"github.com/katalvlaran/linkedlists/list"
)

// Pair is two chains converging on a shared tail.
type Pair struct {
	// A and B are the heads of the two chains.
	A, B *list.Node

	// Merge is the first shared cell (reachable from both A and B).
	Merge *list.Node

	// PrefixA and PrefixB count the cells before Merge on each side; Shared counts
	// the cells from Merge to the tail inclusive.
	PrefixA, PrefixB, Shared int
}

// SampleList replays addFront 3, 2, 1, 4 and addBack 5, giving [4, 1, 2, 3, 5].
func SampleList() *list.LinkedList {
	l := list.New()
	l.AddFront(3)
	l.AddFront(2)
	l.AddFront(1)
	l.AddFront(4)
	l.AddBack(5)

	return l
}

// SampleMerge wires the chains 1→2→3→4→5→6 and 10→11→[4], where [4] is the same
// cell reached from the first chain.
func SampleMerge() (a, b *list.Node) {
	node4 := list.NewNode(4, list.NewNode(5, list.NewNode(6, nil)))
	a = list.NewNode(1, list.NewNode(2, list.NewNode(3, node4)))
	b = list.NewNode(10, list.NewNode(11, node4))

	return a, b
}

// SampleCycle wires 1→2→3→4→5 and links 5 back to 3.
func SampleCycle() (*cycle.Chain, cycle.Handle) {
	c := cycle.NewChain()
	head := c.Append(1, 2)
	entry := c.Append(3, 4, 5)
	// Handles are dense: 5 sits two cells after 3. Both handles are valid.
	_ = c.Link(entry+2, entry)

	return c, head
}
