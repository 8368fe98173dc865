// SPDX-License-Identifier: MIT
// File: types.go
// Role: Node and LinkedList types, constructors and sentinel errors.

package list

import "errors"

// ErrPositionOutOfRange indicates that a positional operation (Insert, Delete, Get)
// was given a position outside the range reachable from the head.
var ErrPositionOutOfRange = errors.New("list: position out of range")

// Node is a single cell of a singly-linked chain.
//
// Value is set at creation and is never rewritten by this module; only Next is
// relinked, and only by LinkedList operations.
type Node struct {
	// Value is the integer payload.
	Value int

	// Next is the successor cell, or nil for the tail.
	Next *Node
}

// NewNode returns a cell holding v whose successor is next (nil for a tail).
// Complexity: O(1).
func NewNode(v int, next *Node) *Node {
	return &Node{Value: v, Next: next}
}

// LinkedList owns a chain of Nodes through its head pointer.
//
// The zero value is an empty list ready to use. size mirrors the chain length and
// is kept in step by every mutating method, so Len is O(1).
type LinkedList struct {
	head *Node // first cell, nil when empty
	size int   // number of cells reachable from head
}

// New returns a list holding values in the given order.
// Complexity: O(len(values)).
func New(values ...int) *LinkedList {
	l := &LinkedList{}
	if len(values) == 0 {
		return l
	}

	// Build the chain front to back, keeping a tail cursor so construction stays linear.
	l.head = NewNode(values[0], nil)
	tail := l.head
	for _, v := range values[1:] {
		tail.Next = NewNode(v, nil)
		tail = tail.Next
	}
	l.size = len(values)

	return l
}
