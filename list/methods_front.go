// SPDX-License-Identifier: MIT
// File: methods_front.go
// Role: O(1) operations on the front of the chain and whole-list state.

package list

// AddFront links a new cell holding v ahead of the current head.
// Complexity: O(1).
func (l *LinkedList) AddFront(v int) {
	l.head = NewNode(v, l.head)
	l.size++
}

// First returns the head value. ok is false when the list is empty.
// Complexity: O(1).
func (l *LinkedList) First() (v int, ok bool) {
	if l.head == nil {
		return 0, false
	}

	return l.head.Value, true
}

// DeleteFirst unlinks the head cell. It is a no-op on an empty list.
// Complexity: O(1).
func (l *LinkedList) DeleteFirst() {
	if l.head == nil {
		return
	}
	l.head = l.head.Next
	l.size--
}

// IsEmpty reports whether the list has no cells.
// Complexity: O(1).
func (l *LinkedList) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of cells in the list.
// Complexity: O(1); see Length for the traversal-based count on a raw head.
func (l *LinkedList) Len() int {
	return l.size
}

// Clear drops the whole chain. The detached cells become unreachable and are
// reclaimed by the garbage collector.
// Complexity: O(1).
func (l *LinkedList) Clear() {
	l.head = nil
	l.size = 0
}
