// SPDX-License-Identifier: MIT
// File: methods_back.go
// Role: Operations on the back of the chain; each walks from the head.

package list

// AddBack appends a cell holding v after the current tail.
// On an empty list the new cell becomes the head.
// Complexity: O(n).
func (l *LinkedList) AddBack(v int) {
	n := NewNode(v, nil)
	if l.head == nil {
		l.head = n
		l.size = 1
		return
	}

	l.tail().Next = n
	l.size++
}

// Last returns the tail value. ok is false when the list is empty.
// Complexity: O(n).
func (l *LinkedList) Last() (v int, ok bool) {
	if l.head == nil {
		return 0, false
	}

	return l.tail().Value, true
}

// DeleteLast unlinks the tail cell.
// A one-cell list becomes empty; an empty list is left as is.
// Complexity: O(n).
func (l *LinkedList) DeleteLast() {
	switch {
	case l.head == nil:
		return
	case l.head.Next == nil:
		l.head = nil
		l.size = 0
		return
	}

	// Stop on the second-to-last cell and cut its link.
	prev := l.head
	for prev.Next.Next != nil {
		prev = prev.Next
	}
	prev.Next = nil
	l.size--
}

// tail walks to the cell whose Next is nil. Callers guarantee a non-empty list.
func (l *LinkedList) tail() *Node {
	n := l.head
	for n.Next != nil {
		n = n.Next
	}

	return n
}
