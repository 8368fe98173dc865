// SPDX-License-Identifier: MIT
// File: methods_position.go
// Role: 0-based positional operations with explicit range checks.
//
// Range policy:
//   - Insert accepts 0 ≤ pos ≤ Len() (pos == Len() appends).
//   - Delete and Get accept 0 ≤ pos < Len().
//   - Anything else returns ErrPositionOutOfRange and leaves the list untouched,
//     so no walk ever steps past the tail.

package list

import "fmt"

// Insert splices a cell holding v so that it ends up at position pos.
// Position 0 is AddFront; otherwise the walk stops pos-1 steps from the head and
// the new cell is linked after that point.
//
// Errors:
//   - ErrPositionOutOfRange: pos < 0 or pos > Len().
//
// Complexity: O(pos).
func (l *LinkedList) Insert(pos, v int) error {
	if pos < 0 || pos > l.size {
		return fmt.Errorf("Insert(pos=%d, len=%d): %w", pos, l.size, ErrPositionOutOfRange)
	}
	if pos == 0 {
		l.AddFront(v)
		return nil
	}

	prev := l.nodeAt(pos - 1)
	prev.Next = NewNode(v, prev.Next)
	l.size++

	return nil
}

// Delete unlinks the cell at position pos.
// Position 0 is DeleteFirst; otherwise the predecessor is linked straight to the
// removed cell's successor.
//
// Errors:
//   - ErrPositionOutOfRange: pos < 0 or pos ≥ Len() (including any pos on an empty list).
//
// Complexity: O(pos).
func (l *LinkedList) Delete(pos int) error {
	if err := l.checkIndex("Delete", pos); err != nil {
		return err
	}
	if pos == 0 {
		l.DeleteFirst()
		return nil
	}

	prev := l.nodeAt(pos - 1)
	prev.Next = prev.Next.Next
	l.size--

	return nil
}

// Get returns the value stored at position pos.
//
// Errors:
//   - ErrPositionOutOfRange: pos < 0 or pos ≥ Len().
//
// Complexity: O(pos).
func (l *LinkedList) Get(pos int) (int, error) {
	if err := l.checkIndex("Get", pos); err != nil {
		return 0, err
	}

	return l.nodeAt(pos).Value, nil
}

// checkIndex validates an index that must address an existing cell.
func (l *LinkedList) checkIndex(method string, pos int) error {
	if pos < 0 || pos >= l.size {
		return fmt.Errorf("%s(pos=%d, len=%d): %w", method, pos, l.size, ErrPositionOutOfRange)
	}

	return nil
}

// nodeAt walks pos steps from the head. Callers have already range-checked pos.
func (l *LinkedList) nodeAt(pos int) *Node {
	n := l.head
	for i := 0; i < pos; i++ {
		n = n.Next
	}

	return n
}
