// SPDX-License-Identifier: MIT
// File: view.go
// Role: Read-only views of the chain (raw head, values, printable form).

package list

import (
	"strconv"
	"strings"
)

// Head returns the first cell of the chain, or nil for an empty list.
// It is the entry point for algorithms that work on raw chains (Length, merge).
// Relinking cells reached through Head bypasses the list's length bookkeeping.
func (l *LinkedList) Head() *Node {
	return l.head
}

// ToSlice returns the values in head-to-tail order.
// An empty list yields an empty, non-nil slice.
// Complexity: O(n) time and space.
func (l *LinkedList) ToSlice() []int {
	out := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.Next {
		out = append(out, n.Value)
	}

	return out
}

// String renders the values as "[4, 1, 2, 3, 5]"; an empty list renders as "[]".
func (l *LinkedList) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.Next {
		if n != l.head {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(n.Value))
	}
	sb.WriteByte(']')

	return sb.String()
}
