// SPDX-License-Identifier: MIT
// File: length.go
// Role: Traversal-based length of an arbitrary chain.

package list

// Length counts the cells reachable from head by following Next until nil.
// A nil head has length 0. head need not belong to a LinkedList.
//
// Length walks the whole chain on every call; callers that need the length
// repeatedly on a LinkedList should use Len, which is kept up to date by every
// mutating method. The chain must be acyclic, otherwise Length does not return.
//
// Complexity: O(n) time, O(1) space.
func Length(head *Node) int {
	count := 0
	for n := head; n != nil; n = n.Next {
		count++
	}

	return count
}
