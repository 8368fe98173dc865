// SPDX-License-Identifier: MIT

// Package list provides a singly-linked list of integer payloads and the
// Length utility that counts nodes from any raw head pointer.
//
// The list is a chain of *Node cells hanging off a head pointer:
//
//	head → [4] → [1] → [2] → [3] → [5] → nil
//
// Anything on the front is O(1); anything that has to walk is O(n):
//
//	// Front of the chain
//	AddFront(v int)                 // O(1)
//	First() (int, bool)             // O(1)
//	DeleteFirst()                   // O(1)
//
//	// Back of the chain
//	AddBack(v int)                  // O(n)
//	Last() (int, bool)              // O(n)
//	DeleteLast()                    // O(n)
//
//	// Positional access (0-based)
//	Insert(pos, v int) error        // O(n), 0 ≤ pos ≤ Len()
//	Delete(pos int) error           // O(n), 0 ≤ pos < Len()
//	Get(pos int) (int, error)       // O(n), 0 ≤ pos < Len()
//
//	// Whole-list
//	IsEmpty() bool, Len() int, Clear()   // O(1)
//	ToSlice() []int, String() string     // O(n)
//
// Errors:
//
//	ErrPositionOutOfRange - Insert/Delete/Get given a position the walk cannot reach.
//	                        The list is left untouched.
//
// Queries that may find nothing (First, Last) return a (value, ok) pair so that an
// empty list is never confused with a stored zero.
//
// The merge and cycle packages work on raw *Node heads (see Head and Length),
// independent of the LinkedList wrapper.
//
// A LinkedList is not safe for concurrent use.
package list
