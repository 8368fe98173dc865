// SPDX-License-Identifier: MIT

// Package linkedlists is a small playground for singly-linked-list mechanics
// and two classic interview algorithms over linked chains.
//
// What is inside:
//
//	list/    — Node, LinkedList (front/back/positional operations) and Length
//	merge/   — merge-point finders: BruteForce, Hashed, LengthDiff
//	cycle/   — cycle-tolerant arena chain and Floyd's tortoise-and-hare detector
//	builder/ — deterministic fixtures: sample scenarios, converging pairs, cyclic chains
//	examples — runnable walkthrough of all three scenarios (go run ./examples)
//
// Quick picture of a merge and a cycle:
//
//	1 → 2 → 3 ┐                 1 → 2 → 3 → 4 → 5
//	          4 → 5 → 6                 ↑       │
//	10 → 11 ──┘                         └───────┘
//
// Anything on the front of a list is O(1); anything that has to walk is O(n).
// Nothing here is safe for concurrent use.
package linkedlists
