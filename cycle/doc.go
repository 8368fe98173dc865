// SPDX-License-Identifier: MIT

// Package cycle detects cycles in singly-linked chains with Floyd's
// tortoise-and-hare traversal.
//
// What:
//
//   - Chain: an arena of cells addressed by Handle. A cell's forward link is a
//     plain Handle, so it may point back to any earlier cell without owning it;
//     every cell is owned by the Chain alone.
//   - HasCycle: Floyd's two-pointer test. The tortoise moves one cell per round,
//     the hare two; both start at head. If the hare runs off the end the chain
//     terminates, otherwise the two meet inside the loop.
//   - Detect: Floyd's full analysis. After the meeting it locates the loop entry
//     (phase 2) and measures the loop (phase 3).
//
// Example topology (1 → 2 → 3 → 4 → 5 → back to 3):
//
//	[1] → [2] → [3] → [4] → [5]
//	             ↑           │
//	             └───────────┘
//
// Comparison:
//
//	HasCycle compares the tortoise and hare by Value by default. WithIdentity()
//	compares handles instead, which is the only reliable check when values repeat.
//	Detect always compares handles.
//
// Complexity:
//
//   - HasCycle: Time O(μ+λ), Memory O(1)   (μ = tail length, λ = loop length)
//   - Detect:   Time O(μ+λ), Memory O(1)
//
// Errors:
//
//   - ErrHandleNotFound  a handle does not address a cell of the chain
//
// A nil Chain or a Nil head is an empty chain: no cycle, no error.
package cycle
