// SPDX-License-Identifier: MIT

// Package merge finds the point where two singly-linked chains converge.
//
// What:
//
//	Two chains A and B are distinct up to some cell, after which they share every
//	remaining cell (the same *list.Node, not a copy):
//
//	  A: 1 → 2 → 3 ┐
//	               4 → 5 → 6 → nil
//	  B:  10 → 11 ┘
//
//	The merge point is the first shared cell; the finders return its value (4).
//
// Finders (all agree on valid input, they differ only in cost):
//
//   - BruteForce: for each cell of A scan all of B.   Time O(|A|·|B|), Memory O(1)
//   - Hashed:     record B in a set, then walk A.     Time O(|A|+|B|), Memory O(|B|)
//   - LengthDiff: skip the length difference on the   Time O(|A|+|B|), Memory O(1)
//     longer chain, then advance both in lockstep.
//
// Comparison:
//
//	By default cells are compared by Value, which is only correct while values are
//	unique across both chains. WithIdentity() switches every finder to comparing
//	the cells themselves, the exact definition of a merge point.
//
// Results are (value, ok); ok is false when no match exists after full traversal.
// Nil heads are not special-cased: they simply produce no match.
//
// Find dispatches to a finder by Method and reports ErrUnknownMethod otherwise.
package merge
