// SPDX-License-Identifier: MIT
// Package merge implements the three merge-point finders and the Find dispatcher.

package merge

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/linkedlists/list"
)

// Find runs the finder selected by method on heads a and b.
// Returns ErrUnknownMethod for an undeclared method.
func Find(a, b *list.Node, method Method, opts ...Option) (int, bool, error) {
	switch method {
	case MethodBruteForce:
		v, ok := BruteForce(a, b, opts...)
		return v, ok, nil
	case MethodHashed:
		v, ok := Hashed(a, b, opts...)
		return v, ok, nil
	case MethodLengthDiff:
		v, ok := LengthDiff(a, b, opts...)
		return v, ok, nil
	default:
		return 0, false, fmt.Errorf("Find(%s): %w", method, ErrUnknownMethod)
	}
}

// BruteForce scans all of b for every cell of a and returns the value of the
// first cell of a that matches any cell of b.
// Complexity: O(|a|·|b|) time, O(1) space.
func BruteForce(a, b *list.Node, opts ...Option) (int, bool) {
	eq := equalFunc(resolve(opts))
	for x := a; x != nil; x = x.Next {
		for y := b; y != nil; y = y.Next {
			if eq(x, y) {
				return x.Value, true
			}
		}
	}

	return 0, false
}

// Hashed records every cell of b in a set, then returns the value of the first
// cell of a found in that set.
// Complexity: O(|a|+|b|) time, O(|b|) space.
func Hashed(a, b *list.Node, opts ...Option) (int, bool) {
	if resolve(opts).Identity {
		return hashedBy(a, b, func(n *list.Node) *list.Node { return n })
	}

	return hashedBy(a, b, func(n *list.Node) int { return n.Value })
}

// hashedBy is Hashed over an arbitrary comparable key of each cell.
func hashedBy[K comparable](a, b *list.Node, key func(*list.Node) K) (int, bool) {
	seen := mapset.NewThreadUnsafeSet[K]()
	for y := b; y != nil; y = y.Next {
		seen.Add(key(y))
	}

	for x := a; x != nil; x = x.Next {
		if seen.Contains(key(x)) {
			return x.Value, true
		}
	}

	return 0, false
}

// LengthDiff advances the cursor on the longer chain by the length difference so
// that both cursors sit equally far from the shared tail, then walks them in
// lockstep and returns the first matching value.
// Complexity: O(|a|+|b|) time, O(1) space.
func LengthDiff(a, b *list.Node, opts ...Option) (int, bool) {
	eq := equalFunc(resolve(opts))
	lenA, lenB := list.Length(a), list.Length(b)

	// Let a be the longer chain.
	if lenB > lenA {
		a, b = b, a
		lenA, lenB = lenB, lenA
	}
	for i := 0; i < lenA-lenB; i++ {
		a = a.Next
	}

	for a != nil && b != nil {
		if eq(a, b) {
			return a.Value, true
		}
		a, b = a.Next, b.Next
	}

	return 0, false
}

// equalFunc picks the cell comparison for the resolved options.
func equalFunc(o Options) func(x, y *list.Node) bool {
	if o.Identity {
		return func(x, y *list.Node) bool { return x == y }
	}

	return func(x, y *list.Node) bool { return x.Value == y.Value }
}
