// SPDX-License-Identifier: MIT

// Package builder provides the payload schemes used by the constructors.
package builder

// ValueFn generates a payload from a zero-based cell index.
// It must be pure and deterministic; to keep value comparison exact it should
// also be injective (distinct indices → distinct values).
type ValueFn func(idx int) int

// DefaultValueFn numbers cells from one: 0→1, 1→2, ...
func DefaultValueFn(idx int) int {
	return idx + 1
}

// ZeroBasedValueFn uses the index itself: 0→0, 1→1, ...
func ZeroBasedValueFn(idx int) int {
	return idx
}

// OffsetValueFn returns a scheme numbering cells from base: 0→base, 1→base+1, ...
func OffsetValueFn(base int) ValueFn {
	return func(idx int) int {
		return base + idx
	}
}

// StrideValueFn returns a scheme spacing values by step: idx → base + idx*step.
// Panics if step == 0, which would make every value equal.
func StrideValueFn(base, step int) ValueFn {
	if step == 0 {
		panic("builder: StrideValueFn(step=0)")
	}
	return func(idx int) int {
		return base + idx*step
	}
}
