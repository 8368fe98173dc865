// SPDX-License-Identifier: MIT

package list_test

import (
	"testing"

	"github.com/katalvlaran/linkedlists/list"
)

// BenchmarkAddFront measures O(1) head insertion.
func BenchmarkAddFront(b *testing.B) {
	l := list.New()
	for i := 0; i < b.N; i++ {
		l.AddFront(i)
	}
}

// BenchmarkAddBack_1000 measures the O(n) tail walk on a 1000-cell list.
func BenchmarkAddBack_1000(b *testing.B) {
	values := make([]int, 1000)
	for i := range values {
		values[i] = i
	}
	l := list.New(values...)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.AddBack(i)
		l.DeleteLast()
	}
}

// BenchmarkLength_1000 compares the traversal count against Len.
func BenchmarkLength_1000(b *testing.B) {
	values := make([]int, 1000)
	l := list.New(values...)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = list.Length(l.Head())
	}
}
