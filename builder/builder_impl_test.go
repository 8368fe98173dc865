// SPDX-License-Identifier: MIT
// Package builder_test verifies the sample scenarios and parametric constructors.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkedlists/builder"
	"github.com/katalvlaran/linkedlists/cycle"
	"github.com/katalvlaran/linkedlists/list"
)

// values collects a raw acyclic chain.
func values(head *list.Node) []int {
	out := []int{}
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Value)
	}

	return out
}

// nodeAt walks pos cells from head.
func nodeAt(head *list.Node, pos int) *list.Node {
	for i := 0; i < pos; i++ {
		head = head.Next
	}

	return head
}

func TestSampleList(t *testing.T) {
	l := builder.SampleList()
	assert.Equal(t, []int{4, 1, 2, 3, 5}, l.ToSlice())

	// Fresh fixture on every call.
	l.Clear()
	assert.Equal(t, []int{4, 1, 2, 3, 5}, builder.SampleList().ToSlice())
}

func TestSampleMerge(t *testing.T) {
	a, b := builder.SampleMerge()

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, values(a))
	assert.Equal(t, []int{10, 11, 4, 5, 6}, values(b))
	// The cell holding 4 is shared by identity.
	assert.Same(t, nodeAt(a, 3), nodeAt(b, 2))
}

func TestSampleCycle(t *testing.T) {
	c, head := builder.SampleCycle()
	require.Equal(t, 5, c.Len())

	r, err := cycle.Detect(c, head)
	require.NoError(t, err)
	require.True(t, r.HasCycle)

	v, err := c.Value(r.Entry)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, r.Length)
	assert.Equal(t, 2, r.Tail)
}

func TestConverging(t *testing.T) {
	p, err := builder.Converging(3, 2, 4)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 6, 7, 8, 9}, values(p.A))
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, values(p.B))
	assert.Same(t, p.Merge, nodeAt(p.A, 3))
	assert.Same(t, p.Merge, nodeAt(p.B, 2))
	assert.Equal(t, 3, p.PrefixA)
	assert.Equal(t, 2, p.PrefixB)
	assert.Equal(t, 4, p.Shared)
}

func TestConverging_ZeroPrefix(t *testing.T) {
	p, err := builder.Converging(0, 2, 1, builder.WithValueScheme(builder.OffsetValueFn(10)))
	require.NoError(t, err)

	assert.Same(t, p.Merge, p.A)
	assert.Equal(t, []int{12}, values(p.A))
	assert.Equal(t, []int{10, 11, 12}, values(p.B))
}

func TestConverging_Errors(t *testing.T) {
	_, err := builder.Converging(-1, 0, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.Converging(1, 1, 0)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.RandomConverging()
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomConverging_Deterministic(t *testing.T) {
	p1, err := builder.RandomConverging(builder.WithSeed(7))
	require.NoError(t, err)
	p2, err := builder.RandomConverging(builder.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, values(p1.A), values(p2.A))
	assert.Equal(t, values(p1.B), values(p2.B))
}

func TestRandomConverging_Bounds(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		p, err := builder.RandomConverging(builder.WithSeed(seed), builder.WithMaxPrefix(3), builder.WithMaxShared(2))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, p.PrefixA, 0)
		assert.LessOrEqual(t, p.PrefixA, 3)
		assert.GreaterOrEqual(t, p.PrefixB, 0)
		assert.LessOrEqual(t, p.PrefixB, 3)
		assert.GreaterOrEqual(t, p.Shared, 1)
		assert.LessOrEqual(t, p.Shared, 2)
		assert.Equal(t, p.PrefixA+p.Shared, list.Length(p.A))
		assert.Equal(t, p.PrefixB+p.Shared, list.Length(p.B))
	}
}

func TestCyclic(t *testing.T) {
	c, head, err := builder.Cyclic(4, 1, builder.WithValueScheme(builder.ZeroBasedValueFn))
	require.NoError(t, err)
	assert.Equal(t, cycle.Handle(0), head)

	next, err := c.Next(cycle.Handle(3))
	require.NoError(t, err)
	assert.Equal(t, cycle.Handle(1), next)

	v, err := c.Value(cycle.Handle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestCyclic_Acyclic(t *testing.T) {
	c, head, err := builder.Cyclic(3, -1)
	require.NoError(t, err)

	has, err := cycle.HasCycle(c, head, cycle.WithIdentity())
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCyclic_Errors(t *testing.T) {
	_, _, err := builder.Cyclic(0, -1)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, _, err = builder.Cyclic(3, 3)
	assert.ErrorIs(t, err, builder.ErrBadEntry)

	_, _, err = builder.Cyclic(3, -2)
	assert.ErrorIs(t, err, builder.ErrBadEntry)
}
