// SPDX-License-Identifier: MIT
// Package list_test replays random operation sequences against a slice model.

package list_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkedlists/list"
)

// sliceModel is the array-based reference the list is compared against.
type sliceModel []int

func (m sliceModel) insert(pos, v int) sliceModel {
	out := make(sliceModel, 0, len(m)+1)
	out = append(out, m[:pos]...)
	out = append(out, v)

	return append(out, m[pos:]...)
}

func (m sliceModel) remove(pos int) sliceModel {
	out := make(sliceModel, 0, len(m))
	out = append(out, m[:pos]...)

	return append(out, m[pos+1:]...)
}

// TestLinkedList_MatchesSliceModel applies the same random operations to a
// LinkedList and a slice, then compares every observable after each step.
func TestLinkedList_MatchesSliceModel(t *testing.T) {
	const (
		seeds = 20
		steps = 300
	)

	for seed := int64(1); seed <= seeds; seed++ {
		rng := rand.New(rand.NewSource(seed))
		l := list.New()
		model := sliceModel{}

		for step := 0; step < steps; step++ {
			v := rng.Intn(1000)
			// Positions may overshoot by one so the out-of-range path is exercised too.
			pos := rng.Intn(len(model)+2) - 1

			switch rng.Intn(6) {
			case 0:
				l.AddFront(v)
				model = model.insert(0, v)
			case 1:
				l.AddBack(v)
				model = append(model, v)
			case 2:
				err := l.Insert(pos, v)
				if pos >= 0 && pos <= len(model) {
					require.NoError(t, err)
					model = model.insert(pos, v)
				} else {
					require.True(t, errors.Is(err, list.ErrPositionOutOfRange))
				}
			case 3:
				l.DeleteFirst()
				if len(model) > 0 {
					model = model[1:]
				}
			case 4:
				l.DeleteLast()
				if len(model) > 0 {
					model = model[:len(model)-1]
				}
			case 5:
				err := l.Delete(pos)
				if pos >= 0 && pos < len(model) {
					require.NoError(t, err)
					model = model.remove(pos)
				} else {
					require.True(t, errors.Is(err, list.ErrPositionOutOfRange))
				}
			}

			got := l.ToSlice()
			require.Equal(t, []int(model), got, "seed=%d step=%d", seed, step)
			require.Equal(t, len(got) == 0, l.IsEmpty())
			require.Equal(t, len(got), l.Len())
			require.Equal(t, len(got), list.Length(l.Head()))
		}
	}
}
