// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fromInts(t *testing.T, values ...int) *Vector[int] {
	t.Helper()
	v := New[int]()
	for _, x := range values {
		require.NoError(t, v.PushBack(x))
	}
	return v
}

func TestCloneIsIndependent(t *testing.T) {
	a := fromInts(t, 1, 2, 3, 4, 5)
	b, err := a.Clone()
	require.NoError(t, err)
	require.Equal(t, a.Len(), b.Len())
	require.Equal(t, elems(a), elems(b))
	require.Equal(t, 8, b.Cap())

	*b.IndexRef(0) = 100
	require.NoError(t, b.PushBack(6))
	require.Equal(t, []int{1, 2, 3, 4, 5}, elems(a))
	require.Equal(t, []int{100, 2, 3, 4, 5, 6}, elems(b))
	requireInvariants(t, a)
	requireInvariants(t, b)
}

func TestCloneCapacityFollowsLength(t *testing.T) {
	a := fromInts(t, 1, 2)
	require.NoError(t, a.Reserve(64))

	b, err := a.Clone()
	require.NoError(t, err)
	require.Equal(t, 2, b.Cap())

	empty, err := New[int]().Clone()
	require.NoError(t, err)
	require.Equal(t, 0, empty.Cap())
	requireInvariants(t, empty)
}

func TestCloneUsesCopyHook(t *testing.T) {
	var l lifecycle
	a, err := NewFilled(3, 4, WithElementOps(l.ops()))
	require.NoError(t, err)
	l.reset()

	_, err = a.Clone()
	require.NoError(t, err)
	require.Equal(t, 3, l.copies)
	require.Equal(t, 0, l.destroys)
}

func TestCloneAllocationFailure(t *testing.T) {
	alloc := &failingAllocator[int]{remaining: 1}
	a, err := NewFilled(2, 1, WithAllocator[int](alloc))
	require.NoError(t, err)

	_, err = a.Clone()
	require.ErrorIs(t, err, ErrAllocation)
	require.Equal(t, []int{1, 1}, elems(a))
}

func TestMoveLeavesSourceEmpty(t *testing.T) {
	a := fromInts(t, 1, 2, 3)
	b := a.Move()
	require.Equal(t, []int{1, 2, 3}, elems(b))
	require.Equal(t, 4, b.Cap())
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Cap())
	requireInvariants(t, a)
	requireInvariants(t, b)

	// The moved-from vector stays usable.
	require.NoError(t, a.PushBack(9))
	require.Equal(t, []int{9}, elems(a))
	require.Equal(t, []int{1, 2, 3}, elems(b))
}

func TestCopyFromSelfIsNoop(t *testing.T) {
	var l lifecycle
	a, err := NewFilled(3, 1, WithElementOps(l.ops()))
	require.NoError(t, err)
	l.reset()

	require.NoError(t, a.CopyFrom(a))
	require.Equal(t, []int{1, 1, 1}, elems(a))
	require.Equal(t, lifecycle{}, l)
}

func TestCopyFromReusesStorage(t *testing.T) {
	a := fromInts(t, 1, 2, 3, 4)
	b := fromInts(t, 5, 6)
	require.Equal(t, 4, a.Cap())
	require.Equal(t, 2, b.Cap())

	before := &a.data[0]
	require.NoError(t, a.CopyFrom(b))
	require.Equal(t, []int{5, 6}, elems(a))
	require.Equal(t, 4, a.Cap())
	require.Same(t, before, &a.data[0], "storage must be reused")
	requireInvariants(t, a)

	*b.IndexRef(0) = 50
	require.Equal(t, 5, a.Index(0))
}

func TestCopyFromShrinkingAssignsAndDestroys(t *testing.T) {
	var l lifecycle
	a, err := NewFilled(4, 1, WithElementOps(l.ops()))
	require.NoError(t, err)
	b := fromInts(t, 7, 8)
	l.reset()

	require.NoError(t, a.CopyFrom(b))
	require.Equal(t, []int{7, 8}, elems(a))
	require.Equal(t, 2, l.destroys)
	require.Equal(t, 2, l.assigns)
	require.Equal(t, 0, l.copies)
}

func TestCopyFromGrowingWithinCapacity(t *testing.T) {
	var l lifecycle
	a, err := NewFilled(1, 1, WithElementOps(l.ops()))
	require.NoError(t, err)
	require.NoError(t, a.Reserve(8))
	b := fromInts(t, 2, 3, 4, 5)
	l.reset()

	require.NoError(t, a.CopyFrom(b))
	require.Equal(t, []int{2, 3, 4, 5}, elems(a))
	require.Equal(t, 8, a.Cap())
	require.Equal(t, 1, l.assigns)
	require.Equal(t, 3, l.copies)
	require.Equal(t, 0, l.destroys)
	requireInvariants(t, a)
}

func TestCopyFromReallocates(t *testing.T) {
	var l lifecycle
	alloc := &failingAllocator[int]{remaining: 2}
	a, err := NewFilled(2, 1, WithAllocator[int](alloc), WithElementOps(l.ops()))
	require.NoError(t, err)
	b := fromInts(t, 1, 2, 3, 4, 5)
	l.reset()

	require.NoError(t, a.CopyFrom(b))
	require.Equal(t, []int{1, 2, 3, 4, 5}, elems(a))
	require.Equal(t, 8, a.Cap())
	require.Equal(t, 2, l.destroys)
	require.Equal(t, 5, l.copies)
	require.Equal(t, 1, alloc.deallocated)
	requireInvariants(t, a)
}

func TestCopyFromAllocationFailureKeepsDestination(t *testing.T) {
	alloc := &failingAllocator[int]{remaining: 1}
	a, err := NewFilled(2, 1, WithAllocator[int](alloc))
	require.NoError(t, err)
	b := fromInts(t, 1, 2, 3, 4, 5)

	err = a.CopyFrom(b)
	require.ErrorIs(t, err, ErrAllocation)
	require.Equal(t, []int{1, 1}, elems(a))
	require.Equal(t, 2, a.Cap())
	require.Equal(t, 0, alloc.deallocated)
	requireInvariants(t, a)
}

func TestMoveFromSelfClears(t *testing.T) {
	var l lifecycle
	a, err := NewFilled(3, 1, WithElementOps(l.ops()))
	require.NoError(t, err)
	l.reset()

	a.MoveFrom(a)
	require.Equal(t, 0, a.Len())
	require.Equal(t, 4, a.Cap())
	require.Equal(t, 3, l.destroys)
	requireInvariants(t, a)
}

func TestMoveFromSwapsStorage(t *testing.T) {
	a := fromInts(t, 1, 2, 3, 4)
	b := fromInts(t, 5, 6)
	aStorage := &a.data[0]
	bStorage := &b.data[0]

	a.MoveFrom(b)
	require.Equal(t, []int{5, 6}, elems(a))
	require.Equal(t, 2, a.Cap())
	require.Same(t, bStorage, &a.data[0])

	require.Equal(t, 0, b.Len())
	require.Equal(t, 4, b.Cap(), "the source keeps the destination's former buffer")
	require.Same(t, aStorage, &b.data[0])
	requireInvariants(t, a)
	requireInvariants(t, b)

	require.NoError(t, b.PushBack(7))
	require.Equal(t, 4, b.Cap())
	require.Equal(t, []int{7}, elems(b))
}

func TestMoveFromDestroysDestinationElements(t *testing.T) {
	var l lifecycle
	a, err := NewFilled(3, 1, WithElementOps(l.ops()))
	require.NoError(t, err)
	b := fromInts(t, 8)
	l.reset()

	a.MoveFrom(b)
	require.Equal(t, 3, l.destroys)
	require.Equal(t, 0, l.copies)
	require.Equal(t, []int{8}, elems(a))
}

func TestMoveFromCarriesAllocator(t *testing.T) {
	heap := New[int]()
	require.NoError(t, heap.PushBack(1))

	alloc := &failingAllocator[int]{remaining: 1}
	bounded, err := NewFilled(1, 2, WithAllocator[int](alloc))
	require.NoError(t, err)

	heap.MoveFrom(bounded)
	heap.Release()
	require.Equal(t, 1, alloc.deallocated, "storage goes back to the allocator it came from")
}
