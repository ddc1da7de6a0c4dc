// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"fmt"
)

// Allocator provides raw element storage to a Vector.
//
// Allocate returns exactly n zeroed slots or an error. Deallocate receives every
// buffer returned by Allocate exactly once; its slots hold no live elements by then.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
}

// HeapAllocator allocates storage on the Go heap. It is used by vectors that
// were not configured with another allocator.
type HeapAllocator[T any] struct{}

// Allocate satisfies the Allocator interface.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 || !fitsAlloc[T](n) {
		return nil, fmt.Errorf("%w: %d slots exceed the heap allocation limit", ErrAllocation, n)
	}
	return make([]T, n), nil
}

// Deallocate satisfies the Allocator interface. The buffer is left to the GC.
func (HeapAllocator[T]) Deallocate([]T) {}

type arenaAllocator[T any] struct {
	arena Arena
}

// NewArenaAllocator returns an Allocator that carves storage out of a.
// Storage handed back through Deallocate is only reclaimed by a.Reset.
//
// The arena's memory is not scanned by the garbage collector, so T must not
// contain pointers.
func NewArenaAllocator[T any](a Arena) Allocator[T] {
	return &arenaAllocator[T]{arena: a}
}

// Allocate satisfies the Allocator interface.
func (a *arenaAllocator[T]) Allocate(n int) ([]T, error) {
	buf := arenaSlice[T](a.arena, n)
	if buf == nil {
		return nil, fmt.Errorf("%w: arena refused %d slots (len %d, cap %d)", ErrAllocation, n, a.arena.Len(), a.arena.Cap())
	}
	return buf, nil
}

// Deallocate satisfies the Allocator interface.
func (a *arenaAllocator[T]) Deallocate(buf []T) {
	clear(buf)
}
