// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"unsafe"
)

// Arena is a region of memory that vector storage can be carved from.
// Individual allocations are never freed; the whole region is recycled at once.
type Arena interface {
	// Alloc returns size bytes aligned to alignment, zeroed.
	// It returns nil when the arena cannot satisfy the request.
	Alloc(size, alignment uintptr) unsafe.Pointer

	// Reset makes the whole region available again while keeping the underlying memory.
	// Every pointer previously returned by Alloc becomes invalid.
	Reset()

	// Release drops the underlying memory. The arena may allocate it again lazily.
	Release()

	// Len returns the number of bytes handed out since the last Reset.
	Len() int

	// Cap returns the number of bytes the arena currently holds.
	Cap() int

	// Peak returns the highest Len observed. It survives Reset.
	Peak() int
}

// arenaSlice carves n slots of T out of a. It returns nil when the arena refuses.
func arenaSlice[T any](a Arena, n int) []T {
	if n < 0 || !fitsAlloc[T](n) {
		return nil
	}
	var x T
	size := unsafe.Sizeof(x) * uintptr(n)
	ptr := (*T)(a.Alloc(size, unsafe.Alignof(x)))
	if ptr == nil {
		return nil
	}
	return unsafe.Slice(ptr, n)
}
