// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// MaxCapacity is the largest slot count a Vector will request from its allocator.
const MaxCapacity = 1 << (bits.UintSize - 2)

// maxAllocBytes bounds a single storage request: 128TB on 64-bit platforms,
// 2GB on 32-bit ones. Larger requests cannot be served by the Go heap.
const maxAllocBytes = (1<<47)*(bits.UintSize/64) + (1<<31-1)*(1-bits.UintSize/64)

// fitsAlloc reports whether n slots of T stay within maxAllocBytes.
func fitsAlloc[T any](n int) bool {
	var x T
	size := unsafe.Sizeof(x)
	return size == 0 || uintptr(n) <= maxAllocBytes/size
}

// capacityFor returns the smallest power of two that is >= n, or 0 for n == 0.
// n must not exceed MaxCapacity.
func capacityFor(n int) int {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// growCapacity is capacityFor for sizes that come from callers. It fails
// when the rounded slot count of T would not fit in a single allocation.
func growCapacity[T any](n int) (int, error) {
	if n > MaxCapacity {
		return 0, fmt.Errorf("%w: %d elements", ErrTooLarge, n)
	}
	c := capacityFor(n)
	if !fitsAlloc[T](c) {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrTooLarge, c, unsafe.Sizeof(*new(T)))
	}
	return c, nil
}

// forEachIndex calls fn for every index in [begin, end).
func forEachIndex(begin, end int, fn func(i int)) {
	for i := begin; i < end; i++ {
		fn(i)
	}
}

func checkSize(n int) {
	if n < 0 {
		panic("vector: negative size")
	}
}
