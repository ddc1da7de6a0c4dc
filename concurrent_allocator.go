// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"sync"
)

type concurrentAllocator[T any] struct {
	mtx sync.Mutex
	a   Allocator[T]
}

// NewConcurrentAllocator returns an allocator that may be shared by vectors
// living on different goroutines. The vectors themselves remain unsynchronized.
func NewConcurrentAllocator[T any](a Allocator[T]) Allocator[T] {
	return &concurrentAllocator[T]{a: a}
}

// Allocate satisfies the Allocator interface.
func (c *concurrentAllocator[T]) Allocate(n int) ([]T, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.a == nil {
		return HeapAllocator[T]{}.Allocate(n)
	}
	return c.a.Allocate(n)
}

// Deallocate satisfies the Allocator interface.
func (c *concurrentAllocator[T]) Deallocate(buf []T) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.a == nil {
		return
	}
	c.a.Deallocate(buf)
}
