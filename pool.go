// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"fmt"
	"sync"
	"weak"
)

// Pool is a thread-safe Allocator that recycles deallocated buffers.
//
// Buffers are bucketed by slot count; vectors only ever request powers of two,
// so a handful of buckets covers every size. Returned buffers are kept behind
// weak pointers: the GC can reclaim any of them at any time, which lets memory
// pressure decide how large the pool gets.
type Pool[T any] struct {
	free  map[int][]weak.Pointer[pooledBuffer[T]]
	stats PoolStats
	mu    sync.Mutex
}

// PoolStats counts how a Pool served its requests.
type PoolStats struct {
	Hits     int // requests served from a recycled buffer
	Misses   int // requests served by a fresh allocation
	Returned int // buffers handed back through Deallocate
}

type pooledBuffer[T any] struct {
	buf []T
}

// NewPool creates an empty Pool. The zero value is ready to use as well.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		free: make(map[int][]weak.Pointer[pooledBuffer[T]]),
	}
}

// Allocate satisfies the Allocator interface.
func (p *Pool[T]) Allocate(n int) ([]T, error) {
	if n < 0 || !fitsAlloc[T](n) {
		return nil, fmt.Errorf("%w: %d slots exceed the heap allocation limit", ErrAllocation, n)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.lazyInit()

	bucket := p.free[n]
	for len(bucket) > 0 {
		last := len(bucket) - 1
		wp := bucket[last]
		bucket = bucket[:last]

		// A nil value means the GC already collected this buffer.
		if v := wp.Value(); v != nil {
			p.free[n] = bucket
			p.stats.Hits++
			return v.buf, nil
		}
	}
	p.free[n] = bucket

	p.stats.Misses++
	return make([]T, n), nil
}

// Deallocate satisfies the Allocator interface.
func (p *Pool[T]) Deallocate(buf []T) {
	if len(buf) == 0 {
		return
	}
	clear(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.lazyInit()
	p.stats.Returned++
	p.free[len(buf)] = append(p.free[len(buf)], weak.Make(&pooledBuffer[T]{buf: buf}))
}

func (p *Pool[T]) lazyInit() {
	if p.free == nil {
		p.free = make(map[int][]weak.Pointer[pooledBuffer[T]])
	}
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
