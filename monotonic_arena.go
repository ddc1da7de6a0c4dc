// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"unsafe"
)

const (
	minBufferSize = 1024 * 32 // 32KB
)

type monotonicArena struct {
	buffers            []*monotonicBuffer
	peak               uintptr // high-water mark of len()
	minBufferSize      uintptr // minimum size for new buffers
	maxBytes           uintptr // 0 means unlimited
	initialBufferCount int
}

type monotonicBuffer struct {
	ptr    unsafe.Pointer
	offset uintptr
	size   uintptr
}

func newMonotonicBuffer(size uintptr) *monotonicBuffer {
	return &monotonicBuffer{size: size}
}

func alignUp(off, alignment uintptr) uintptr {
	if alignment <= 1 {
		return off
	}
	mask := alignment - 1
	return (off + mask) &^ mask
}

func (s *monotonicBuffer) alloc(size, alignment uintptr) (unsafe.Pointer, bool) {
	if s.ptr == nil {
		if s.size == 0 {
			return nil, false
		}
		buf := make([]byte, s.size) // backing memory is acquired on first use
		s.ptr = unsafe.Pointer(unsafe.SliceData(buf))
	}
	base := uintptr(s.ptr)
	start := alignUp(base+s.offset, alignment) - base
	if start+size > s.size {
		return nil, false
	}
	ptr := unsafe.Add(s.ptr, start)
	s.offset = start + size

	// Compiled to runtime.memclrNoHeapPointers.
	b := unsafe.Slice((*byte)(ptr), size)
	for i := range b {
		b[i] = 0
	}
	return ptr, true
}

// NewMonotonicArena creates a bump-allocating arena.
// Without options it starts with one lazily allocated 32KB buffer and no size limit.
func NewMonotonicArena(opts ...MonotonicArenaOption) Arena {
	a := &monotonicArena{
		minBufferSize:      minBufferSize,
		initialBufferCount: 1,
	}
	for _, opt := range opts {
		opt(a)
	}
	for i := 0; i < a.initialBufferCount; i++ {
		a.buffers = append(a.buffers, newMonotonicBuffer(a.minBufferSize))
	}
	return a
}

// MonotonicArenaOption configures a monotonic arena.
type MonotonicArenaOption func(*monotonicArena)

// WithMinBufferSize sets the size of the initial buffers and the minimum size of buffers added later.
func WithMinBufferSize(size int) MonotonicArenaOption {
	return func(a *monotonicArena) {
		a.minBufferSize = uintptr(size)
	}
}

// WithInitialBufferCount sets the number of buffers created up front.
func WithInitialBufferCount(count int) MonotonicArenaOption {
	return func(a *monotonicArena) {
		a.initialBufferCount = count
	}
}

// WithMaxBytes caps the total capacity of the arena.
// Alloc returns nil once a request would need more. Zero disables the limit.
func WithMaxBytes(n int) MonotonicArenaOption {
	return func(a *monotonicArena) {
		a.maxBytes = uintptr(n)
	}
}

// Alloc satisfies the Arena interface.
func (a *monotonicArena) Alloc(size, alignment uintptr) unsafe.Pointer {
	if size > maxAllocBytes || alignment > maxAllocBytes {
		return nil
	}
	for _, b := range a.buffers {
		if ptr, ok := b.alloc(size, alignment); ok {
			a.updatePeak()
			return ptr
		}
	}

	// Over-allocate by the alignment so the first slot can always be aligned.
	newSize := size + alignment
	if newSize < a.minBufferSize {
		newSize = a.minBufferSize
	}
	if a.maxBytes > 0 && a.capacity()+newSize > a.maxBytes {
		newSize = size + alignment
		if a.capacity()+newSize > a.maxBytes {
			return nil
		}
	}

	b := newMonotonicBuffer(newSize)
	a.buffers = append(a.buffers, b)
	ptr, ok := b.alloc(size, alignment)
	if !ok {
		panic("vector: failed to allocate on newly created arena buffer")
	}
	a.updatePeak()
	return ptr
}

func (a *monotonicArena) updatePeak() {
	if l := a.len(); l > a.peak {
		a.peak = l
	}
}

// Reset satisfies the Arena interface.
func (a *monotonicArena) Reset() {
	for _, b := range a.buffers {
		b.offset = 0
	}
}

// Release satisfies the Arena interface.
func (a *monotonicArena) Release() {
	for _, b := range a.buffers {
		b.offset = 0
		b.ptr = nil
	}
}

func (a *monotonicArena) len() uintptr {
	var total uintptr
	for _, b := range a.buffers {
		total += b.offset
	}
	return total
}

func (a *monotonicArena) capacity() uintptr {
	var total uintptr
	for _, b := range a.buffers {
		total += b.size
	}
	return total
}

// Len satisfies the Arena interface.
func (a *monotonicArena) Len() int {
	return int(a.len())
}

// Cap satisfies the Arena interface.
func (a *monotonicArena) Cap() int {
	return int(a.capacity())
}

// Peak satisfies the Arena interface.
func (a *monotonicArena) Peak() int {
	return int(a.peak)
}
