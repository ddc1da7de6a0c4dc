// SPDX-License-Identifier: Apache-2.0

// Package vector implements Vector, a growable contiguous sequence with
// explicit ownership of its storage.
//
// A Vector acquires storage from an Allocator in power-of-two slot counts and
// keeps exact track of which slots hold live elements. Copying, moving,
// assignment and destruction are explicit operations; element lifecycle hooks
// can be supplied through ElementOps.
//
// Vectors are not safe for concurrent use.
package vector

import (
	"fmt"

	"go.uber.org/zap"
)

// Vector is a growable contiguous sequence of T.
//
// Slots [0, Len) hold live elements, slots [Len, Cap) are raw storage and
// always hold the zero value. The zero value is an empty vector that allocates
// from the Go heap.
type Vector[T any] struct {
	data   []T // len(data) is the capacity; nil iff the capacity is 0
	length int
	alloc  Allocator[T]
	ops    ElementOps[T]
}

// Option configures a Vector at construction.
type Option[T any] func(*Vector[T])

// WithAllocator makes the vector acquire its storage from a.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		v.alloc = a
	}
}

// WithElementOps installs element lifecycle hooks.
func WithElementOps[T any](ops ElementOps[T]) Option[T] {
	return func(v *Vector[T]) {
		v.ops = ops
	}
}

// New creates an empty vector. It does not allocate storage.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewWithSize creates a vector holding n default-constructed elements.
func NewWithSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.initStorage(n); err != nil {
		return nil, err
	}
	forEachIndex(0, n, func(i int) { v.ops.construct(&v.data[i]) })
	v.length = n
	return v, nil
}

// NewFilled creates a vector holding n copies of value.
func NewFilled[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.initStorage(n); err != nil {
		return nil, err
	}
	forEachIndex(0, n, func(i int) { v.ops.copyConstruct(&v.data[i], value) })
	v.length = n
	return v, nil
}

// NewFilledMove creates a vector holding n copies of *value.
//
// The value is moved out of *value once, every element is copied from that
// single retained value, and the retained value is destroyed afterwards.
// On failure *value is left untouched.
func NewFilledMove[T any](n int, value *T, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.initStorage(n); err != nil {
		return nil, err
	}
	var tmp T
	moveElement(&tmp, value)
	forEachIndex(0, n, func(i int) { v.ops.copyConstruct(&v.data[i], tmp) })
	v.ops.destroy(&tmp)
	v.length = n
	return v, nil
}

func (v *Vector[T]) initStorage(n int) error {
	checkSize(n)
	capacity, err := growCapacity[T](n)
	if err != nil {
		return err
	}
	buf, err := v.allocate(capacity)
	if err != nil {
		return err
	}
	v.data = buf
	return nil
}

func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		return HeapAllocator[T]{}
	}
	return v.alloc
}

// allocate acquires capacity slots. A zero capacity yields nil storage.
func (v *Vector[T]) allocate(capacity int) ([]T, error) {
	if capacity == 0 {
		return nil, nil
	}
	buf, err := v.allocator().Allocate(capacity)
	if err == nil && len(buf) != capacity {
		err = fmt.Errorf("%w: allocator returned %d slots, want %d", ErrAllocation, len(buf), capacity)
	}
	if err != nil {
		Logger().Debug("vector allocation failed",
			zap.Int("capacity", capacity),
			zap.Int("length", v.length),
			zap.Error(err),
		)
		return nil, err
	}
	return buf, nil
}

// deallocate hands buf back to the allocator.
func (v *Vector[T]) deallocate(buf []T) {
	if buf != nil {
		v.allocator().Deallocate(buf)
	}
}

// destroyData ends the life of every live element. Storage is kept.
func (v *Vector[T]) destroyData() {
	forEachIndex(0, v.length, func(i int) { v.ops.destroy(&v.data[i]) })
}

// migrate moves the live elements into buf, releases the old storage and
// installs buf. Slots of buf at or beyond Len may already be constructed.
func (v *Vector[T]) migrate(buf []T) {
	forEachIndex(0, v.length, func(i int) { moveElement(&buf[i], &v.data[i]) })
	Logger().Debug("vector storage reallocated",
		zap.Int("from", len(v.data)),
		zap.Int("to", len(buf)),
		zap.Int("length", v.length),
	)
	v.deallocate(v.data)
	v.data = buf
}

// Release destroys every element and returns the storage to the allocator.
// The vector is empty afterwards and may be reused.
func (v *Vector[T]) Release() {
	v.destroyData()
	v.deallocate(v.data)
	v.data = nil
	v.length = 0
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the number of allocated slots. It is 0 or a power of two.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.length == 0
}

// Data returns the live elements as a slice sharing the vector's storage.
// The slice is valid until the next reallocation.
func (v *Vector[T]) Data() []T {
	return v.data[:v.length:v.length]
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.length {
		return &RangeError{Index: i, Length: v.length}
	}
	return nil
}

// Get returns a copy of the element at i.
func (v *Vector[T]) Get(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// GetRef returns a pointer to the element at i.
// The pointer is invalidated by the next reallocation.
func (v *Vector[T]) GetRef(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	return &v.data[i], nil
}

// Take moves the element at i out of the vector. The slot stays live and
// holds the zero value afterwards.
func (v *Vector[T]) Take(i int) (T, error) {
	var out T
	if err := v.checkIndex(i); err != nil {
		return out, err
	}
	moveElement(&out, &v.data[i])
	return out, nil
}

// Index is the unchecked counterpart of Get.
// The result is undefined when i is not in [0, Len).
func (v *Vector[T]) Index(i int) T {
	return v.data[i]
}

// IndexRef is the unchecked counterpart of GetRef.
func (v *Vector[T]) IndexRef(i int) *T {
	return &v.data[i]
}

// IndexTake is the unchecked counterpart of Take.
func (v *Vector[T]) IndexTake(i int) T {
	var out T
	moveElement(&out, &v.data[i])
	return out
}
