// SPDX-License-Identifier: Apache-2.0

package vector

// Clone returns an independent copy of v with capacity for exactly its
// current length, rounded up to a power of two. The copy shares v's
// allocator and element hooks.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{alloc: v.alloc, ops: v.ops}
	if err := c.initStorage(v.length); err != nil {
		return nil, err
	}
	c.copyConstructFrom(v, 0, v.length)
	c.length = v.length
	return c, nil
}

// Move transfers v's storage and elements to a new vector in O(1).
// v is left empty without storage; nothing is allocated.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{alloc: v.alloc, ops: v.ops}
	m.takeFrom(v)
	return m
}

// CopyFrom replaces the contents of v with copies of other's elements.
//
// When v has room for other's elements its storage is reused: existing
// elements are assigned over and only the difference is constructed or
// destroyed. Otherwise new storage is allocated before anything is torn
// down, so a failed allocation leaves v unchanged.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}

	n := other.length
	if len(v.data) >= n {
		if v.length < n {
			v.assignFrom(other, 0, v.length)
			v.copyConstructFrom(other, v.length, n)
		} else {
			forEachIndex(n, v.length, func(i int) { v.ops.destroy(&v.data[i]) })
			v.assignFrom(other, 0, n)
		}
		v.length = n
		return nil
	}

	capacity, err := growCapacity[T](n)
	if err != nil {
		return err
	}
	buf, err := v.allocate(capacity)
	if err != nil {
		return err
	}
	v.Release()
	v.data = buf
	v.copyConstructFrom(other, 0, n)
	v.length = n
	return nil
}

// MoveFrom replaces the contents of v with other's elements without copying.
//
// v's elements are destroyed and v takes over other's storage, allocator and
// length. other ends up empty but keeps v's former buffer so the allocation
// is not wasted. Moving a vector into itself clears it.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		v.Clear()
		return
	}
	v.destroyData()
	v.length = 0
	v.takeFrom(other)
}

// takeFrom swaps storage with other and takes its length. v must hold no live elements.
func (v *Vector[T]) takeFrom(other *Vector[T]) {
	v.length, other.length = other.length, 0
	v.data, other.data = other.data, v.data
	v.alloc, other.alloc = other.alloc, v.alloc
}

func (v *Vector[T]) copyConstructFrom(other *Vector[T], begin, end int) {
	forEachIndex(begin, end, func(i int) { v.ops.copyConstruct(&v.data[i], other.data[i]) })
}

func (v *Vector[T]) assignFrom(other *Vector[T], begin, end int) {
	forEachIndex(begin, end, func(i int) { v.ops.assign(&v.data[i], other.data[i]) })
}
