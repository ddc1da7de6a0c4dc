// SPDX-License-Identifier: Apache-2.0

package vector

// PushBack appends a copy of value.
func (v *Vector[T]) PushBack(value T) error {
	return v.pushBack(func(slot *T) { v.ops.copyConstruct(slot, value) })
}

// PushBackMove appends *value by moving it; *value is zeroed.
// If the append fails *value is left untouched.
func (v *Vector[T]) PushBackMove(value *T) error {
	return v.pushBack(func(slot *T) { moveElement(slot, value) })
}

// pushBack constructs the new last element with construct. When the vector is
// full the element is constructed in the new storage before the existing
// elements are migrated.
func (v *Vector[T]) pushBack(construct func(slot *T)) error {
	if v.length < len(v.data) {
		construct(&v.data[v.length])
		v.length++
		return nil
	}

	capacity, err := growCapacity[T](len(v.data) + 1)
	if err != nil {
		return err
	}
	buf, err := v.allocate(capacity)
	if err != nil {
		return err
	}
	construct(&buf[v.length])
	v.migrate(buf)
	v.length++
	return nil
}

// PopBack destroys the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	v.ops.destroy(&v.data[v.length-1])
	v.length--
}

// Clear destroys every element. The storage is kept for reuse.
func (v *Vector[T]) Clear() {
	v.destroyData()
	v.length = 0
}

// Reserve ensures the vector can hold n elements without reallocating.
// It never changes the length.
func (v *Vector[T]) Reserve(n int) error {
	checkSize(n)
	capacity, err := growCapacity[T](n)
	if err != nil {
		return err
	}
	if capacity <= len(v.data) {
		return nil
	}
	buf, err := v.allocate(capacity)
	if err != nil {
		return err
	}
	v.migrate(buf)
	return nil
}

// Resize changes the length to n. New elements are default-constructed,
// surplus elements are destroyed.
func (v *Vector[T]) Resize(n int) error {
	checkSize(n)
	if err := v.grow(n, v.ops.construct); err != nil {
		return err
	}
	v.shrink(n)
	return nil
}

// ResizeFill changes the length to n. New elements are copies of value,
// surplus elements are destroyed.
func (v *Vector[T]) ResizeFill(n int, value T) error {
	checkSize(n)
	if err := v.grow(n, func(slot *T) { v.ops.copyConstruct(slot, value) }); err != nil {
		return err
	}
	v.shrink(n)
	return nil
}

// ResizeFillMove changes the length to n. New elements are copies of a
// single value moved out of *value, which is destroyed once they are built.
// *value is only consumed when the vector grows and the growth succeeds.
func (v *Vector[T]) ResizeFillMove(n int, value *T) error {
	checkSize(n)
	if n > v.length {
		var tmp T
		moveElement(&tmp, value)
		if err := v.grow(n, func(slot *T) { v.ops.copyConstruct(slot, tmp) }); err != nil {
			moveElement(value, &tmp)
			return err
		}
		v.ops.destroy(&tmp)
		return nil
	}
	v.shrink(n)
	return nil
}

// grow constructs elements [Len, n) with construct. When the storage is too
// small the new elements are constructed in the new storage before the
// existing ones are migrated.
func (v *Vector[T]) grow(n int, construct func(slot *T)) error {
	if n <= v.length {
		return nil
	}
	capacity, err := growCapacity[T](n)
	if err != nil {
		return err
	}
	if capacity > len(v.data) {
		buf, err := v.allocate(capacity)
		if err != nil {
			return err
		}
		forEachIndex(v.length, n, func(i int) { construct(&buf[i]) })
		v.migrate(buf)
	} else {
		forEachIndex(v.length, n, func(i int) { construct(&v.data[i]) })
	}
	v.length = n
	return nil
}

func (v *Vector[T]) shrink(n int) {
	if n >= v.length {
		return
	}
	forEachIndex(n, v.length, func(i int) { v.ops.destroy(&v.data[i]) })
	v.length = n
}
