// SPDX-License-Identifier: Apache-2.0

package vector

// ElementOps customizes the lifecycle of elements stored in a Vector.
// Every field is optional.
//
// Moving an element, which happens on reallocation, PushBackMove and Take,
// transfers the value bitwise and zeroes the source slot without calling any hook.
type ElementOps[T any] struct {
	// New constructs a default element. The zero value of T is used when nil.
	New func() T

	// Copy constructs an independent copy of src. Plain assignment is used when nil.
	Copy func(src T) T

	// Assign overwrites the live element at dst with a copy of src.
	// When nil the old element is destroyed and a copy is constructed in its place.
	Assign func(dst *T, src T)

	// Destroy ends the life of a live element. The slot is zeroed afterwards regardless.
	Destroy func(elem *T)
}

func (o *ElementOps[T]) construct(slot *T) {
	if o.New != nil {
		*slot = o.New()
		return
	}
	var zero T
	*slot = zero
}

func (o *ElementOps[T]) copyConstruct(slot *T, src T) {
	if o.Copy != nil {
		*slot = o.Copy(src)
		return
	}
	*slot = src
}

func (o *ElementOps[T]) assign(dst *T, src T) {
	if o.Assign != nil {
		o.Assign(dst, src)
		return
	}
	o.destroy(dst)
	o.copyConstruct(dst, src)
}

func (o *ElementOps[T]) destroy(elem *T) {
	if o.Destroy != nil {
		o.Destroy(elem)
	}
	var zero T
	*elem = zero
}

// moveElement transfers *src into *dst and leaves *src zeroed.
func moveElement[T any](dst, src *T) {
	*dst = *src
	var zero T
	*src = zero
}
