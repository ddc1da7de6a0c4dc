// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"errors"
	"strconv"
)

var (
	// ErrOutOfRange is matched by every error returned from checked element access.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrAllocation is returned when an allocator cannot provide the requested storage.
	ErrAllocation = errors.New("vector: allocation failed")

	// ErrTooLarge is returned when a requested size exceeds MaxCapacity.
	ErrTooLarge = errors.New("vector: size exceeds maximum capacity")
)

// RangeError describes a failed checked access.
type RangeError struct {
	Index  int
	Length int
}

func (e *RangeError) Error() string {
	return "vector: index " + strconv.Itoa(e.Index) + " out of range [0:" + strconv.Itoa(e.Length) + ")"
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
