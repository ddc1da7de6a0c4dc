// SPDX-License-Identifier: Apache-2.0

package vector

import (
	"io"
)

const minReadSize = 512

// Buffer is a bytes.Buffer-like byte queue stored in a Vector[byte].
// Its storage grows in power-of-two steps and comes from the vector's allocator,
// so writes can fail with ErrAllocation when the allocator is bounded.
type Buffer struct {
	vec Vector[byte]
	off int // read offset into vec
}

// NewBuffer creates an empty Buffer whose storage comes from a.
// A nil allocator selects the Go heap.
func NewBuffer(a Allocator[byte]) *Buffer {
	return &Buffer{vec: Vector[byte]{alloc: a}}
}

// Write appends p to the buffer.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	m := b.vec.Len()
	if err := b.vec.Resize(m + len(p)); err != nil {
		return 0, err
	}
	return copy(b.vec.Data()[m:], p), nil
}

// WriteByte appends c to the buffer.
func (b *Buffer) WriteByte(c byte) error {
	return b.vec.PushBack(c)
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	m := b.vec.Len()
	if err := b.vec.Resize(m + len(s)); err != nil {
		return 0, err
	}
	return copy(b.vec.Data()[m:], s), nil
}

// WriteTo writes the unread bytes to w until they are drained or an error occurs.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if b.Len() == 0 {
		return 0, nil
	}
	m, err := w.Write(b.unread())
	b.advance(m)
	if err == nil && b.Len() > 0 {
		err = io.ErrShortWrite
	}
	return int64(m), err
}

// Read reads up to len(p) unread bytes into p.
// It returns io.EOF when the buffer is empty and len(p) > 0.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.Len() == 0 {
		b.Reset()
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, b.unread())
	b.advance(n)
	return n, nil
}

// ReadByte reads and returns the next byte, or io.EOF when the buffer is empty.
func (b *Buffer) ReadByte() (byte, error) {
	if b.Len() == 0 {
		b.Reset()
		return 0, io.EOF
	}
	c := b.vec.Index(b.off)
	b.advance(1)
	return c, nil
}

// Next returns a copy of the next n unread bytes, or fewer if the buffer holds less.
func (b *Buffer) Next(n int) []byte {
	if n > b.Len() {
		n = b.Len()
	}
	if n <= 0 {
		return []byte{}
	}
	out := make([]byte, n)
	copy(out, b.unread())
	b.advance(n)
	return out
}

// ReadFrom reads from r until io.EOF, appending the data to the buffer.
// Reads land directly in the buffer's storage.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var n int64
	for {
		m := b.vec.Len()
		if err := b.vec.Resize(m + minReadSize); err != nil {
			return n, err
		}
		nr, err := r.Read(b.vec.Data()[m:])
		if nr < 0 {
			panic("vector: reader returned negative count from Read")
		}
		if serr := b.vec.Resize(m + nr); serr != nil {
			return n, serr
		}
		n += int64(nr)
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// Bytes returns the unread bytes. The slice aliases the buffer's storage and
// is valid only until the next modification.
func (b *Buffer) Bytes() []byte {
	return b.unread()
}

// String returns the unread bytes as a string.
func (b *Buffer) String() string {
	if b == nil {
		return "<nil>"
	}
	return string(b.unread())
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return b.vec.Len() - b.off
}

// Cap returns the capacity of the underlying vector.
func (b *Buffer) Cap() int {
	return b.vec.Cap()
}

// Reset empties the buffer but keeps its storage.
func (b *Buffer) Reset() {
	b.vec.Clear()
	b.off = 0
}

// Release empties the buffer and returns its storage to the allocator.
func (b *Buffer) Release() {
	b.vec.Release()
	b.off = 0
}

// Truncate discards all but the first n unread bytes.
// It panics if n is negative or greater than Len.
func (b *Buffer) Truncate(n int) {
	if n == 0 {
		b.Reset()
		return
	}
	if n < 0 || n > b.Len() {
		panic("vector: truncation out of range")
	}
	b.vec.shrink(b.off + n)
}

func (b *Buffer) unread() []byte {
	return b.vec.Data()[b.off:]
}

func (b *Buffer) advance(n int) {
	b.off += n
	if b.off == b.vec.Len() {
		b.Reset()
	}
}
