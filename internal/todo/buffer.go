package todo

import (
	"fmt"
	"math"
)

// minBufferCapacity is the first capacity a [Buffer] grows to.
const minBufferCapacity = 8

// maxBufferCapacity bounds growth so doubling never overflows.
const maxBufferCapacity = math.MaxInt >> 1

// Buffer is a growable container with an explicit logical length.
//
// Capacity grows by doubling, starting from a small minimum, and never
// shrinks. Slots between the length and the capacity are always zero
// values, so growing the length never exposes stale elements.
//
// The zero value is an empty buffer ready to use.
type Buffer[T any] struct {
	data   []T // len(data) is the capacity
	length int
}

// Len returns the logical length.
func (b *Buffer[T]) Len() int {
	return b.length
}

// Cap returns the number of usable slots.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// EnsureCapacity guarantees at least n usable slots.
// Returns [ErrAllocation] if n is negative or exceeds the growth limit.
func (b *Buffer[T]) EnsureCapacity(n int) error {
	if n < 0 || n > maxBufferCapacity {
		return fmt.Errorf("%w: capacity %d", ErrAllocation, n)
	}

	if n <= len(b.data) {
		return nil
	}

	newCap := max(len(b.data), minBufferCapacity)
	for newCap < n {
		newCap <<= 1
	}

	grown := make([]T, newCap)
	copy(grown, b.data[:b.length])
	b.data = grown

	return nil
}

// SetLength redefines the logical length. n must not exceed [Buffer.Cap];
// call [Buffer.EnsureCapacity] first. Shrinking zeroes the released slots.
func (b *Buffer[T]) SetLength(n int) {
	if n < 0 || n > len(b.data) {
		panic(fmt.Sprintf("buffer: length %d outside capacity %d", n, len(b.data)))
	}

	if n < b.length {
		clear(b.data[n:b.length])
	}

	b.length = n
}

// Append adds values after the current length, growing as needed.
func (b *Buffer[T]) Append(values ...T) error {
	n := b.length + len(values)

	if err := b.EnsureCapacity(n); err != nil {
		return err
	}

	copy(b.data[b.length:n], values)
	b.length = n

	return nil
}

// At returns a pointer to element i. Panics if i is out of range.
func (b *Buffer[T]) At(i int) *T {
	if i < 0 || i >= b.length {
		panic(fmt.Sprintf("buffer: index %d out of range [0:%d]", i, b.length))
	}

	return &b.data[i]
}

// Slice returns the elements up to the logical length. The slice aliases the
// buffer and is invalidated by the next growth.
func (b *Buffer[T]) Slice() []T {
	return b.data[:b.length:b.length]
}

// Reset sets the length to zero, keeping the capacity.
func (b *Buffer[T]) Reset() {
	b.SetLength(0)
}
