// SPDX-License-Identifier: MIT
//
// File: buffer.go
// Role: RawBuffer, the owning fixed-capacity allocation under Vector, plus
//       the sentinel errors of the package.

package vector

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

var (
	// ErrIndexOutOfRange is wrapped by panics from positional operations.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrCapacityOverflow is wrapped by panics from allocations whose size in
	// bytes is not representable.
	ErrCapacityOverflow = errors.New("vector: capacity overflow")
)

// maxAlloc bounds capacity*sizeof(T).
const maxAlloc = math.MaxInt

// RawBuffer owns a backing array of exactly Cap() slots.
// The zero value has capacity 0 and no allocation.
type RawBuffer[T any] struct {
	ptr []T
}

// NewRawBuffer allocates a buffer with room for capacity elements.
// It panics with ErrCapacityOverflow if capacity is negative or too large.
func NewRawBuffer[T any](capacity int) RawBuffer[T] {
	checkAlloc[T](capacity)
	if capacity == 0 {
		return RawBuffer[T]{}
	}

	return RawBuffer[T]{ptr: make([]T, capacity)}
}

// checkAlloc panics unless capacity slots of T fit in maxAlloc bytes.
func checkAlloc[T any](capacity int) {
	if capacity < 0 {
		panic(fmt.Errorf("%w: negative capacity %d", ErrCapacityOverflow, capacity))
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size != 0 && uint64(capacity) > uint64(maxAlloc)/uint64(size) {
		panic(fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, capacity, size))
	}
}

// Cap returns the number of slots.
func (b *RawBuffer[T]) Cap() int { return len(b.ptr) }

// Grow doubles the capacity, or sets it to 1 when it is 0. Existing slots
// keep their values.
func (b *RawBuffer[T]) Grow() {
	c := len(b.ptr)
	if c == 0 {
		b.GrowTo(1)

		return
	}
	if c > math.MaxInt/2 {
		panic(fmt.Errorf("%w: cannot double %d", ErrCapacityOverflow, c))
	}
	b.GrowTo(c * 2)
}

// GrowTo reallocates to exactly capacity slots when that is larger than the
// current capacity; otherwise it does nothing.
func (b *RawBuffer[T]) GrowTo(capacity int) {
	if capacity <= len(b.ptr) {
		return
	}
	checkAlloc[T](capacity)
	next := make([]T, capacity)
	copy(next, b.ptr)
	b.ptr = next
}

// Release drops the allocation; the buffer is left with capacity 0.
func (b *RawBuffer[T]) Release() {
	b.ptr = nil
}
