package vector

import (
	"fmt"
	"iter"
	"strings"
)

// Vector is a growable array of T.
// The zero value is an empty vector with no allocation.
type Vector[T any] struct {
	buf RawBuffer[T]
	len int
}

// New returns an empty vector; nothing is allocated until the first Push.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty vector with room for n elements.
func WithCapacity[T any](n int) *Vector[T] {
	return &Vector[T]{buf: NewRawBuffer[T](n)}
}

// From returns a vector holding a copy of s; its capacity equals len(s).
func From[T any](s []T) *Vector[T] {
	v := WithCapacity[T](len(s))
	copy(v.buf.ptr, s)
	v.len = len(s)

	return v
}

func outOfRange(i, n int) error {
	return fmt.Errorf("%w [%d] with length %d", ErrIndexOutOfRange, i, n)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.len }

// Cap returns the capacity of the underlying buffer.
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

// IsEmpty reports whether Len() == 0.
func (v *Vector[T]) IsEmpty() bool { return v.len == 0 }

// Push appends x, doubling the capacity when the buffer is full.
func (v *Vector[T]) Push(x T) {
	if v.len == v.buf.Cap() {
		v.buf.Grow()
	}
	v.buf.ptr[v.len] = x
	v.len++
}

// Pop removes and returns the last element; ok is false when empty.
func (v *Vector[T]) Pop() (x T, ok bool) {
	if v.len == 0 {
		return x, false
	}
	v.len--
	x = v.buf.ptr[v.len]
	var zero T
	v.buf.ptr[v.len] = zero

	return x, true
}

// Insert places x at index at, shifting [at, Len()) one slot right.
// It panics with ErrIndexOutOfRange when at > Len().
func (v *Vector[T]) Insert(at int, x T) {
	if at < 0 || at > v.len {
		panic(fmt.Errorf("%w: insert at %d with length %d", ErrIndexOutOfRange, at, v.len))
	}
	if v.len == v.buf.Cap() {
		v.buf.Grow()
	}
	copy(v.buf.ptr[at+1:v.len+1], v.buf.ptr[at:v.len])
	v.buf.ptr[at] = x
	v.len++
}

// Remove deletes and returns the element at index at, shifting the tail
// left. It panics with ErrIndexOutOfRange when at >= Len().
func (v *Vector[T]) Remove(at int) T {
	if at < 0 || at >= v.len {
		panic(fmt.Errorf("%w: remove at %d with length %d", ErrIndexOutOfRange, at, v.len))
	}
	x := v.buf.ptr[at]
	copy(v.buf.ptr[at:v.len-1], v.buf.ptr[at+1:v.len])
	v.len--
	var zero T
	v.buf.ptr[v.len] = zero

	return x
}

// Swap exchanges the elements at i and j.
// It panics with ErrIndexOutOfRange if either index is outside [0, Len()).
func (v *Vector[T]) Swap(i, j int) {
	if i < 0 || i >= v.len {
		panic(outOfRange(i, v.len))
	}
	if j < 0 || j >= v.len {
		panic(outOfRange(j, v.len))
	}
	v.buf.ptr[i], v.buf.ptr[j] = v.buf.ptr[j], v.buf.ptr[i]
}

// At returns the element at i and panics when i is outside [0, Len()).
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.len {
		panic(outOfRange(i, v.len))
	}

	return v.buf.ptr[i]
}

// Set overwrites the element at i and panics when i is outside [0, Len()).
func (v *Vector[T]) Set(i int, x T) {
	if i < 0 || i >= v.len {
		panic(outOfRange(i, v.len))
	}
	v.buf.ptr[i] = x
}

// Get returns the element at i; ok is false when i is out of range.
func (v *Vector[T]) Get(i int) (x T, ok bool) {
	if i < 0 || i >= v.len {
		return x, false
	}

	return v.buf.ptr[i], true
}

// Clear drops every live element and keeps the capacity.
func (v *Vector[T]) Clear() {
	clear(v.buf.ptr[:v.len])
	v.len = 0
}

// Truncate shortens the vector to n elements. It does nothing when n >= Len().
func (v *Vector[T]) Truncate(n int) {
	if n < 0 {
		panic(outOfRange(n, v.len))
	}
	if n >= v.len {
		return
	}
	clear(v.buf.ptr[n:v.len])
	v.len = n
}

// Reserve makes room for at least n more elements without further
// reallocation.
func (v *Vector[T]) Reserve(n int) {
	need := v.len + n
	if need <= v.buf.Cap() {
		return
	}
	v.buf.GrowTo(max(need, 2*v.buf.Cap()))
}

// Extend appends every element of s.
func (v *Vector[T]) Extend(s ...T) {
	v.Reserve(len(s))
	copy(v.buf.ptr[v.len:], s)
	v.len += len(s)
}

// Slice returns the live elements as a slice sharing the vector's storage.
// The view is invalidated by any call that grows the vector.
func (v *Vector[T]) Slice() []T {
	return v.buf.ptr[:v.len:v.len]
}

// ToSlice returns a copy of the live elements.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.len)
	copy(out, v.buf.ptr[:v.len])

	return out
}

// String renders the vector as "[a, b, c]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.len; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v.buf.ptr[i])
	}
	sb.WriteByte(']')

	return sb.String()
}

// All returns an iterator over index/value pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, v.buf.ptr[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(v.buf.ptr[i]) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualSlice(a, b.Slice())
}

// EqualSlice reports whether v holds exactly the elements of s.
func EqualSlice[T comparable](v *Vector[T], s []T) bool {
	if v.len != len(s) {
		return false
	}
	for i, x := range s {
		if v.buf.ptr[i] != x {
			return false
		}
	}

	return true
}
