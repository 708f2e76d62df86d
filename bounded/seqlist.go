package bounded

import (
	"fmt"
	"iter"
)

// SeqList is a positional list stored contiguously in a fixed array.
type SeqList[T any] struct {
	data []T
	len  int
}

// NewSeqList returns an empty list holding at most capacity elements.
func NewSeqList[T any](capacity int) *SeqList[T] {
	return &SeqList[T]{data: make([]T, capOrDefault(capacity))}
}

// NewSeqListFrom returns a list of the given capacity holding the first
// Cap() elements of s.
func NewSeqListFrom[T any](capacity int, s []T) *SeqList[T] {
	l := NewSeqList[T](capacity)
	l.len = copy(l.data, s)

	return l
}

func (l *SeqList[T]) Len() int { return l.len }
func (l *SeqList[T]) Cap() int { return len(l.data) }
func (l *SeqList[T]) IsEmpty() bool { return l.len == 0 }
func (l *SeqList[T]) IsFull() bool { return l.len == len(l.data) }
func (l *SeqList[T]) String() string { return render[T](l, ", ") }
func (l *SeqList[T]) ToSlice() []T { return collect[T](l) }

// Clear drops every element.
func (l *SeqList[T]) Clear() {
	clear(l.data[:l.len])
	l.len = 0
}

// Insert places v at index at, shifting the tail right.
// It returns ErrIndexOutOfRange when at > Len() and ErrFull when no slot is left.
func (l *SeqList[T]) Insert(at int, v T) error {
	if at < 0 || at > l.len {
		return fmt.Errorf("%w: insert at %d with length %d", ErrIndexOutOfRange, at, l.len)
	}
	if l.IsFull() {
		return ErrFull
	}
	copy(l.data[at+1:l.len+1], l.data[at:l.len])
	l.data[at] = v
	l.len++

	return nil
}

// Remove deletes and returns the element at index at.
func (l *SeqList[T]) Remove(at int) (v T, ok bool) {
	if at < 0 || at >= l.len {
		return v, false
	}
	v = l.data[at]
	copy(l.data[at:l.len-1], l.data[at+1:l.len])
	l.len--
	var zero T
	l.data[l.len] = zero

	return v, true
}

func (l *SeqList[T]) PushFront(v T) error { return l.Insert(0, v) }
func (l *SeqList[T]) PushBack(v T) error { return l.Insert(l.len, v) }
func (l *SeqList[T]) PopFront() (T, bool) { return l.Remove(0) }
func (l *SeqList[T]) PopBack() (T, bool) { return l.Remove(l.len - 1) }

// Get returns the element at i.
func (l *SeqList[T]) Get(i int) (v T, ok bool) {
	if i < 0 || i >= l.len {
		return v, false
	}

	return l.data[i], true
}

// At returns the element at i and panics when i is out of range.
func (l *SeqList[T]) At(i int) T {
	if i < 0 || i >= l.len {
		panic(outOfRange(i, l.len))
	}

	return l.data[i]
}

// Values yields the elements in order.
func (l *SeqList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.len; i++ {
			if !yield(l.data[i]) {
				return
			}
		}
	}
}
