package bounded

import "iter"

// Stack is a LIFO stack over a fixed array; the top is data[len-1].
type Stack[T any] struct {
	data []T
	len  int
}

// NewStack returns an empty stack holding at most capacity elements.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{data: make([]T, capOrDefault(capacity))}
}

// NewStackFrom pushes the first Cap() elements of s in order, so the last
// copied element is on top.
func NewStackFrom[T any](capacity int, s []T) *Stack[T] {
	st := NewStack[T](capacity)
	st.len = copy(st.data, s)

	return st
}

func (s *Stack[T]) Len() int { return s.len }
func (s *Stack[T]) Cap() int { return len(s.data) }
func (s *Stack[T]) IsEmpty() bool { return s.len == 0 }
func (s *Stack[T]) IsFull() bool { return s.len == len(s.data) }
func (s *Stack[T]) String() string { return render[T](s, ", ") }

// ToSlice copies the stack bottom to top.
func (s *Stack[T]) ToSlice() []T { return collect[T](s) }

// Clear drops every element.
func (s *Stack[T]) Clear() {
	clear(s.data[:s.len])
	s.len = 0
}

// Push puts v on top, or returns ErrFull.
func (s *Stack[T]) Push(v T) error {
	if s.IsFull() {
		return ErrFull
	}
	s.data[s.len] = v
	s.len++

	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if s.len == 0 {
		return v, false
	}
	s.len--
	var zero T
	v, s.data[s.len] = s.data[s.len], zero

	return v, true
}

// Peek returns the top element.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if s.len == 0 {
		return v, false
	}

	return s.data[s.len-1], true
}

// PeekMut returns a pointer to the top element, or nil.
func (s *Stack[T]) PeekMut() *T {
	if s.len == 0 {
		return nil
	}

	return &s.data[s.len-1]
}

// Values yields the elements bottom to top.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.len; i++ {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}
