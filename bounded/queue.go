package bounded

import "iter"

// Queue is a double-ended queue over a fixed ring buffer.
type Queue[T any] struct {
	data  []T
	front int // slot of the first element
	len   int
}

// NewQueue returns an empty queue holding at most capacity elements.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{data: make([]T, capOrDefault(capacity))}
}

// NewQueueFrom returns a queue of the given capacity holding the first
// Cap() elements of s.
func NewQueueFrom[T any](capacity int, s []T) *Queue[T] {
	q := NewQueue[T](capacity)
	q.len = copy(q.data, s)

	return q
}

// slot maps a logical position to its ring index.
func (q *Queue[T]) slot(i int) int { return (q.front + i) % len(q.data) }

func (q *Queue[T]) Len() int { return q.len }
func (q *Queue[T]) Cap() int { return len(q.data) }
func (q *Queue[T]) IsEmpty() bool { return q.len == 0 }
func (q *Queue[T]) IsFull() bool { return q.len == len(q.data) }
func (q *Queue[T]) String() string { return render[T](q, ", ") }
func (q *Queue[T]) ToSlice() []T { return collect[T](q) }

// Clear drops every element.
func (q *Queue[T]) Clear() {
	clear(q.data)
	q.front, q.len = 0, 0
}

// PushFront prepends v, or returns ErrFull.
func (q *Queue[T]) PushFront(v T) error {
	if q.IsFull() {
		return ErrFull
	}
	q.front = (q.front - 1 + len(q.data)) % len(q.data)
	q.data[q.front] = v
	q.len++

	return nil
}

// PushBack appends v, or returns ErrFull.
func (q *Queue[T]) PushBack(v T) error {
	if q.IsFull() {
		return ErrFull
	}
	q.data[q.slot(q.len)] = v
	q.len++

	return nil
}

// PopFront removes and returns the first element.
func (q *Queue[T]) PopFront() (v T, ok bool) {
	if q.len == 0 {
		return v, false
	}
	var zero T
	v, q.data[q.front] = q.data[q.front], zero
	q.front = q.slot(1)
	q.len--

	return v, true
}

// PopBack removes and returns the last element.
func (q *Queue[T]) PopBack() (v T, ok bool) {
	if q.len == 0 {
		return v, false
	}
	i := q.slot(q.len - 1)
	var zero T
	v, q.data[i] = q.data[i], zero
	q.len--

	return v, true
}

// Front returns the first element.
func (q *Queue[T]) Front() (v T, ok bool) {
	if q.len == 0 {
		return v, false
	}

	return q.data[q.front], true
}

// Back returns the last element.
func (q *Queue[T]) Back() (v T, ok bool) {
	if q.len == 0 {
		return v, false
	}

	return q.data[q.slot(q.len-1)], true
}

// FrontMut returns a pointer to the first element, or nil.
func (q *Queue[T]) FrontMut() *T {
	if q.len == 0 {
		return nil
	}

	return &q.data[q.front]
}

// BackMut returns a pointer to the last element, or nil.
func (q *Queue[T]) BackMut() *T {
	if q.len == 0 {
		return nil
	}

	return &q.data[q.slot(q.len-1)]
}

// Values yields the elements front to back.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.len; i++ {
			if !yield(q.data[q.slot(i)]) {
				return
			}
		}
	}
}
