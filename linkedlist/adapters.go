package linkedlist

// Queue is a double-ended queue backed by a List.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	list List[T]
}

// NewQueue returns a queue holding a copy of s, s[0] at the front.
func NewQueue[T any](s ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, v := range s {
		q.list.PushBack(v)
	}

	return q
}

func (q *Queue[T]) Len() int { return q.list.Len() }
func (q *Queue[T]) IsEmpty() bool { return q.list.IsEmpty() }
func (q *Queue[T]) PushFront(v T) { q.list.PushFront(v) }
func (q *Queue[T]) PushBack(v T) { q.list.PushBack(v) }
func (q *Queue[T]) PopFront() (T, bool) { return q.list.PopFront() }
func (q *Queue[T]) PopBack() (T, bool) { return q.list.PopBack() }
func (q *Queue[T]) Front() (T, bool) { return q.list.Front() }
func (q *Queue[T]) Back() (T, bool) { return q.list.Back() }
func (q *Queue[T]) FrontMut() *T { return q.list.FrontMut() }
func (q *Queue[T]) BackMut() *T { return q.list.BackMut() }
func (q *Queue[T]) Clear() { q.list.Clear() }
func (q *Queue[T]) ToSlice() []T { return q.list.ToSlice() }
func (q *Queue[T]) String() string { return q.list.String() }
func (q *Queue[T]) Iter() *Iter[T] { return q.list.Iter() }
func (q *Queue[T]) IntoIter() *IntoIter[T] { return q.list.IntoIter() }

// Stack is a LIFO stack backed by a List; the top is the list's back.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	list List[T]
}

// NewStack returns a stack with s pushed in order, so s[len(s)-1] is on top.
func NewStack[T any](s ...T) *Stack[T] {
	st := &Stack[T]{}
	for _, v := range s {
		st.list.PushBack(v)
	}

	return st
}

func (s *Stack[T]) Len() int { return s.list.Len() }
func (s *Stack[T]) IsEmpty() bool { return s.list.IsEmpty() }
func (s *Stack[T]) Push(v T) { s.list.PushBack(v) }
func (s *Stack[T]) Pop() (T, bool) { return s.list.PopBack() }
func (s *Stack[T]) Peek() (T, bool) { return s.list.Back() }
func (s *Stack[T]) PeekMut() *T { return s.list.BackMut() }
func (s *Stack[T]) Clear() { s.list.Clear() }
func (s *Stack[T]) String() string { return s.list.String() }

// ToSlice copies the stack bottom to top.
func (s *Stack[T]) ToSlice() []T { return s.list.ToSlice() }
