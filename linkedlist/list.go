package linkedlist

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int { return l.len }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.head == none }

// PushFront prepends v. O(1).
func (l *List[T]) PushFront(v T) {
	l.linkFront(l.alloc(v))
}

// PushBack appends v. O(1).
func (l *List[T]) PushBack(v T) {
	l.linkBack(l.alloc(v))
}

// PopFront removes and returns the first element.
// ok is false when the list is empty.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.head == none {
		return v, false
	}

	return l.unlink(l.head), true
}

// PopBack removes and returns the last element.
// ok is false when the list is empty.
func (l *List[T]) PopBack() (v T, ok bool) {
	if l.tail == none {
		return v, false
	}

	return l.unlink(l.tail), true
}

// Front returns the first element without removing it.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head == none {
		return v, false
	}

	return l.slot(l.head).val, true
}

// Back returns the last element without removing it.
func (l *List[T]) Back() (v T, ok bool) {
	if l.tail == none {
		return v, false
	}

	return l.slot(l.tail).val, true
}

// FrontMut returns a pointer to the first element, or nil when empty.
// The pointer is valid until the next structural change of the list.
func (l *List[T]) FrontMut() *T {
	if l.head == none {
		return nil
	}

	return &l.slot(l.head).val
}

// BackMut returns a pointer to the last element, or nil when empty.
// The pointer is valid until the next structural change of the list.
func (l *List[T]) BackMut() *T {
	if l.tail == none {
		return nil
	}

	return &l.slot(l.tail).val
}

// Insert places v so that it ends up at index at.
// It returns false, leaving the list untouched, when at > Len().
// The walk starts from the nearer end, so at most Len/2 links are followed.
func (l *List[T]) Insert(at int, v T) bool {
	switch {
	case at < 0 || at > l.len:
		return false
	case at == 0:
		l.PushFront(v)
	case at == l.len:
		l.PushBack(v)
	default:
		l.linkBefore(l.nodeAt(at), l.alloc(v))
	}

	return true
}

// Remove deletes and returns the element at index at.
// ok is false, leaving the list untouched, when at >= Len().
func (l *List[T]) Remove(at int) (v T, ok bool) {
	if at < 0 || at >= l.len {
		return v, false
	}

	return l.unlink(l.nodeAt(at)), true
}

// Get returns the element at index i; ok is false when i is out of range.
func (l *List[T]) Get(i int) (v T, ok bool) {
	if i < 0 || i >= l.len {
		return v, false
	}

	return l.slot(l.nodeAt(i)).val, true
}

// At returns the element at index i.
// It panics with ErrIndexOutOfRange when i is not in [0, Len()).
func (l *List[T]) At(i int) T {
	if i < 0 || i >= l.len {
		panic(outOfRange(i, l.len))
	}

	return l.slot(l.nodeAt(i)).val
}

// Set overwrites the element at index i.
// It panics with ErrIndexOutOfRange when i is not in [0, Len()).
func (l *List[T]) Set(i int, v T) {
	if i < 0 || i >= l.len {
		panic(outOfRange(i, l.len))
	}
	l.slot(l.nodeAt(i)).val = v
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (l *List[T]) IndexFunc(pred func(T) bool) int {
	i := 0
	for x := l.head; x != none; x = l.slot(x).next {
		if pred(l.slot(x).val) {
			return i
		}
		i++
	}

	return -1
}

// Clear removes every element.
//
// Nodes are released one by one from the front; the deferred reset runs even
// if the loop is interrupted, so the list never ends up half torn down.
func (l *List[T]) Clear() {
	defer func() {
		l.nodes = nil
		l.free = none
		l.head, l.tail, l.len = none, none, 0
		l.gen++
	}()
	for l.head != none {
		l.unlink(l.head)
	}
}

// ToSlice copies the elements, front to back, into a new slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.len)
	for x := l.head; x != none; x = l.slot(x).next {
		out = append(out, l.slot(x).val)
	}

	return out
}

// Contains reports whether v is present in l.
func Contains[T comparable](l *List[T], v T) bool {
	return Find(l, v) >= 0
}

// Find returns the index of the first element equal to v, or -1.
func Find[T comparable](l *List[T], v T) int {
	return l.IndexFunc(func(e T) bool { return e == v })
}

// FindAll returns the indices of every element equal to v, in order.
// The result is empty (not nil) when nothing matches.
func FindAll[T comparable](l *List[T], v T) []int {
	out := []int{}
	i := 0
	for x := l.head; x != none; x = l.slot(x).next {
		if l.slot(x).val == v {
			out = append(out, i)
		}
		i++
	}

	return out
}
