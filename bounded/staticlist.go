package bounded

import (
	"fmt"
	"iter"
)

const nilIdx = -1

type snode[T any] struct {
	val        T
	prev, next int
}

// StaticList is a doubly-linked list whose nodes live in a fixed array.
// Unused slots form a singly-linked free list threaded through next.
type StaticList[T any] struct {
	nodes      []snode[T]
	free       int
	head, tail int
	len        int
}

// NewStaticList returns an empty list with capacity node slots.
func NewStaticList[T any](capacity int) *StaticList[T] {
	l := &StaticList[T]{nodes: make([]snode[T], capOrDefault(capacity))}
	l.reset()

	return l
}

// NewStaticListFrom returns a list of the given capacity holding the first
// Cap() elements of s.
func NewStaticListFrom[T any](capacity int, s []T) *StaticList[T] {
	l := NewStaticList[T](capacity)
	for _, v := range s {
		if l.PushBack(v) != nil {
			break
		}
	}

	return l
}

// reset chains every slot onto the free list in index order.
func (l *StaticList[T]) reset() {
	for i := range l.nodes {
		l.nodes[i] = snode[T]{prev: nilIdx, next: i + 1}
	}
	l.nodes[len(l.nodes)-1].next = nilIdx
	l.free = 0
	l.head, l.tail, l.len = nilIdx, nilIdx, 0
}

func (l *StaticList[T]) alloc(v T) (int, bool) {
	if l.free == nilIdx {
		return 0, false
	}
	i := l.free
	l.free = l.nodes[i].next
	l.nodes[i] = snode[T]{val: v, prev: nilIdx, next: nilIdx}

	return i, true
}

func (l *StaticList[T]) release(i int) {
	l.nodes[i] = snode[T]{prev: nilIdx, next: l.free}
	l.free = i
}

// nodeAt walks to the i-th node from the nearer end; 0 <= i < len.
func (l *StaticList[T]) nodeAt(i int) int {
	if i < l.len-1-i {
		x := l.head
		for ; i > 0; i-- {
			x = l.nodes[x].next
		}

		return x
	}
	x := l.tail
	for k := l.len - 1 - i; k > 0; k-- {
		x = l.nodes[x].prev
	}

	return x
}

func (l *StaticList[T]) Len() int { return l.len }
func (l *StaticList[T]) Cap() int { return len(l.nodes) }
func (l *StaticList[T]) IsEmpty() bool { return l.len == 0 }
func (l *StaticList[T]) IsFull() bool { return l.free == nilIdx }
func (l *StaticList[T]) ToSlice() []T { return collect[T](l) }

// String renders the list as "[a <-> b <-> c]".
func (l *StaticList[T]) String() string { return render[T](l, " <-> ") }

// Clear drops every element and rebuilds the free list.
func (l *StaticList[T]) Clear() { l.reset() }

// Insert links v so that it ends up at index at.
// It returns ErrIndexOutOfRange when at > Len() and ErrFull when no slot is left.
func (l *StaticList[T]) Insert(at int, v T) error {
	if at < 0 || at > l.len {
		return fmt.Errorf("%w: insert at %d with length %d", ErrIndexOutOfRange, at, l.len)
	}
	x, ok := l.alloc(v)
	if !ok {
		return ErrFull
	}
	n := &l.nodes[x]
	switch {
	case at == l.len:
		n.prev = l.tail
		if l.tail != nilIdx {
			l.nodes[l.tail].next = x
		} else {
			l.head = x
		}
		l.tail = x
	default:
		succ := l.nodeAt(at)
		n.next = succ
		n.prev = l.nodes[succ].prev
		if n.prev != nilIdx {
			l.nodes[n.prev].next = x
		} else {
			l.head = x
		}
		l.nodes[succ].prev = x
	}
	l.len++

	return nil
}

// Remove unlinks and returns the element at index at.
func (l *StaticList[T]) Remove(at int) (v T, ok bool) {
	if at < 0 || at >= l.len {
		return v, false
	}
	x := l.nodeAt(at)
	n := l.nodes[x]
	if n.prev != nilIdx {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nilIdx {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.release(x)
	l.len--

	return n.val, true
}

func (l *StaticList[T]) PushFront(v T) error { return l.Insert(0, v) }
func (l *StaticList[T]) PushBack(v T) error { return l.Insert(l.len, v) }
func (l *StaticList[T]) PopFront() (T, bool) { return l.Remove(0) }
func (l *StaticList[T]) PopBack() (T, bool) { return l.Remove(l.len - 1) }

// Front returns the first element.
func (l *StaticList[T]) Front() (v T, ok bool) {
	if l.head == nilIdx {
		return v, false
	}

	return l.nodes[l.head].val, true
}

// Back returns the last element.
func (l *StaticList[T]) Back() (v T, ok bool) {
	if l.tail == nilIdx {
		return v, false
	}

	return l.nodes[l.tail].val, true
}

// Get returns the element at i.
func (l *StaticList[T]) Get(i int) (v T, ok bool) {
	if i < 0 || i >= l.len {
		return v, false
	}

	return l.nodes[l.nodeAt(i)].val, true
}

// At returns the element at i and panics when i is out of range.
func (l *StaticList[T]) At(i int) T {
	if i < 0 || i >= l.len {
		panic(outOfRange(i, l.len))
	}

	return l.nodes[l.nodeAt(i)].val
}

// Swap exchanges the elements at positions i and j.
func (l *StaticList[T]) Swap(i, j int) error {
	if i < 0 || i >= l.len {
		return outOfRange(i, l.len)
	}
	if j < 0 || j >= l.len {
		return outOfRange(j, l.len)
	}
	if i == j {
		return nil
	}
	a, b := l.nodeAt(i), l.nodeAt(j)
	l.nodes[a].val, l.nodes[b].val = l.nodes[b].val, l.nodes[a].val

	return nil
}

// Reverse reverses the order of the list in place by flipping every link.
func (l *StaticList[T]) Reverse() {
	for x := l.head; x != nilIdx; {
		n := &l.nodes[x]
		n.prev, n.next = n.next, n.prev
		x = n.prev
	}
	l.head, l.tail = l.tail, l.head
}

// Values yields the elements front to back.
func (l *StaticList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := l.head; x != nilIdx; x = l.nodes[x].next {
			if !yield(l.nodes[x].val) {
				return
			}
		}
	}
}
