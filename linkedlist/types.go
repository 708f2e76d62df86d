// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: arena node layout, List header, sentinel errors and the low-level
//       link/unlink primitives every public operation is built on.

package linkedlist

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by panics on contract violations.
var (
	// ErrIndexOutOfRange is wrapped by the panic raised from At and Set.
	ErrIndexOutOfRange = errors.New("linkedlist: index out of range")

	// ErrStaleCursor is wrapped by the panic raised when a cursor or iterator
	// is used after the list was structurally modified by someone else.
	ErrStaleCursor = errors.New("linkedlist: cursor used after list was modified")

	// ErrSelfSplice is wrapped by the panic raised when a list is spliced into itself.
	ErrSelfSplice = errors.New("linkedlist: cannot splice a list into itself")
)

// link is a 1-based handle into List.nodes; the zero link means "no node".
type link int

const none link = 0

// node is one arena slot. prev/next are non-owning handles; the List owns
// every slot through its nodes slice.
type node[T any] struct {
	val  T
	prev link
	next link
}

// List is a doubly-linked list of T.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	nodes []node[T] // arena; slot i is addressed by link(i+1)
	free  link      // head of the free-slot chain (threaded through next)

	head link
	tail link
	len  int

	gen uint64 // bumped on every structural mutation
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// From builds a list holding a copy of s in order.
// Complexity: O(len(s)).
func From[T any](s []T) *List[T] {
	l := &List[T]{nodes: make([]node[T], 0, len(s))}
	for _, v := range s {
		l.PushBack(v)
	}

	return l
}

// slot resolves a non-zero handle to its arena slot.
func (l *List[T]) slot(x link) *node[T] {
	return &l.nodes[x-1]
}

// alloc takes a slot from the free list, or appends one, and stores v in it.
func (l *List[T]) alloc(v T) link {
	if l.free != none {
		x := l.free
		n := l.slot(x)
		l.free = n.next
		*n = node[T]{val: v}

		return x
	}
	l.nodes = append(l.nodes, node[T]{val: v})

	return link(len(l.nodes))
}

// release returns x's value and chains the slot onto the free list.
// The slot's value is zeroed so the arena keeps no reference to it.
func (l *List[T]) release(x link) T {
	n := l.slot(x)
	v := n.val
	*n = node[T]{next: l.free}
	l.free = x

	return v
}

// linkFront splices the detached node x in front of head.
func (l *List[T]) linkFront(x link) {
	n := l.slot(x)
	n.prev = none
	n.next = l.head
	if l.head != none {
		l.slot(l.head).prev = x
	} else {
		l.tail = x
	}
	l.head = x
	l.len++
	l.gen++
}

// linkBack splices the detached node x after tail.
func (l *List[T]) linkBack(x link) {
	n := l.slot(x)
	n.next = none
	n.prev = l.tail
	if l.tail != none {
		l.slot(l.tail).next = x
	} else {
		l.head = x
	}
	l.tail = x
	l.len++
	l.gen++
}

// linkBefore splices the detached node x immediately before at (at != none).
func (l *List[T]) linkBefore(at, x link) {
	a := l.slot(at)
	n := l.slot(x)
	n.next = at
	n.prev = a.prev
	if a.prev != none {
		l.slot(a.prev).next = x
	} else {
		l.head = x
	}
	a.prev = x
	l.len++
	l.gen++
}

// linkAfter splices the detached node x immediately after at (at != none).
func (l *List[T]) linkAfter(at, x link) {
	a := l.slot(at)
	n := l.slot(x)
	n.prev = at
	n.next = a.next
	if a.next != none {
		l.slot(a.next).prev = x
	} else {
		l.tail = x
	}
	a.next = x
	l.len++
	l.gen++
}

// unlink detaches x from its neighbours, fixes head/tail when x was a
// boundary node, releases its slot and returns the value it held.
func (l *List[T]) unlink(x link) T {
	n := l.slot(x)
	if n.prev != none {
		l.slot(n.prev).next = n.next
	} else {
		l.head = n.next
	}
	if n.next != none {
		l.slot(n.next).prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.len--
	l.gen++

	return l.release(x)
}

// nodeAt walks to the i-th node from whichever end is nearer.
// Caller guarantees 0 <= i < l.len.
func (l *List[T]) nodeAt(i int) link {
	if i < l.len-1-i {
		x := l.head
		for ; i > 0; i-- {
			x = l.slot(x).next
		}

		return x
	}
	x := l.tail
	for k := l.len - 1 - i; k > 0; k-- {
		x = l.slot(x).prev
	}

	return x
}

// outOfRange builds the panic value for a subscript outside [0, len).
func outOfRange(i, n int) error {
	return fmt.Errorf("%w [%d] with length %d", ErrIndexOutOfRange, i, n)
}
