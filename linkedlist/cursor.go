package linkedlist

import "fmt"

// Cursor is a read-only traversal handle into a List.
//
// A cursor always sits either on a node or on the "ghost" position, which
// lies after the tail and before the head. MoveNext from the tail lands on
// the ghost, and MoveNext from the ghost wraps to the head (MovePrev mirrors
// this). While on the ghost, Index reports false.
type Cursor[T any] struct {
	list  *List[T]
	cur   link
	index int // == list.len while on the ghost
	gen   uint64
}

// CursorMut is a Cursor that can also edit the list around its position.
// It stays valid across its own edits; edits made through the list or
// another cursor invalidate it.
type CursorMut[T any] struct {
	Cursor[T]
}

// CursorFront returns a cursor on the first element (the ghost if empty).
func (l *List[T]) CursorFront() *Cursor[T] {
	return &Cursor[T]{list: l, cur: l.head, index: 0, gen: l.gen}
}

// CursorBack returns a cursor on the last element (the ghost if empty).
func (l *List[T]) CursorBack() *Cursor[T] {
	return &Cursor[T]{list: l, cur: l.tail, index: max(l.len-1, 0), gen: l.gen}
}

// CursorFrontMut returns a mutable cursor on the first element.
func (l *List[T]) CursorFrontMut() *CursorMut[T] {
	return &CursorMut[T]{Cursor: *l.CursorFront()}
}

// CursorBackMut returns a mutable cursor on the last element.
func (l *List[T]) CursorBackMut() *CursorMut[T] {
	return &CursorMut[T]{Cursor: *l.CursorBack()}
}

func (c *Cursor[T]) check() {
	if c.gen != c.list.gen {
		panic(fmt.Errorf("%w (cursor generation %d, list generation %d)", ErrStaleCursor, c.gen, c.list.gen))
	}
}

// Index returns the logical position of the cursor; ok is false on the ghost.
func (c *Cursor[T]) Index() (int, bool) {
	c.check()
	if c.cur == none {
		return 0, false
	}

	return c.index, true
}

// IsGhost reports whether the cursor sits on the ghost position.
func (c *Cursor[T]) IsGhost() bool {
	c.check()

	return c.cur == none
}

// MoveNext advances to the next node; from the tail it moves to the ghost,
// and from the ghost to the head.
func (c *Cursor[T]) MoveNext() {
	c.check()
	if c.cur == none {
		c.cur = c.list.head
		c.index = 0

		return
	}
	c.cur = c.list.slot(c.cur).next
	if c.cur == none {
		c.index = c.list.len
	} else {
		c.index++
	}
}

// MovePrev steps back to the previous node; from the head it moves to the
// ghost, and from the ghost to the tail.
func (c *Cursor[T]) MovePrev() {
	c.check()
	if c.cur == none {
		c.cur = c.list.tail
		c.index = max(c.list.len-1, 0)

		return
	}
	c.cur = c.list.slot(c.cur).prev
	if c.cur == none {
		c.index = c.list.len
	} else {
		c.index--
	}
}

// Current returns the element under the cursor; ok is false on the ghost.
func (c *Cursor[T]) Current() (v T, ok bool) {
	c.check()
	if c.cur == none {
		return v, false
	}

	return c.list.slot(c.cur).val, true
}

// PeekNext returns the element MoveNext would land on, without moving.
func (c *Cursor[T]) PeekNext() (v T, ok bool) {
	c.check()
	next := c.list.head
	if c.cur != none {
		next = c.list.slot(c.cur).next
	}
	if next == none {
		return v, false
	}

	return c.list.slot(next).val, true
}

// PeekPrev returns the element MovePrev would land on, without moving.
func (c *Cursor[T]) PeekPrev() (v T, ok bool) {
	c.check()
	prev := c.list.tail
	if c.cur != none {
		prev = c.list.slot(c.cur).prev
	}
	if prev == none {
		return v, false
	}

	return c.list.slot(prev).val, true
}

// Front returns the list's first element.
func (c *Cursor[T]) Front() (T, bool) {
	c.check()

	return c.list.Front()
}

// Back returns the list's last element.
func (c *Cursor[T]) Back() (T, bool) {
	c.check()

	return c.list.Back()
}

// sync adopts the list's generation after an edit made by this cursor.
func (c *CursorMut[T]) sync() {
	c.gen = c.list.gen
}

// CurrentMut returns a pointer to the element under the cursor, or nil on
// the ghost. The pointer is valid until the next structural change.
func (c *CursorMut[T]) CurrentMut() *T {
	c.check()
	if c.cur == none {
		return nil
	}

	return &c.list.slot(c.cur).val
}

// InsertBefore links v immediately before the current node. On the ghost,
// "before" means after the tail, so v is appended.
func (c *CursorMut[T]) InsertBefore(v T) {
	c.check()
	x := c.list.alloc(v)
	if c.cur == none {
		c.list.linkBack(x)
		c.index = c.list.len
	} else {
		c.list.linkBefore(c.cur, x)
		c.index++
	}
	c.sync()
}

// InsertAfter links v immediately after the current node. On the ghost,
// "after" means before the head, so v is prepended.
func (c *CursorMut[T]) InsertAfter(v T) {
	c.check()
	x := c.list.alloc(v)
	if c.cur == none {
		c.list.linkFront(x)
		c.index = c.list.len
	} else {
		c.list.linkAfter(c.cur, x)
	}
	c.sync()
}

// RemoveCurrent unlinks the current node and moves the cursor to the node
// that followed it (the ghost if it was the tail). On the ghost nothing is
// removed and ok is false.
func (c *CursorMut[T]) RemoveCurrent() (v T, ok bool) {
	c.check()
	if c.cur == none {
		return v, false
	}
	next := c.list.slot(c.cur).next
	v = c.list.unlink(c.cur)
	c.cur = next
	if c.cur == none {
		c.index = c.list.len
	}
	c.sync()

	return v, true
}

// PushFront prepends v without moving the cursor off its node.
func (c *CursorMut[T]) PushFront(v T) {
	c.check()
	c.list.PushFront(v)
	if c.cur == none {
		c.index = c.list.len
	} else {
		c.index++
	}
	c.sync()
}

// PushBack appends v without moving the cursor off its node.
func (c *CursorMut[T]) PushBack(v T) {
	c.check()
	c.list.PushBack(v)
	if c.cur == none {
		c.index = c.list.len
	}
	c.sync()
}

// PopFront removes the first element. If the cursor was on it, the cursor
// moves to the new head.
func (c *CursorMut[T]) PopFront() (v T, ok bool) {
	c.check()
	if c.list.head == none {
		return v, false
	}
	onHead := c.cur == c.list.head
	if onHead {
		c.cur = c.list.slot(c.cur).next
	}
	v, _ = c.list.PopFront()
	switch {
	case c.cur == none:
		c.index = c.list.len
	case !onHead:
		c.index--
	}
	c.sync()

	return v, true
}

// PopBack removes the last element. If the cursor was on it, the cursor
// moves to the ghost.
func (c *CursorMut[T]) PopBack() (v T, ok bool) {
	c.check()
	if c.list.tail == none {
		return v, false
	}
	if c.cur == c.list.tail {
		c.cur = none
	}
	v, _ = c.list.PopBack()
	if c.cur == none {
		c.index = c.list.len
	}
	c.sync()

	return v, true
}

// SpliceAfter moves every element of other, in order, to just after the
// current node (to the front of the list on the ghost). other is left empty.
// It panics with ErrSelfSplice if other is the cursor's own list.
func (c *CursorMut[T]) SpliceAfter(other *List[T]) {
	c.check()
	if other == c.list {
		panic(ErrSelfSplice)
	}
	if other == nil || other.len == 0 {
		return
	}
	for x := other.tail; x != none; x = other.slot(x).prev {
		c.InsertAfter(other.slot(x).val)
	}
	other.Clear()
}

// SpliceBefore moves every element of other, in order, to just before the
// current node (to the back of the list on the ghost). other is left empty.
// It panics with ErrSelfSplice if other is the cursor's own list.
func (c *CursorMut[T]) SpliceBefore(other *List[T]) {
	c.check()
	if other == c.list {
		panic(ErrSelfSplice)
	}
	if other == nil || other.len == 0 {
		return
	}
	for x := other.head; x != none; x = other.slot(x).next {
		c.InsertBefore(other.slot(x).val)
	}
	other.Clear()
}
