package linkedlist

import (
	"fmt"
	"iter"
)

// Iter walks a list from both ends. Next and NextBack share one remaining
// counter, so draining from both sides stops exactly when the two ends meet.
type Iter[T any] struct {
	list       *List[T]
	head, tail link
	remaining  int
	gen        uint64
}

// IterMut is Iter yielding pointers to the stored elements.
type IterMut[T any] struct {
	Iter[T]
}

// IntoIter consumes a list by popping from either end.
type IntoIter[T any] struct {
	list List[T]
}

// Iter returns a double-ended iterator over l.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{list: l, head: l.head, tail: l.tail, remaining: l.len, gen: l.gen}
}

// IterMut returns a double-ended iterator yielding *T.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{Iter: *l.Iter()}
}

// IntoIter moves every element of l into a consuming iterator and leaves l
// empty. Cursors and iterators created on l before the call become stale.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{list: *l}
	*l = List[T]{gen: l.gen + 1}

	return it
}

func (it *Iter[T]) check() {
	if it.gen != it.list.gen {
		panic(fmt.Errorf("%w (iterator generation %d, list generation %d)", ErrStaleCursor, it.gen, it.list.gen))
	}
}

// Len returns how many elements are left.
func (it *Iter[T]) Len() int { return it.remaining }

// Next yields the next element from the front.
func (it *Iter[T]) Next() (v T, ok bool) {
	p := it.nextFront()
	if p == nil {
		return v, false
	}

	return *p, true
}

// NextBack yields the next element from the back.
func (it *Iter[T]) NextBack() (v T, ok bool) {
	p := it.nextBack()
	if p == nil {
		return v, false
	}

	return *p, true
}

func (it *Iter[T]) nextFront() *T {
	it.check()
	if it.remaining == 0 {
		return nil
	}
	n := it.list.slot(it.head)
	it.head = n.next
	it.remaining--

	return &n.val
}

func (it *Iter[T]) nextBack() *T {
	it.check()
	if it.remaining == 0 {
		return nil
	}
	n := it.list.slot(it.tail)
	it.tail = n.prev
	it.remaining--

	return &n.val
}

// Next yields a pointer to the next element from the front, or nil.
func (it *IterMut[T]) Next() *T { return it.nextFront() }

// NextBack yields a pointer to the next element from the back, or nil.
func (it *IterMut[T]) NextBack() *T { return it.nextBack() }

// Len returns how many elements are left.
func (it *IntoIter[T]) Len() int { return it.list.len }

// Next pops the front element.
func (it *IntoIter[T]) Next() (T, bool) { return it.list.PopFront() }

// NextBack pops the back element.
func (it *IntoIter[T]) NextBack() (T, bool) { return it.list.PopBack() }

// All returns an iterator over index/value pairs, front to back.
// Modifying the list's structure inside the loop body panics with ErrStaleCursor.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iter()
		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs, back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iter()
		for i := it.Len() - 1; ; i-- {
			v, ok := it.NextBack()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}
