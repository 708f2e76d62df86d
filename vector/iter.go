package vector

// IntoIter consumes the elements of a Vector from either end.
// Slots are zeroed as they are yielded; Close zeroes the rest.
type IntoIter[T any] struct {
	buf        RawBuffer[T]
	start, end int // live range not yet yielded
}

// IntoIter moves the vector's buffer into a consuming iterator. The vector
// is left empty with no allocation.
func (v *Vector[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{buf: v.buf, end: v.len}
	v.buf = RawBuffer[T]{}
	v.len = 0

	return it
}

// Len returns how many elements remain.
func (it *IntoIter[T]) Len() int { return it.end - it.start }

// Next yields the front element.
func (it *IntoIter[T]) Next() (x T, ok bool) {
	if it.start == it.end {
		return x, false
	}
	var zero T
	x, it.buf.ptr[it.start] = it.buf.ptr[it.start], zero
	it.start++

	return x, true
}

// NextBack yields the back element.
func (it *IntoIter[T]) NextBack() (x T, ok bool) {
	if it.start == it.end {
		return x, false
	}
	it.end--
	var zero T
	x, it.buf.ptr[it.end] = it.buf.ptr[it.end], zero

	return x, true
}

// Close drops the elements not yet yielded and releases the buffer.
// Calling Close more than once is harmless.
func (it *IntoIter[T]) Close() {
	if it.buf.Cap() == 0 {
		return
	}
	clear(it.buf.ptr[it.start:it.end])
	it.start = it.end
	it.buf.Release()
}
