package sorts

import "golang.org/x/exp/constraints"

// Insertion sorts s ascending.
func Insertion[T constraints.Ordered](s []T, opts ...Option) {
	InsertionFunc(s, ascending[T], opts...)
}

// InsertionFunc grows a sorted prefix one element at a time.
func InsertionFunc[T any](s []T, less func(a, b T) bool, opts ...Option) {
	if len(s) < 2 {
		return
	}
	tr := newTracer[T]("insertion", opts)
	tr.begin(s)
	for i := 1; i < len(s); i++ {
		base := s[i]
		j := i
		for ; j > 0 && less(base, s[j-1]); j-- {
			s[j] = s[j-1]
		}
		s[j] = base
		tr.step(s)
	}
}

// BinaryInsertion sorts s ascending.
func BinaryInsertion[T constraints.Ordered](s []T, opts ...Option) {
	BinaryInsertionFunc(s, ascending[T], opts...)
}

// BinaryInsertionFunc is InsertionFunc with the insertion point found by
// binary search. Equal elements keep their order: the new element goes
// after every element it is not less than.
func BinaryInsertionFunc[T any](s []T, less func(a, b T) bool, opts ...Option) {
	if len(s) < 2 {
		return
	}
	tr := newTracer[T]("binary-insertion", opts)
	tr.begin(s)
	for i := 1; i < len(s); i++ {
		base := s[i]
		lo, hi := 0, i
		for lo < hi {
			mid := int(uint(lo+hi) >> 1)
			if less(base, s[mid]) {
				hi = mid
			} else {
				lo = mid + 1
			}
		}
		copy(s[lo+1:i+1], s[lo:i])
		s[lo] = base
		tr.step(s)
	}
}

// Shell sorts s ascending.
func Shell[T constraints.Ordered](s []T, opts ...Option) { ShellFunc(s, ascending[T], opts...) }

// ShellFunc runs gapped insertion sorts with Knuth's 3h+1 gap sequence.
// One trace record is emitted per gap.
func ShellFunc[T any](s []T, less func(a, b T) bool, opts ...Option) {
	n := len(s)
	if n < 2 {
		return
	}
	tr := newTracer[T]("shell", opts)
	tr.begin(s)
	h := 1
	for h < n/3 {
		h = 3*h + 1
	}
	for ; h >= 1; h /= 3 {
		for i := h; i < n; i++ {
			base := s[i]
			j := i
			for ; j >= h && less(base, s[j-h]); j -= h {
				s[j] = s[j-h]
			}
			s[j] = base
		}
		tr.step(s)
	}
}
