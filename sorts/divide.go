package sorts

import "golang.org/x/exp/constraints"

// Merge sorts s ascending.
func Merge[T constraints.Ordered](s []T, opts ...Option) { MergeFunc(s, ascending[T], opts...) }

// MergeFunc is a stable top-down merge sort using one scratch buffer of
// len(s). One trace record is emitted per merge.
func MergeFunc[T any](s []T, less func(a, b T) bool, opts ...Option) {
	if len(s) < 2 {
		return
	}
	tr := newTracer[T]("merge", opts)
	tr.begin(s)
	buf := make([]T, len(s))
	mergeSort(s, buf, 0, len(s), less, tr)
}

func mergeSort[T any](s, buf []T, lo, hi int, less func(a, b T) bool, tr *tracer[T]) {
	if hi-lo < 2 {
		return
	}
	mid := int(uint(lo+hi) >> 1)
	mergeSort(s, buf, lo, mid, less, tr)
	mergeSort(s, buf, mid, hi, less, tr)
	if !less(s[mid], s[mid-1]) {
		return // already in order
	}
	copy(buf[lo:hi], s[lo:hi])
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if less(buf[j], buf[i]) {
			s[k] = buf[j]
			j++
		} else {
			s[k] = buf[i]
			i++
		}
		k++
	}
	k += copy(s[k:], buf[i:mid])
	copy(s[k:hi], buf[j:hi])
	tr.step(s)
}

// Quick sorts s ascending.
func Quick[T constraints.Ordered](s []T, opts ...Option) { QuickFunc(s, ascending[T], opts...) }

// QuickFunc partitions around a median-of-three pivot and recurses into the
// smaller side only, looping on the larger, so stack depth is O(log n).
func QuickFunc[T any](s []T, less func(a, b T) bool, opts ...Option) {
	if len(s) < 2 {
		return
	}
	tr := newTracer[T]("quick", opts)
	tr.begin(s)
	quickSort(s, 0, len(s)-1, less, tr)
}

func quickSort[T any](s []T, lo, hi int, less func(a, b T) bool, tr *tracer[T]) {
	for lo < hi {
		p := partition(s, lo, hi, less)
		tr.step(s)
		if p-lo < hi-p {
			quickSort(s, lo, p-1, less, tr)
			lo = p + 1
		} else {
			quickSort(s, p+1, hi, less, tr)
			hi = p - 1
		}
	}
}

// partition moves the median of s[lo], s[mid], s[hi] to hi, then places it
// at its final index and returns that index.
func partition[T any](s []T, lo, hi int, less func(a, b T) bool) int {
	mid := lo + (hi-lo)/2
	if less(s[lo], s[mid]) != less(s[lo], s[hi]) {
		s[lo], s[hi] = s[hi], s[lo]
	} else if less(s[mid], s[lo]) != less(s[mid], s[hi]) {
		s[mid], s[hi] = s[hi], s[mid]
	}
	pivot := s[hi]
	tail := lo
	for i := lo; i < hi; i++ {
		if !less(pivot, s[i]) {
			s[i], s[tail] = s[tail], s[i]
			tail++
		}
	}
	s[tail], s[hi] = s[hi], s[tail]

	return tail
}
