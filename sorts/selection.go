package sorts

import "golang.org/x/exp/constraints"

// Selection sorts s ascending.
func Selection[T constraints.Ordered](s []T, opts ...Option) {
	SelectionFunc(s, ascending[T], opts...)
}

// SelectionFunc moves the minimum of the unsorted suffix to its front on
// every pass.
func SelectionFunc[T any](s []T, less func(a, b T) bool, opts ...Option) {
	n := len(s)
	if n < 2 {
		return
	}
	tr := newTracer[T]("selection", opts)
	tr.begin(s)
	for i := 0; i < n-1; i++ {
		m := i
		for j := i + 1; j < n; j++ {
			if less(s[j], s[m]) {
				m = j
			}
		}
		s[i], s[m] = s[m], s[i]
		tr.step(s)
	}
}

// Heap sorts s ascending.
func Heap[T constraints.Ordered](s []T, opts ...Option) { HeapFunc(s, ascending[T], opts...) }

// HeapFunc builds a max-heap in place, then repeatedly swaps the root to the
// end of the shrinking heap.
func HeapFunc[T any](s []T, less func(a, b T) bool, opts ...Option) {
	n := len(s)
	if n < 2 {
		return
	}
	tr := newTracer[T]("heap", opts)
	tr.begin(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, less)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end, less)
		tr.step(s)
	}
}

// siftDown restores the heap property below root within s[:n].
func siftDown[T any](s []T, root, n int, less func(a, b T) bool) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && less(s[child], s[child+1]) {
			child++
		}
		if !less(s[root], s[child]) {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
