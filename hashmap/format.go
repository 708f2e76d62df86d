package hashmap

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// All returns an iterator over the pairs in bucket order.
// The map must not be modified during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.buckets {
			for _, p := range m.buckets[i].pairs {
				if !yield(p.Key, p.Value) {
					return
				}
			}
		}
	}
}

// ToSlice copies the pairs in bucket order.
func (m *Map[K, V]) ToSlice() []Pair[K, V] {
	out := make([]Pair[K, V], 0, m.size)
	for k, v := range m.All() {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}

	return out
}

// Keys returns the keys in bucket order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.size)
	for k := range m.All() {
		out = append(out, k)
	}

	return out
}

// Values returns the values in bucket order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.size)
	for _, v := range m.All() {
		out = append(out, v)
	}

	return out
}

// SortedPairs returns the pairs ordered by key, independent of bucket layout.
func SortedPairs[K constraints.Ordered, V any](m *Map[K, V]) []Pair[K, V] {
	out := m.ToSlice()
	slices.SortFunc(out, func(a, b Pair[K, V]) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}

		return 0
	})

	return out
}

// String renders the map as "{k: v, k2: v2}" in bucket order ("{}" when empty).
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", k, v)
	}
	sb.WriteByte('}')

	return sb.String()
}

// Equal reports whether a and b hold the same key/value pairs, regardless
// of capacity, hasher or bucket order.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied value comparison.
func EqualFunc[K comparable, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.size != b.size {
		return false
	}
	for k, v := range a.All() {
		w, ok := b.Get(k)
		if !ok || !eq(v, w) {
			return false
		}
	}

	return true
}
