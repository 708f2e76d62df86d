package hashmap

import "fmt"

// New returns an empty map with InitCap buckets.
func New[K comparable, V any]() *Map[K, V] {
	m := &Map[K, V]{}
	m.lazyInit()

	return m
}

// WithCap returns an empty map with capacity buckets.
// It panics with ErrInvalidCapacity when capacity < 1.
func WithCap[K comparable, V any](capacity int) *Map[K, V] {
	if capacity < 1 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity))
	}
	m := &Map[K, V]{buckets: make([]bucket[K, V], capacity)}
	m.lazyInit()

	return m
}

// NewWithOptions builds an empty map from opts.
// It returns ErrOptionViolation when an option was given a bad value.
func NewWithOptions[K comparable, V any](opts ...Option) (*Map[K, V], error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	m := &Map[K, V]{
		buckets: make([]bucket[K, V], o.capacity),
		log:     o.logger,
	}
	if o.hasher != nil {
		fn, ok := o.hasher.(func(K) uint64)
		if !ok {
			return nil, fmt.Errorf("%w: hasher %T does not hash %T keys", ErrOptionViolation, o.hasher, *new(K))
		}
		m.hash = fn
	}
	m.lazyInit()

	return m, nil
}

// From bulk-loads pairs. Capacity starts at InitCap for fewer than
// InitCap*LoadFactor pairs, otherwise at len(pairs) rounded up to a multiple
// of InitCap. Later pairs overwrite earlier ones with the same key.
func From[K comparable, V any](pairs []Pair[K, V]) *Map[K, V] {
	capacity := InitCap
	if n := len(pairs); n >= int(InitCap*LoadFactor) {
		capacity = roundUp(max(n, InitCap), InitCap)
	}
	m := WithCap[K, V](capacity)
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}

	return m
}

// roundUp returns the smallest multiple of unit that is >= n.
func roundUp(n, unit int) int {
	return (n + unit - 1) / unit * unit
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (v V, ok bool) {
	if m.size == 0 {
		return v, false
	}
	b := &m.buckets[m.index(k)]
	if i := b.find(k); i >= 0 {
		return b.pairs[i].Value, true
	}

	return v, false
}

// GetMut returns a pointer to the value stored under k, or nil.
// The pointer is valid until the next Insert or Remove.
func (m *Map[K, V]) GetMut(k K) *V {
	if m.size == 0 {
		return nil
	}
	b := &m.buckets[m.index(k)]
	if i := b.find(k); i >= 0 {
		return &b.pairs[i].Value
	}

	return nil
}

// ContainsKey reports whether k is present.
func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.Get(k)

	return ok
}

// Insert stores v under k, overwriting any previous value. Adding a new key
// may grow the table.
func (m *Map[K, V]) Insert(k K, v V) {
	m.lazyInit()
	b := &m.buckets[m.index(k)]
	if i := b.find(k); i >= 0 {
		b.pairs[i].Value = v

		return
	}
	b.pairs = append(b.pairs, Pair[K, V]{Key: k, Value: v})
	m.size++
	m.grow(len(b.pairs))
}

// Remove deletes k and returns its value. A successful removal may shrink
// the table.
func (m *Map[K, V]) Remove(k K) (v V, ok bool) {
	if m.size == 0 {
		return v, false
	}
	b := &m.buckets[m.index(k)]
	i := b.find(k)
	if i < 0 {
		return v, false
	}
	v = b.pairs[i].Value
	last := len(b.pairs) - 1
	copy(b.pairs[i:], b.pairs[i+1:])
	b.pairs[last] = Pair[K, V]{}
	b.pairs = b.pairs[:last]
	m.size--
	m.shrink()

	return v, true
}

// Len returns the number of stored pairs.
func (m *Map[K, V]) Len() int { return m.size }

// IsEmpty reports whether the map holds no pairs.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Cap returns the number of buckets.
func (m *Map[K, V]) Cap() int { return len(m.buckets) }

// Count returns the number of stored pairs by scanning every bucket.
// It always equals Len.
func (m *Map[K, V]) Count() int {
	n := 0
	for i := range m.buckets {
		n += len(m.buckets[i].pairs)
	}

	return n
}

// BucketOccupancy returns how many buckets hold at least one pair.
func (m *Map[K, V]) BucketOccupancy() int {
	n := 0
	for i := range m.buckets {
		if len(m.buckets[i].pairs) > 0 {
			n++
		}
	}

	return n
}

// Clear removes every pair and keeps the bucket count.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		clear(m.buckets[i].pairs)
		m.buckets[i].pairs = nil
	}
	m.size = 0
}
