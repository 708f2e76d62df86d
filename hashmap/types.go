// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: resize constants, sentinel errors, Pair, bucket and the Map header.

package hashmap

import (
	"errors"
	"hash/maphash"

	"go.uber.org/zap"
)

// Resize policy.
const (
	InitCap      = 100  // default bucket count and rounding unit for shrink
	ShrinkCap    = 1000 // no shrinking at or below this many buckets
	BucketCap    = 10   // chain length that may trigger an early grow
	LowFactor    = 0.25
	LoadFactor   = 0.75
	GrowthFactor = 2
)

var (
	// ErrInvalidCapacity is wrapped by the panic from WithCap(n) for n < 1.
	ErrInvalidCapacity = errors.New("hashmap: capacity must be at least 1")

	// ErrOptionViolation is returned by NewWithOptions for a bad option value.
	ErrOptionViolation = errors.New("hashmap: invalid option value")
)

// Pair is one key/value entry.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// bucket holds the pairs whose keys hash to the same slot; keys are unique
// within it.
type bucket[K comparable, V any] struct {
	pairs []Pair[K, V]
}

// find returns the position of k in the bucket, or -1.
func (b *bucket[K, V]) find(k K) int {
	for i := range b.pairs {
		if b.pairs[i].Key == k {
			return i
		}
	}

	return -1
}

// Map is a hash map from K to V.
// The zero value is an empty map ready to use with default options.
type Map[K comparable, V any] struct {
	buckets []bucket[K, V]
	size    int // pairs across all buckets

	hash func(K) uint64
	log  *zap.Logger
}

// seedHasher returns the default key hash: maphash under a fresh seed.
func seedHasher[K comparable]() func(K) uint64 {
	seed := maphash.MakeSeed()

	return func(k K) uint64 { return maphash.Comparable(seed, k) }
}

// lazyInit gives a zero-value Map its default buckets, hasher and logger.
func (m *Map[K, V]) lazyInit() {
	if m.buckets == nil {
		m.buckets = make([]bucket[K, V], InitCap)
	}
	if m.hash == nil {
		m.hash = seedHasher[K]()
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
}

// index maps k to its bucket.
func (m *Map[K, V]) index(k K) int {
	return int(m.hash(k) % uint64(len(m.buckets)))
}
