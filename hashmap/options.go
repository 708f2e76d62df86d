// SPDX-License-Identifier: MIT
// Package: lvds/hashmap
//
// options.go - functional configuration for NewWithOptions.
//
// Design:
//   • Options are functional (type Option func(*Options)).
//   • WithX constructors never panic; a bad value is recorded and surfaced by
//     NewWithOptions as ErrOptionViolation.
//   • nil arguments are ignored, so callers can pass optional values through.

package hashmap

import (
	"fmt"

	"go.uber.org/zap"
)

// Option mutates Options before a Map is built.
type Option func(*Options)

// Options is the effective configuration of NewWithOptions.
type Options struct {
	capacity int
	hasher   any // func(K) uint64, checked against K in NewWithOptions
	logger   *zap.Logger
	err      error
}

// DefaultOptions returns InitCap buckets, the maphash hasher and a no-op logger.
func DefaultOptions() Options {
	return Options{capacity: InitCap, logger: zap.NewNop()}
}

// WithCapacity sets the initial bucket count.
//
// Behavior highlights:
//   - n < 1 is recorded as ErrOptionViolation.
//   - The capacity is a starting point; later inserts and removes resize as usual.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: capacity %d < 1", ErrOptionViolation, n)

			return
		}
		o.capacity = n
	}
}

// WithHasher replaces the key hash. fn must be deterministic for the life of
// the map; its result is reduced modulo the bucket count.
//
// Behavior highlights:
//   - nil is ignored.
//   - A hasher whose key type differs from the map's K is reported by
//     NewWithOptions as ErrOptionViolation.
//
// Notes:
//   - A constant hasher is legal and degrades every operation to a linear scan;
//     tests use it to force long chains.
func WithHasher[K comparable](fn func(K) uint64) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		o.hasher = fn
	}
}

// WithLogger routes resize diagnostics to l at Debug level. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			return
		}
		o.logger = l
	}
}

// gatherOptions applies opts over DefaultOptions in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
