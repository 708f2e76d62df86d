package sorts

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures a sort call.
type Option func(*Options)

// Options holds the effective configuration of a sort call.
type Options struct {
	logger *zap.Logger
}

// DefaultOptions traces nothing.
func DefaultOptions() Options {
	return Options{logger: zap.NewNop()}
}

// WithLogger enables per-pass Debug tracing on l. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// tracer reports the state of a slice between passes.
type tracer[T any] struct {
	log  *zap.Logger
	algo string
	pass int
}

func newTracer[T any](algo string, opts []Option) *tracer[T] {
	return &tracer[T]{log: gatherOptions(opts).logger, algo: algo}
}

func (t *tracer[T]) begin(s []T) {
	if ce := t.log.Check(zap.DebugLevel, "sort begin"); ce != nil {
		ce.Write(zap.String("algorithm", t.algo), zap.String("state", fmt.Sprint(s)))
	}
}

func (t *tracer[T]) step(s []T) {
	t.pass++
	if ce := t.log.Check(zap.DebugLevel, "sort pass"); ce != nil {
		ce.Write(
			zap.String("algorithm", t.algo),
			zap.Int("pass", t.pass),
			zap.String("state", fmt.Sprint(s)),
		)
	}
}
