package ringbuffer

import (
	"go.uber.org/zap"
)

const defaultName = "ringbuffer"

// Option configures a RingBuffer.
type Option[T any] func(*options[T])

// DropCallback is called with every element the buffer releases on its own,
// after the element's own Cleanup or Close has run.
type DropCallback[T any] func(item T)

type options[T any] struct {
	name         string
	logger       *zap.Logger
	dropCallback DropCallback[T]
}

// WithName labels the buffer in log entries and exported metrics.
// An empty name is ignored.
func WithName[T any](name string) Option[T] {
	return func(o *options[T]) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger used for diagnostics. A nil logger is ignored.
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(o *options[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDropCallback registers a callback for released elements.
func WithDropCallback[T any](callback DropCallback[T]) Option[T] {
	return func(o *options[T]) {
		o.dropCallback = callback
	}
}

func applyOptions[T any](opts ...Option[T]) *options[T] {
	o := &options[T]{
		name:   defaultName,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	o.logger = o.logger.Named("ringbuffer").With(zap.String("buffer", o.name))
	return o
}
