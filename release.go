package ringbuffer

import (
	"io"
)

// Cleanable is an interface for types that require explicit cleanup
// when they are dropped from the RingBuffer (either by being overwritten
// through Add, or by Clear and Close).
type Cleanable interface {
	// Cleanup performs any necessary resource release.
	Cleanup()
}

// release disposes of an element the buffer is discarding. Cleanable takes
// precedence over io.Closer.
func (rb *RingBuffer[T]) release(item T) error {
	var err error
	switch r := any(item).(type) {
	case Cleanable:
		r.Cleanup()
	case io.Closer:
		err = r.Close()
	}
	if rb.opts.dropCallback != nil {
		rb.opts.dropCallback(item)
	}
	rb.stats.releases.Inc()
	return err
}
