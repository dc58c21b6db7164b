package ringbuffer

import (
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// RingBuffer is a generic, fixed-capacity circular buffer. When the buffer is
// full, new items overwrite the oldest ones.
//
// A RingBuffer is not safe for concurrent use. Callers that share one between
// goroutines must serialize every call, reads included, themselves. Only the
// value returned by Stats may be read concurrently with mutation.
type RingBuffer[T any] struct {
	data []T
	// head is the physical index of the oldest item.
	head int
	// count is the number of live items, starting at head.
	count int
	// mods is bumped by every mutation so iterators can detect them.
	mods uint64

	opts  *options[T]
	stats *Stats
}

// New creates a new RingBuffer with the given capacity. If the provided
// capacity is less than 1, it defaults to a capacity of 1.
func New[T any](capacity int, opts ...Option[T]) *RingBuffer[T] {
	o := applyOptions(opts...)
	if capacity <= 0 {
		o.logger.Debug("capacity below minimum, using 1", zap.Int("requested", capacity))
		capacity = 1
	}
	return &RingBuffer[T]{
		data:  make([]T, capacity),
		opts:  o,
		stats: newStats(),
	}
}

// Len returns the number of items in the buffer.
func (rb *RingBuffer[T]) Len() int {
	return rb.count
}

// Cap returns the fixed capacity of the buffer.
func (rb *RingBuffer[T]) Cap() int {
	return len(rb.data)
}

// IsEmpty reports whether the buffer holds no items.
func (rb *RingBuffer[T]) IsEmpty() bool {
	return rb.count == 0
}

// IsFull reports whether the next push will overwrite the oldest item.
func (rb *RingBuffer[T]) IsFull() bool {
	return rb.count == len(rb.data)
}

// Name returns the label given with WithName.
func (rb *RingBuffer[T]) Name() string {
	return rb.opts.name
}

// Stats returns the buffer's operation counters.
func (rb *RingBuffer[T]) Stats() *Stats {
	return rb.stats
}

// physical maps a logical index to an index into data.
func (rb *RingBuffer[T]) physical(i int) int {
	return (rb.head + i) % len(rb.data)
}

// Push appends item as the newest element. If the buffer was full, the oldest
// element is evicted and returned with ok set to true. The caller owns the
// evicted value: it is neither cleaned up nor passed to the drop callback.
func (rb *RingBuffer[T]) Push(item T) (evicted T, ok bool) {
	rb.mods++
	rb.stats.pushes.Inc()
	if rb.count == len(rb.data) {
		evicted, ok = rb.data[rb.head], true
		rb.data[rb.head] = item
		rb.head = rb.physical(1)
		rb.stats.evictions.Inc()
		return evicted, ok
	}
	rb.data[rb.physical(rb.count)] = item
	rb.count++
	rb.stats.setSize(rb.count)
	return evicted, false
}

// Add appends item like Push, but releases an evicted element instead of
// returning it: Cleanup or Close is called on it if it implements Cleanable or
// io.Closer, followed by the drop callback.
func (rb *RingBuffer[T]) Add(item T) {
	evicted, ok := rb.Push(item)
	if !ok {
		return
	}
	if err := rb.release(evicted); err != nil {
		rb.opts.logger.Warn("failed to release overwritten item", zap.Error(err))
	}
}

// Pop removes and returns the oldest item. If the buffer is empty, it returns
// the zero value for the type and false.
func (rb *RingBuffer[T]) Pop() (T, bool) {
	var zero T
	if rb.count == 0 {
		return zero, false
	}
	rb.mods++
	item := rb.data[rb.head]
	rb.data[rb.head] = zero
	rb.head = rb.physical(1)
	rb.count--
	rb.stats.pops.Inc()
	rb.stats.setSize(rb.count)
	return item, true
}

// PopN removes up to n of the oldest items and returns them ordered from
// oldest to newest. It returns nil when n < 1 or the buffer is empty.
func (rb *RingBuffer[T]) PopN(n int) []T {
	if n <= 0 || rb.count == 0 {
		return nil
	}
	if n > rb.count {
		n = rb.count
	}
	items := make([]T, n)
	for i := range items {
		items[i], _ = rb.Pop()
	}
	return items
}

// Drain removes every item and returns them ordered from oldest to newest.
// Ownership passes to the caller, so Cleanup is not called on them.
func (rb *RingBuffer[T]) Drain() []T {
	return rb.PopN(rb.count)
}

// Front returns the oldest item without removing it.
func (rb *RingBuffer[T]) Front() (T, bool) {
	return rb.Get(0)
}

// Back returns the newest item without removing it.
func (rb *RingBuffer[T]) Back() (T, bool) {
	return rb.Get(rb.count - 1)
}

// Get returns the item at logical index i, where 0 is the oldest item. It
// returns the zero value and false if i is outside [0, Len).
func (rb *RingBuffer[T]) Get(i int) (T, bool) {
	if i < 0 || i >= rb.count {
		var zero T
		return zero, false
	}
	return rb.data[rb.physical(i)], true
}

// At returns the item at logical index i, where 0 is the oldest item.
// Like a slice index expression, it panics with an *IndexError if i is
// outside [0, Len).
func (rb *RingBuffer[T]) At(i int) T {
	if i < 0 || i >= rb.count {
		panic(&IndexError{Index: i, Len: rb.count})
	}
	return rb.data[rb.physical(i)]
}

// Slice returns a copy of the items ordered from oldest to newest. The buffer
// is left unchanged.
func (rb *RingBuffer[T]) Slice() []T {
	if rb.count == 0 {
		return nil
	}
	items := make([]T, rb.count)
	end := rb.head + rb.count
	if end <= len(rb.data) {
		copy(items, rb.data[rb.head:end])
		return items
	}
	copied := copy(items, rb.data[rb.head:])
	copy(items[copied:], rb.data[:end-len(rb.data)])
	return items
}

// Clear releases every item in the buffer and empties it. Release failures
// are logged; use Close to receive them.
func (rb *RingBuffer[T]) Clear() {
	if err := rb.releaseAll(); err != nil {
		rb.opts.logger.Warn("failed to release items on clear", zap.Error(err))
	}
}

// Close releases every item still in the buffer, exactly once, and empties
// it. The errors returned by io.Closer items are combined into the result.
// The buffer remains usable afterwards.
func (rb *RingBuffer[T]) Close() error {
	return rb.releaseAll()
}

// releaseAll visits only the live slots; the rest already hold zero values.
func (rb *RingBuffer[T]) releaseAll() error {
	var result error
	if rb.count == 0 {
		rb.head = 0
		return nil
	}
	rb.mods++
	var zero T
	released := rb.count
	for i := 0; i < rb.count; i++ {
		idx := rb.physical(i)
		if err := rb.release(rb.data[idx]); err != nil {
			result = multierror.Append(result, err)
		}
		rb.data[idx] = zero
	}
	rb.head = 0
	rb.count = 0
	rb.stats.clears.Inc()
	rb.stats.setSize(0)
	rb.opts.logger.Debug("buffer cleared", zap.Int("released", released))
	return result
}
