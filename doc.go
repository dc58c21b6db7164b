/*
Package ringbuffer provides a generic, fixed-capacity circular buffer.

When the buffer reaches its capacity, new items overwrite the oldest ones.
Items can be removed from the front, inspected at either end, looked up by
logical index (0 is the oldest item) and iterated from oldest to newest. All
operations are O(1) except iteration, Slice, Drain and Clear, which are linear
in the number of stored items.

It uses Go's generics, allowing it to store elements of any type.

Usage:

Create a new ring buffer of a specific type and capacity:

	rb := ringbuffer.New[string](3)
	defer rb.Close() // Release whatever is still buffered when done.

Push items. Once the buffer is full, each push evicts the oldest item and
hands it back:

	rb.Push("a")
	rb.Push("b")
	rb.Push("c")
	if old, ok := rb.Push("d"); ok {
		fmt.Println("evicted", old) // "a"
	}

Pop returns the oldest item. If the buffer is empty, it returns the zero value
for the type and false:

	if item, ok := rb.Pop(); ok {
		fmt.Printf("Got item: %v\n", item) // "b"
	}

Indexed access and iteration:

	first, ok := rb.Get(0) // comma-ok form
	last := rb.At(rb.Len() - 1) // panics with an *IndexError when out of range

	for i, item := range rb.All() {
		fmt.Println(i, item)
	}

The buffer must not be mutated while an iterator over it is running; doing so
makes the iterator panic with ErrModifiedDuringIteration.

Concurrency:

A RingBuffer performs no locking. At most one goroutine may use it at a time;
callers sharing a buffer must guard it with their own mutex. The Stats of a
buffer, and the Prometheus collector built on them, are the exception and may
be read from any goroutine.

Automatic Cleanup:

Types that require cleanup (e.g., to release file handles or network connections)
can implement the `Cleanable` interface or io.Closer. The buffer releases an
item when it discards it on its own: when Add overwrites it, and on Clear and
Close. Items handed back to the caller, by Push, Pop, PopN or Drain, are not
released; the caller owns them.

	type MyResource struct {
		// ... fields
	}

	func (r *MyResource) Cleanup() {
		fmt.Println("Cleaning up MyResource!")
		// ... release resources here
	}

	rb := ringbuffer.New[*MyResource](5)
	rb.Add(&MyResource{}) // This item's Cleanup() will be called later.

Configuration and observability:

Buffers can be built from a go-ucfg configuration with NewFromConfig, log
through a zap logger given with WithLogger, and export their Stats with the
prometheus.Collector returned by Collector.
*/
package ringbuffer
