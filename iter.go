package ringbuffer

import (
	"iter"
)

// All returns an iterator over logical index/item pairs from oldest to
// newest. Every call starts over from the oldest item.
//
// The buffer must not be mutated while the iterator runs. A mutation observed
// between two items makes the iterator panic with ErrModifiedDuringIteration.
func (rb *RingBuffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		mods := rb.mods
		for i := 0; i < rb.count; i++ {
			if !yield(i, rb.data[rb.physical(i)]) {
				return
			}
			rb.checkMods(mods)
		}
	}
}

// Values returns an iterator over the items from oldest to newest, with the
// same restrictions as All.
func (rb *RingBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range rb.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over logical index/item pairs from newest to
// oldest.
func (rb *RingBuffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		mods := rb.mods
		for i := rb.count - 1; i >= 0; i-- {
			if !yield(i, rb.data[rb.physical(i)]) {
				return
			}
			rb.checkMods(mods)
		}
	}
}

func (rb *RingBuffer[T]) checkMods(mods uint64) {
	if rb.mods != mods {
		panic(ErrModifiedDuringIteration)
	}
}
