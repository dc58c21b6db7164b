package ringbuffer

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/require"
)

// TestAgainstQueueModel runs random operation sequences against both a
// RingBuffer and an unbounded FIFO queue trimmed to the same capacity, and
// checks that they always agree.
func TestAgainstQueueModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, capacity := range []int{1, 2, 3, 5, 8, 13} {
		rb := New[int](capacity)
		model := queue.New()

		for step := 0; step < 2000; step++ {
			switch op := rng.Intn(10); {
			case op < 5:
				v := rng.Int()
				evicted, ok := rb.Push(v)
				model.Add(v)
				if model.Length() > capacity {
					require.True(t, ok, "cap %d step %d: expected eviction", capacity, step)
					require.Equal(t, model.Remove(), evicted)
				} else {
					require.False(t, ok, "cap %d step %d: unexpected eviction", capacity, step)
				}
			case op < 8:
				got, ok := rb.Pop()
				if model.Length() == 0 {
					require.False(t, ok)
					continue
				}
				require.True(t, ok)
				require.Equal(t, model.Remove(), got)
			case op < 9:
				if model.Length() > 0 {
					i := rng.Intn(model.Length())
					require.Equal(t, model.Get(i), rb.At(i))
				}
			default:
				if rng.Intn(4) == 0 {
					rb.Clear()
					for model.Length() > 0 {
						model.Remove()
					}
				}
			}

			require.Equal(t, model.Length(), rb.Len())
			require.LessOrEqual(t, rb.Len(), rb.Cap())
			require.Equal(t, model.Length() == 0, rb.IsEmpty())
			require.Equal(t, model.Length() == capacity, rb.IsFull())
			if model.Length() > 0 {
				front, _ := rb.Front()
				back, _ := rb.Back()
				require.Equal(t, model.Peek(), front)
				require.Equal(t, model.Get(-1), back)
			}
		}

		expected := make([]int, 0, model.Length())
		for model.Length() > 0 {
			expected = append(expected, model.Remove().(int))
		}
		actual := rb.Slice()
		if len(expected) == 0 {
			require.Empty(t, actual)
		} else {
			require.Equal(t, expected, actual)
		}
	}
}
