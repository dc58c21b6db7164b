package ringbuffer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfRange is wrapped by the *IndexError that At panics with.
	ErrIndexOutOfRange = errors.New("ringbuffer: index out of range")

	// ErrModifiedDuringIteration is the panic value raised when the buffer is
	// mutated while one of its iterators is still running.
	ErrModifiedDuringIteration = errors.New("ringbuffer: buffer modified during iteration")

	// ErrInvalidCapacity is returned by Config.Validate for capacities below 1.
	ErrInvalidCapacity = errors.New("ringbuffer: capacity must be at least 1")

	// ErrNameMissing is returned by Config.Validate when no name is set.
	ErrNameMissing = errors.New("ringbuffer: name unspecified")
)

// IndexError describes an access to a logical index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("ringbuffer: index %d out of range [0:%d]", e.Index, e.Len)
}

// Unwrap allows errors.Is(err, ErrIndexOutOfRange).
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
