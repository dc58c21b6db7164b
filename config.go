package ringbuffer

import (
	"github.com/elastic/go-ucfg"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const defaultCapacity = 64

// Config holds the settings a RingBuffer can be built from.
type Config struct {
	Name     string `config:"name"`
	Capacity int    `config:"capacity"`
}

// DefaultConfig returns the configuration used for unset fields.
func DefaultConfig() Config {
	return Config{
		Name:     defaultName,
		Capacity: defaultCapacity,
	}
}

// Validate validates the configuration. Unlike New, it does not clamp the
// capacity.
func (c Config) Validate() error {
	var result error
	if c.Name == "" {
		result = multierror.Append(result, ErrNameMissing)
	}
	if c.Capacity < 1 {
		result = multierror.Append(result, errors.Wrapf(ErrInvalidCapacity, "got %d", c.Capacity))
	}
	return result
}

// NewFromConfig unpacks cfg over DefaultConfig and creates a RingBuffer from
// it. A nil cfg yields the defaults. The configured name overrides any
// WithName option.
func NewFromConfig[T any](cfg *ucfg.Config, opts ...Option[T]) (*RingBuffer[T], error) {
	c := DefaultConfig()
	if cfg != nil {
		if err := cfg.Unpack(&c); err != nil {
			return nil, errors.Wrap(err, "error processing ring buffer configuration")
		}
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid ring buffer configuration")
	}
	opts = append(opts[:len(opts):len(opts)], WithName[T](c.Name))
	return New[T](c.Capacity, opts...), nil
}
