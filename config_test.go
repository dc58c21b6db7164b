package ringbuffer

import (
	"testing"

	"github.com/elastic/go-ucfg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, "ringbuffer", c.Name)
	assert.Equal(t, 64, c.Capacity)
	assert.NoError(t, c.Validate())
}

func TestConfigValidate(t *testing.T) {
	for name, tc := range map[string]struct {
		config Config
		errs   []error
	}{
		"valid":          {config: Config{Name: "x", Capacity: 1}},
		"zero capacity":  {config: Config{Name: "x"}, errs: []error{ErrInvalidCapacity}},
		"missing name":   {config: Config{Capacity: 4}, errs: []error{ErrNameMissing}},
		"everything bad": {config: Config{Capacity: -1}, errs: []error{ErrNameMissing, ErrInvalidCapacity}},
	} {
		t.Run(name, func(t *testing.T) {
			err := tc.config.Validate()
			if len(tc.errs) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tc.errs {
				assert.True(t, errors.Is(err, want), "expected %v in %v", want, err)
			}
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg, err := ucfg.NewFrom(map[string]interface{}{
		"name":     "spans",
		"capacity": 3,
	})
	require.NoError(t, err)

	rb, err := NewFromConfig[int](cfg)
	require.NoError(t, err)
	assert.Equal(t, "spans", rb.Name())
	assert.Equal(t, 3, rb.Cap())
}

func TestNewFromConfigDefaults(t *testing.T) {
	rb, err := NewFromConfig[int](nil)
	require.NoError(t, err)
	assert.Equal(t, defaultName, rb.Name())
	assert.Equal(t, defaultCapacity, rb.Cap())

	cfg, err := ucfg.NewFrom(map[string]interface{}{"capacity": 8})
	require.NoError(t, err)
	rb, err = NewFromConfig[int](cfg, WithName[int]("ignored"))
	require.NoError(t, err)
	assert.Equal(t, defaultName, rb.Name())
	assert.Equal(t, 8, rb.Cap())
}

func TestNewFromConfigInvalid(t *testing.T) {
	for name, values := range map[string]map[string]interface{}{
		"zero capacity":     {"capacity": 0},
		"negative capacity": {"capacity": -2},
		"empty name":        {"name": ""},
		"wrong type":        {"capacity": "lots"},
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := ucfg.NewFrom(values)
			require.NoError(t, err)

			rb, err := NewFromConfig[int](cfg)
			assert.Error(t, err)
			assert.Nil(t, rb)
		})
	}
}
