package ringbuffer

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/atomic"
)

// Stats tracks buffer operations. Unlike the buffer itself, a Stats may be
// read from any goroutine, e.g. by a metrics scrape.
type Stats struct {
	pushes    atomic.Int64
	pops      atomic.Int64
	evictions atomic.Int64
	releases  atomic.Int64
	clears    atomic.Int64

	size    atomic.Int64
	maxSize atomic.Int64

	startTime time.Time
}

func newStats() *Stats {
	return &Stats{startTime: time.Now()}
}

// setSize is only called by the owning buffer, so the max update needs no CAS loop.
func (s *Stats) setSize(size int) {
	n := int64(size)
	s.size.Store(n)
	if n > s.maxSize.Load() {
		s.maxSize.Store(n)
	}
}

// Pushes returns the number of Push and Add calls.
func (s *Stats) Pushes() int64 { return s.pushes.Load() }

// Pops returns the number of items removed by Pop, PopN and Drain.
func (s *Stats) Pops() int64 { return s.pops.Load() }

// Evictions returns the number of items overwritten by a push into a full buffer.
func (s *Stats) Evictions() int64 { return s.evictions.Load() }

// Releases returns the number of items released by Add, Clear and Close.
func (s *Stats) Releases() int64 { return s.releases.Load() }

// Clears returns the number of Clear or Close calls that emptied a non-empty buffer.
func (s *Stats) Clears() int64 { return s.clears.Load() }

// Size returns the number of items currently held.
func (s *Stats) Size() int64 { return s.size.Load() }

// MaxSize returns the largest number of items held at once.
func (s *Stats) MaxSize() int64 { return s.maxSize.Load() }

// Uptime returns how long ago the buffer was created.
func (s *Stats) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// EvictionRate returns the fraction of pushes that overwrote an item (0.0 to 1.0).
func (s *Stats) EvictionRate() float64 {
	pushes := s.Pushes()
	if pushes == 0 {
		return 0.0
	}
	return float64(s.Evictions()) / float64(pushes)
}

// StatsSummary is a point-in-time snapshot of Stats.
type StatsSummary struct {
	Pushes       int64         `json:"pushes"`
	Pops         int64         `json:"pops"`
	Evictions    int64         `json:"evictions"`
	Releases     int64         `json:"releases"`
	Clears       int64         `json:"clears"`
	Size         int64         `json:"size"`
	MaxSize      int64         `json:"max_size"`
	EvictionRate float64       `json:"eviction_rate"`
	Uptime       time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Stats) Summary() StatsSummary {
	return StatsSummary{
		Pushes:       s.Pushes(),
		Pops:         s.Pops(),
		Evictions:    s.Evictions(),
		Releases:     s.Releases(),
		Clears:       s.Clears(),
		Size:         s.Size(),
		MaxSize:      s.MaxSize(),
		EvictionRate: s.EvictionRate(),
		Uptime:       s.Uptime(),
	}
}

func (s *Stats) String() string {
	return fmt.Sprintf("pushes=%s pops=%s evictions=%s releases=%s size=%s max_size=%s",
		humanize.Comma(s.Pushes()),
		humanize.Comma(s.Pops()),
		humanize.Comma(s.Evictions()),
		humanize.Comma(s.Releases()),
		humanize.Comma(s.Size()),
		humanize.Comma(s.MaxSize()),
	)
}
