package ringbuffer

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "ringbuffer"
	bufferLabel      = "buffer"
)

// collector exposes a buffer's Stats to Prometheus. It only reads atomics, so
// scrapes may run on any goroutine.
type collector struct {
	stats    *Stats
	capacity int

	pushes    *prometheus.Desc
	pops      *prometheus.Desc
	evictions *prometheus.Desc
	releases  *prometheus.Desc
	size      *prometheus.Desc
	capDesc   *prometheus.Desc
}

// Collector returns a prometheus.Collector for the buffer's statistics,
// labelled with the buffer name. Register it with the caller's registry.
func (rb *RingBuffer[T]) Collector() prometheus.Collector {
	labels := prometheus.Labels{bufferLabel: rb.opts.name}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "", name), help, nil, labels)
	}
	return &collector{
		stats:     rb.stats,
		capacity:  rb.Cap(),
		pushes:    desc("pushes_total", "Total number of items pushed."),
		pops:      desc("pops_total", "Total number of items popped."),
		evictions: desc("evictions_total", "Total number of items overwritten by a push into a full buffer."),
		releases:  desc("releases_total", "Total number of items released by the buffer."),
		size:      desc("size", "Current number of items in the buffer."),
		capDesc:   desc("capacity", "Fixed capacity of the buffer."),
	}
}

// Describe implements prometheus.Collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pushes
	ch <- c.pops
	ch <- c.evictions
	ch <- c.releases
	ch <- c.size
	ch <- c.capDesc
}

// Collect implements prometheus.Collector.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.pushes, prometheus.CounterValue, float64(c.stats.Pushes()))
	ch <- prometheus.MustNewConstMetric(c.pops, prometheus.CounterValue, float64(c.stats.Pops()))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(c.stats.Evictions()))
	ch <- prometheus.MustNewConstMetric(c.releases, prometheus.CounterValue, float64(c.stats.Releases()))
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(c.stats.Size()))
	ch <- prometheus.MustNewConstMetric(c.capDesc, prometheus.GaugeValue, float64(c.capacity))
}
