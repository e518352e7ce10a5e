package status

import (
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vi_snake"

// Collector exposes a Registry to Prometheus
// Metrics are registered lazily by producers, so the collector is unchecked and
// builds const metrics on every scrape
type Collector struct {
	reg *Registry
}

// NewCollector wraps reg for prometheus.Register
func NewCollector(reg *Registry) *Collector {
	return &Collector{reg: reg}
}

// Describe sends nothing, marking the collector as unchecked
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect emits one sample per registry entry
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Ints.Range(func(key string, v *atomic.Int64) {
		ch <- constMetric(key, float64(v.Load()))
	})
	c.reg.Floats.Range(func(key string, v *AtomicFloat) {
		ch <- constMetric(key, v.Load())
	})
}

func constMetric(key string, value float64) prometheus.Metric {
	valueType := prometheus.GaugeValue
	if strings.HasSuffix(key, "_total") {
		valueType = prometheus.CounterValue
	}
	desc := prometheus.NewDesc(MetricName(key), "vi-snake "+key, nil, nil)
	return prometheus.MustNewConstMetric(desc, valueType, value)
}

// MetricName maps a registry key to a Prometheus metric name
func MetricName(key string) string {
	return namespace + "_" + strings.NewReplacer(".", "_", "-", "_").Replace(key)
}
