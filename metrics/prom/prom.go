package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ekuvardin/commons-collections/omap"
)

// Adapter implements omap.Metrics and exports Prometheus counters/gauges.
// The adapter itself is safe for concurrent use (all Prometheus metric
// types are goroutine-safe); the map feeding it usually is not, so share
// one map through omap.Synchronized.
type Adapter struct {
	hits    prometheus.Counter
	misses  prometheus.Counter
	evicts  *prometheus.CounterVec
	grows   prometheus.Counter
	buckets prometheus.Gauge
	entries prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Map lookups that found the key",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Map lookups that did not find the key",
			ConstLabels: constLabels,
		}),
		evicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "evictions_total",
				Help:        "Mappings discarded by the bound, by victim selection",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		grows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "table_growths_total",
			Help:        "Times the bucket table doubled",
			ConstLabels: constLabels,
		}),
		buckets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "table_buckets",
			Help:        "Current bucket count",
			ConstLabels: constLabels,
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_entries",
			Help:        "Number of resident entries",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.evicts, a.grows, a.buckets, a.entries)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Evict increments the eviction counter with a reason label.
func (a *Adapter) Evict(r omap.EvictReason) {
	a.evicts.WithLabelValues(r.String()).Inc()
}

// Grow counts a table doubling and records the new bucket count.
func (a *Adapter) Grow(buckets int) {
	a.grows.Inc()
	a.buckets.Set(float64(buckets))
}

// Size updates the resident-entries gauge.
func (a *Adapter) Size(entries int) {
	a.entries.Set(float64(entries))
}

// Compile-time check: ensure Adapter implements omap.Metrics.
var _ omap.Metrics = (*Adapter)(nil)
