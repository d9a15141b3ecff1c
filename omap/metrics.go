package omap

// EvictReason says how a bounded map chose its victim.
type EvictReason int

const (
	// EvictLRU: the least recently used entry was evicted directly.
	EvictLRU EvictReason = iota
	// EvictScan: the least recently used entry was vetoed and the victim
	// was found further along the recency scan.
	EvictScan
)

// String returns a short stable label, suitable for metric dimensions.
func (r EvictReason) String() string {
	switch r {
	case EvictLRU:
		return "lru"
	case EvictScan:
		return "scan"
	default:
		return "unknown"
	}
}

// Metrics receives map events. Implementations must be cheap; calls happen
// inline on the operation path. See metrics/prom for a Prometheus adapter.
type Metrics interface {
	// Hit is called when Get finds the key.
	Hit()
	// Miss is called when Get does not find the key.
	Miss()
	// Evict is called once per discarded mapping on bounded maps.
	Evict(reason EvictReason)
	// Grow is called after the bucket table doubles, with the new count.
	Grow(buckets int)
	// Size is called with the entry count after each operation that
	// changed it, evictions with entry reuse included.
	Size(entries int)
}

// NoopMetrics discards all events. It is the default.
type NoopMetrics struct{}

func (NoopMetrics) Hit()              {}
func (NoopMetrics) Miss()             {}
func (NoopMetrics) Evict(EvictReason) {}
func (NoopMetrics) Grow(int)          {}
func (NoopMetrics) Size(int)          {}

var _ Metrics = NoopMetrics{}
