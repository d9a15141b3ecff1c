package omap

import (
	"hash/maphash"
	"math"

	"github.com/ekuvardin/commons-collections/internal/util"
	"github.com/ekuvardin/commons-collections/policy"
)

const (
	// DefaultCapacity is the initial bucket count when none is given.
	DefaultCapacity = 16
	// DefaultLoadFactor is the size/buckets ratio that triggers doubling.
	DefaultLoadFactor = 0.75
)

// Options configures a map. The zero value gives usable defaults for
// everything except MaxSize, which bounded maps require explicitly.
type Options[K comparable, V any] struct {
	// InitialCapacity hints the starting bucket count. It is rounded up
	// to a power of two. Zero means DefaultCapacity; negative panics.
	InitialCapacity int

	// LoadFactor sets how full the table may get before doubling.
	// Zero means DefaultLoadFactor; anything else must be > 0.
	LoadFactor float64

	// Hash computes a 64-bit hash of a key under the given seed. The
	// result is bit-mixed before bucket selection, so a hasher need not
	// spread entropy itself. Nil means maphash.Comparable, which handles
	// any comparable key and is randomly seeded per map.
	Hash func(maphash.Seed, K) uint64

	// MaxSize bounds the entry count. Bounded constructors require it to
	// be at least 1; unbounded maps ignore it.
	MaxSize int

	// ScanUntilRemovable makes a full map walk from the least recently
	// used entry toward fresher ones until Policy approves a victim,
	// instead of consulting Policy once. See LRUMap for the trade-offs.
	ScanUntilRemovable bool

	// Policy may veto eviction of a candidate. Nil means policy.EvictAll.
	Policy policy.Policy[K, V]

	// OnEvict, if set, is called with each mapping discarded to make
	// room. It runs inline and must not touch the map.
	OnEvict func(key K, value V)

	// Metrics receives map events. Nil means NoopMetrics.
	Metrics Metrics
}

// normalize validates opt and fills defaults. bounded selects the extra
// checks bounded constructors need. Invalid configuration panics: these are
// programming errors and maps must not start in a bad state.
func (opt Options[K, V]) normalize(bounded bool) Options[K, V] {
	if opt.InitialCapacity < 0 {
		panic("omap: initial capacity must not be negative")
	}
	if opt.LoadFactor < 0 || math.IsNaN(opt.LoadFactor) {
		panic("omap: load factor must be greater than zero")
	}
	if opt.LoadFactor == 0 {
		opt.LoadFactor = DefaultLoadFactor
	}
	if bounded {
		if opt.MaxSize < 1 {
			panic("omap: max size must be at least 1")
		}
		if opt.InitialCapacity > opt.MaxSize {
			panic("omap: initial capacity must not exceed max size")
		}
	}
	if opt.InitialCapacity == 0 {
		opt.InitialCapacity = DefaultCapacity
	}
	if opt.Hash == nil {
		opt.Hash = maphash.Comparable[K]
	}
	if opt.Policy == nil {
		opt.Policy = policy.EvictAll[K, V]()
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return opt
}

// bucketCount turns the capacity hint into a power-of-two bucket count.
func (opt Options[K, V]) bucketCount() int {
	n := util.NextPow2(uint64(opt.InitialCapacity))
	if n > maxCapacity {
		n = maxCapacity
	}
	return int(n)
}
