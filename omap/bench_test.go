package omap

import (
	"strconv"
	"testing"

	"golang.org/x/exp/rand"
)

// benchmarkMix exercises a read/write mix against a warm bounded map on a
// single goroutine (the map is single-threaded by design). String keys
// include strconv/concat costs and often allocate, which is fine for an
// end-to-end benchmark.
func benchmarkMix(b *testing.B, readsPct int) {
	m := NewLRUMap[string, string](100_000)

	// Preload half the bound to get a realistic hit-rate.
	for i := 0; i < 50_000; i++ {
		k := "k:" + strconv.Itoa(i)
		m.Put(k, "v")
	}

	// Report per-op allocations for a rough idea where costs go.
	b.ReportAllocs()
	b.ResetTimer()

	r := rand.New(rand.NewSource(1))
	keyMask := (1 << 16) - 1 // hot keyspace (power of two for fast &-mask)

	for i := 0; i < b.N; i++ {
		k := "k:" + strconv.Itoa(i&keyMask)
		if int(r.Intn(100)) < readsPct {
			m.Get(k)
		} else {
			m.Put(k, "v")
		}
	}
}

func BenchmarkLRUMap_90r10w(b *testing.B) { benchmarkMix(b, 90) }
func BenchmarkLRUMap_50r50w(b *testing.B) { benchmarkMix(b, 50) }

// benchmarkMixInt is the same workload but with int keys. This removes
// strconv/alloc noise and better exposes the map hot path.
func benchmarkMixInt(b *testing.B, readsPct int) {
	m := NewLRUMap[int, int](100_000)

	for i := 0; i < 50_000; i++ {
		m.Put(i, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	r := rand.New(rand.NewSource(1))
	keyMask := (1 << 16) - 1

	for i := 0; i < b.N; i++ {
		k := i & keyMask
		if int(r.Intn(100)) < readsPct {
			m.Get(k)
		} else {
			m.Put(k, 1)
		}
	}
}

func BenchmarkLRUMap_IntKeys_90r10w(b *testing.B) { benchmarkMixInt(b, 90) }
func BenchmarkLRUMap_IntKeys_50r50w(b *testing.B) { benchmarkMixInt(b, 50) }

// A full map under a Zipf-skewed keyspace larger than the bound: every cold
// insert evicts and reuses an entry, so steady state should run
// allocation-free on the eviction path.
func BenchmarkLRUMap_ZipfEvict(b *testing.B) {
	const maxSize = 1 << 12
	m := NewLRUMap[uint64, uint64](maxSize)
	for i := uint64(0); i < maxSize; i++ {
		m.Put(i, i)
	}

	r := rand.New(rand.NewSource(7))
	zipf := rand.NewZipf(r, 1.1, 1.0, 1<<20)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := zipf.Uint64()
		if _, ok := m.Get(k); !ok {
			m.Put(k, k)
		}
	}
}

// Baseline insert/lookup costs on the unordered map.
func BenchmarkHashMap_Put(b *testing.B) {
	m := NewHashMap[int, int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Put(i, i)
	}
}

func BenchmarkHashMap_Get(b *testing.B) {
	m := NewHashMap[int, int]()
	for i := 0; i < 1<<16; i++ {
		m.Put(i, i)
	}
	mask := (1 << 16) - 1
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(i & mask)
	}
}
