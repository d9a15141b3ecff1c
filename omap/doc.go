// Package omap provides generic hash maps with controlled iteration order:
// a plain HashMap, an insertion-ordered LinkedMap, and a bounded LRUMap that
// evicts by recency of use with a pluggable eviction veto, entry reuse, and
// binary serialization.
//
// Design
//
//   - Storage: one separate-chaining hash table built directly on entry
//     structs. Buckets always number a power of two, so indexing is a mask
//     of a bit-mixed 64-bit hash, and the table doubles when size crosses
//     loadFactor * buckets. Each entry caches its hash; growing relinks
//     entries without rehashing or reallocating them.
//
//   - Ordering: the ordered maps thread every entry into one circular
//     doubly linked list through a sentinel header. The front is the oldest
//     (first inserted, or least recently used), the back the newest. List
//     maintenance is a constant number of pointer fixes per operation.
//
//   - Bounding: LRUMap refuses to grow past MaxSize. A full insert evicts
//     the least recently used entry and reuses its allocation for the new
//     mapping, so a full map runs allocation-free. The policy package can
//     veto candidates; ScanUntilRemovable walks past vetoed entries toward
//     fresher ones instead of exceeding the bound.
//
//   - Iteration: All and Backward are range-over-func sequences that panic
//     if the map changes mid-loop. MapIterator is the cooperative cursor:
//     bidirectional, supports SetValue and Remove through itself, and
//     reports external modification via Err instead of panicking.
//
//   - Hashing: keys hash through hash/maphash with a per-map random seed by
//     default; Options.Hash swaps in a custom or deterministic hasher. The
//     result is always finalized with a 64-bit mixer, so simple hashers
//     still spread across buckets.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Grow/Size signals.
//     NoopMetrics is the default; metrics/prom exports them to Prometheus.
//
//   - Callbacks: Options.OnEvict(k, v) is called for every mapping the
//     bound discards, with the reason visible to Metrics as EvictLRU or
//     EvictScan.
//
// Basic usage
//
//	// A cache of at most 1000 entries, least recently used out first.
//	m := omap.NewLRUMap[string, []byte](1000)
//	m.Put("a", []byte("1"))
//	if v, ok := m.Get("a"); ok { // hit: "a" is now most recently used
//	    _ = v
//	}
//	m.Peek("a") // read without promoting
//
// Insertion order
//
//	m := omap.NewLinkedMap[string, int]()
//	m.Put("first", 1)
//	m.Put("second", 2)
//	for k, v := range m.All() { // "first", then "second"
//	    fmt.Println(k, v)
//	}
//
// Protecting entries from eviction
//
//	m := omap.NewLRUMapWith(omap.Options[string, string]{
//	    MaxSize:            100,
//	    ScanUntilRemovable: true,
//	    Policy:             policy.Pin[string, string]("config", "root"),
//	})
//
// Serialization
//
//	data, _ := m.MarshalBinary() // bound, count, pairs oldest-first
//	var back omap.LRUMap[string, string]
//	_ = back.UnmarshalBinary(data)
//
// Thread-safety & complexity
//
// Maps and their iterators are not safe for concurrent use; wrap a shared
// map with Synchronized, or confine it to one goroutine. Get, Put, Remove
// and key navigation run in O(1) expected time. On LRUMap note that Get
// promotes and therefore counts as a structural modification: it strands
// iterators and fails All loops that are underway.
//
// See options.go for all Options fields and the policy package for the
// eviction-veto contract.
package omap
