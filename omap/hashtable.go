package omap

import (
	"hash/maphash"

	"github.com/ekuvardin/commons-collections/internal/util"
)

// maxCapacity caps the bucket count; the table stops doubling there and
// chains absorb further growth.
const maxCapacity = 1 << 30

// hashTable is the separate-chaining core shared by every map in this
// package. Buckets always number a power of two so the index is a mask of
// the mixed hash. The table owns size, the growth threshold and the
// modification counter; callers own any order-list bookkeeping.
type hashTable[K comparable, V any] struct {
	data       []*entry[K, V]
	size       int
	threshold  int
	loadFactor float64
	// modCount increments on every structural change and backs the
	// fail-fast check in iterators.
	modCount int

	seed    maphash.Seed
	hasher  func(maphash.Seed, K) uint64
	metrics Metrics
}

func (t *hashTable[K, V]) init(capacity int, loadFactor float64, hasher func(maphash.Seed, K) uint64, m Metrics) {
	if !util.IsPowerOfTwo(uint64(capacity)) {
		panic("omap: internal error: bucket count must be a power of two")
	}
	t.data = make([]*entry[K, V], capacity)
	t.size = 0
	t.threshold = int(float64(capacity) * loadFactor)
	t.loadFactor = loadFactor
	t.seed = maphash.MakeSeed()
	t.hasher = hasher
	t.metrics = m
}

func (t *hashTable[K, V]) initialized() bool { return t.data != nil }

// hashOf runs the configured hasher and spreads its bits so weak hashers
// still index all buckets.
func (t *hashTable[K, V]) hashOf(key K) uint64 {
	return util.Mix64(t.hasher(t.seed, key))
}

func (t *hashTable[K, V]) indexOf(hash uint64) int {
	return int(hash & uint64(len(t.data)-1))
}

// lookup finds the entry for key, or nil.
func (t *hashTable[K, V]) lookup(key K) *entry[K, V] {
	return t.lookupHashed(t.hashOf(key), key)
}

// lookupHashed is lookup with the hash already computed, so insert paths
// hash exactly once per operation.
func (t *hashTable[K, V]) lookupHashed(hash uint64, key K) *entry[K, V] {
	for e := t.data[t.indexOf(hash)]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			return e
		}
	}
	return nil
}

// lookupHashedPrev additionally reports the entry's chain predecessor
// (nil when the entry heads its bucket), letting removal unlink in the
// same pass that found the entry.
func (t *hashTable[K, V]) lookupHashedPrev(hash uint64, key K) (e, prev *entry[K, V]) {
	for e = t.data[t.indexOf(hash)]; e != nil; prev, e = e, e.next {
		if e.hash == hash && e.key == key {
			return e, prev
		}
	}
	return nil, nil
}

// chainPredecessor locates e's predecessor in its bucket by rescanning the
// chain. ok is false when e is absent from the bucket its stored hash maps
// to, which means the table has been corrupted.
func (t *hashTable[K, V]) chainPredecessor(e *entry[K, V]) (prev *entry[K, V], ok bool) {
	for c := t.data[t.indexOf(e.hash)]; c != nil; prev, c = c, c.next {
		if c == e {
			return prev, true
		}
	}
	return nil, false
}

// linkChain puts e at the head of its bucket. Pure pointer surgery: size,
// modCount and growth are the caller's business.
func (t *hashTable[K, V]) linkChain(e *entry[K, V]) {
	idx := t.indexOf(e.hash)
	e.next = t.data[idx]
	t.data[idx] = e
}

// unlinkChain removes e from its bucket given its predecessor (nil when e
// heads the bucket).
func (t *hashTable[K, V]) unlinkChain(e, prev *entry[K, V]) {
	if prev == nil {
		t.data[t.indexOf(e.hash)] = e.next
	} else {
		prev.next = e.next
	}
	e.next = nil
}

// addNew inserts a fresh mapping known to be absent. It may double the
// table; the returned entry is valid either way since growth relinks
// entries without reallocating them.
func (t *hashTable[K, V]) addNew(hash uint64, key K, value V) *entry[K, V] {
	e := &entry[K, V]{hash: hash, key: key, value: value}
	t.linkChain(e)
	t.size++
	t.modCount++
	t.growIfNeeded()
	return e
}

// removeHashed unlinks a found entry from its bucket and updates the
// counters. Order-list unlinking and entry clearing stay with the caller,
// which knows whether the entry will be reused.
func (t *hashTable[K, V]) removeHashed(e, prev *entry[K, V]) {
	t.unlinkChain(e, prev)
	t.size--
	t.modCount++
}

func (t *hashTable[K, V]) growIfNeeded() {
	if t.size > t.threshold && len(t.data) < maxCapacity {
		t.grow(len(t.data) * 2)
	}
}

// grow rehashes every entry into a table of newCapacity buckets. Entries
// are relinked in place, so order-list links and outstanding pointers
// survive; only bucket membership changes.
func (t *hashTable[K, V]) grow(newCapacity int) {
	old := t.data
	t.data = make([]*entry[K, V], newCapacity)
	t.threshold = int(float64(newCapacity) * t.loadFactor)
	for _, e := range old {
		for e != nil {
			next := e.next
			idx := t.indexOf(e.hash)
			e.next = t.data[idx]
			t.data[idx] = e
			e = next
		}
	}
	t.metrics.Grow(newCapacity)
}

// clearBuckets drops every chain at once. Entries are not individually
// cleared; with the buckets and order list gone nothing reachable pins
// them, except iterators that still hold one, matching their documented
// fail-fast behaviour.
func (t *hashTable[K, V]) clearBuckets() {
	t.modCount++
	clear(t.data)
	t.size = 0
}
