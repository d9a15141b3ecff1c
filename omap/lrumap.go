package omap

import (
	"fmt"
	"iter"

	"github.com/ekuvardin/commons-collections/policy"
)

// LRUMap is a bounded map ordered by recency of use. Get and Put on an
// existing key promote it to most recently used; when an insert finds the
// map full, the least recently used entry is discarded and its allocation
// reused for the incoming mapping, so a full map stops producing garbage.
//
// A Policy may veto the victim. Without scan mode a veto admits the new
// mapping anyway and the map grows past MaxSize, on the theory that a
// protected entry beats a hard bound. With ScanUntilRemovable the map walks
// from the least recently used entry toward fresher ones until the policy
// approves a victim; if it vetoes every resident entry the map panics with a
// *CorruptionError, because a bound that can never be enforced again is a
// configuration contradiction, not a state to run in.
//
// Note that Get is a mutator here: promotions count as structural changes,
// so even reads invalidate outstanding iterators. Use Peek or Contains to
// read without disturbing order, and Iterator (not Get in a loop) to walk
// the map.
//
// Not safe for concurrent use.
type LRUMap[K comparable, V any] struct {
	core    LinkedMap[K, V]
	maxSize int
	scan    bool
	pol     policy.Policy[K, V]
	onEvict func(key K, value V)
}

var (
	_ OrderedMap[string, int] = (*LRUMap[string, int])(nil)
	_ BoundedMap[string, int] = (*LRUMap[string, int])(nil)
)

// NewLRUMap returns an empty map bounded to maxSize entries, with default
// options. Panics if maxSize < 1.
func NewLRUMap[K comparable, V any](maxSize int) *LRUMap[K, V] {
	return NewLRUMapWith(Options[K, V]{MaxSize: maxSize})
}

// NewLRUMapWith returns an empty map configured by opt. MaxSize is
// required; invalid options panic. See Options.
func NewLRUMapWith[K comparable, V any](opt Options[K, V]) *LRUMap[K, V] {
	opt = opt.normalize(true)
	m := &LRUMap[K, V]{
		maxSize: opt.MaxSize,
		scan:    opt.ScanUntilRemovable,
		pol:     opt.Policy,
		onEvict: opt.OnEvict,
	}
	m.core.init(opt)
	return m
}

// NewLRUMapFrom returns a map bounded to src.Len() entries, holding src's
// mappings in src's iteration order. Panics if src is empty.
func NewLRUMapFrom[K comparable, V any](src Map[K, V]) *LRUMap[K, V] {
	if src.Len() == 0 {
		panic("omap: source map must not be empty")
	}
	m := NewLRUMap[K, V](src.Len())
	m.PutAll(src)
	return m
}

// MaxSize returns the configured bound.
func (m *LRUMap[K, V]) MaxSize() int { return m.maxSize }

// IsFull reports whether the map is at (or, after unscanned vetoes, past)
// its bound. The next insert of a new key will attempt an eviction.
func (m *LRUMap[K, V]) IsFull() bool { return m.core.ht.size >= m.maxSize }

// ScanUntilRemovable reports whether eviction scans past vetoed entries.
func (m *LRUMap[K, V]) ScanUntilRemovable() bool { return m.scan }

// Len returns the number of mappings.
func (m *LRUMap[K, V]) Len() int { return m.core.Len() }

// IsEmpty reports whether the map holds no mappings.
func (m *LRUMap[K, V]) IsEmpty() bool { return m.core.IsEmpty() }

// Contains reports whether key is present, without promoting it.
func (m *LRUMap[K, V]) Contains(key K) bool { return m.core.Contains(key) }

// Get returns the value stored under key and promotes the entry to most
// recently used. The promotion is a structural change: it invalidates
// iterators and fails All loops that are underway.
func (m *LRUMap[K, V]) Get(key K) (V, bool) {
	e := m.core.ht.lookup(key)
	if e == nil {
		m.core.ht.metrics.Miss()
		var zero V
		return zero, false
	}
	m.promote(e)
	m.core.ht.metrics.Hit()
	return e.value, true
}

// Peek returns the value stored under key without promoting the entry or
// touching hit statistics.
func (m *LRUMap[K, V]) Peek(key K) (V, bool) {
	if e := m.core.ht.lookup(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key. An existing key is promoted to most recently
// used and overwritten. A new key joins at most recently used, evicting the
// least recently used entry first if the map is full.
func (m *LRUMap[K, V]) Put(key K, value V) (V, bool) {
	hash := m.core.ht.hashOf(key)
	if e := m.core.ht.lookupHashed(hash, key); e != nil {
		m.promote(e)
		old := e.value
		e.value = value
		return old, true
	}
	m.addMapping(hash, key, value)
	var zero V
	return zero, false
}

// PutAll copies every mapping from src in src's iteration order, evicting
// along the way as each Put requires.
func (m *LRUMap[K, V]) PutAll(src Map[K, V]) {
	for k, v := range src.All() {
		m.Put(k, v)
	}
}

// Remove deletes key, returning the value it held. Removal never consults
// the eviction policy.
func (m *LRUMap[K, V]) Remove(key K) (V, bool) { return m.core.Remove(key) }

// Clear removes all mappings, keeping the bound and configuration.
func (m *LRUMap[K, V]) Clear() { m.core.Clear() }

// promote moves an accessed entry to the newest end, bumping the
// modification counter only when the entry actually moved.
func (m *LRUMap[K, V]) promote(e *entry[K, V]) {
	if m.core.list.moveToBack(e) {
		m.core.ht.modCount++
	}
}

// addMapping inserts a mapping for a key known to be absent, evicting
// first when the map is full.
func (m *LRUMap[K, V]) addMapping(hash uint64, key K, value V) {
	if m.IsFull() {
		victim := m.core.list.front()
		if victim == nil {
			panic(&CorruptionError{
				Op:     "evict",
				Detail: fmt.Sprintf("map reports full with an empty order list (size=%d, maxSize=%d)", m.core.ht.size, m.maxSize),
			})
		}
		reason := EvictLRU
		approved := false
		if m.scan {
			for victim != nil && !m.core.list.isHeader(victim) {
				if m.pol.CanEvict(victim.key, victim.value) {
					approved = true
					break
				}
				reason = EvictScan
				victim = victim.after
			}
			if victim == nil {
				panic(&CorruptionError{
					Op:     "evict",
					Detail: fmt.Sprintf("order list broken during eviction scan (size=%d, maxSize=%d); was the map modified concurrently?", m.core.ht.size, m.maxSize),
				})
			}
			if !approved {
				panic(&CorruptionError{
					Op:     "evict",
					Detail: fmt.Sprintf("eviction scan found no removable entry (size=%d, maxSize=%d); the policy vetoed every resident entry", m.core.ht.size, m.maxSize),
				})
			}
		} else {
			approved = m.pol.CanEvict(victim.key, victim.value)
		}
		if approved {
			m.reuseMapping(victim, hash, key, value, reason)
			return
		}
		// Vetoed without scanning: admit the mapping anyway and run past
		// the bound rather than discard a protected entry.
	}
	e := m.core.ht.addNew(hash, key, value)
	m.core.list.pushBack(e)
	m.core.ht.metrics.Size(m.core.ht.size)
}

// reuseMapping recycles the victim's entry for the incoming mapping: unlink
// from bucket and order list, overwrite in place, relink at the newest end.
// One structural change, no allocation, size untouched.
func (m *LRUMap[K, V]) reuseMapping(victim *entry[K, V], hash uint64, key K, value V, reason EvictReason) {
	prev, ok := m.core.ht.chainPredecessor(victim)
	if !ok {
		panic(&CorruptionError{
			Op:     "evict",
			Detail: fmt.Sprintf("eviction candidate missing from the bucket its hash maps to (size=%d, maxSize=%d); was the map modified concurrently?", m.core.ht.size, m.maxSize),
		})
	}
	evictedKey, evictedValue := victim.key, victim.value

	m.core.ht.unlinkChain(victim, prev)
	victim.detachList()
	m.core.ht.modCount++

	victim.hash = hash
	victim.key = key
	victim.value = value
	m.core.ht.linkChain(victim)
	m.core.list.pushBack(victim)

	m.core.ht.metrics.Evict(reason)
	if m.onEvict != nil {
		m.onEvict(evictedKey, evictedValue)
	}
	m.core.ht.metrics.Size(m.core.ht.size)
}

// FirstKey returns the least recently used key.
func (m *LRUMap[K, V]) FirstKey() (K, bool) { return m.core.FirstKey() }

// LastKey returns the most recently used key.
func (m *LRUMap[K, V]) LastKey() (K, bool) { return m.core.LastKey() }

// NextKey returns the key one step fresher than key in recency order.
func (m *LRUMap[K, V]) NextKey(key K) (K, bool) { return m.core.NextKey(key) }

// PreviousKey returns the key one step staler than key in recency order.
func (m *LRUMap[K, V]) PreviousKey(key K) (K, bool) { return m.core.PreviousKey(key) }

// Keys returns all keys, least to most recently used.
func (m *LRUMap[K, V]) Keys() []K { return m.core.Keys() }

// Values returns all values, least to most recently used.
func (m *LRUMap[K, V]) Values() []V { return m.core.Values() }

// All yields every mapping, least to most recently used. The loop panics on
// structural modification, and on this map that includes Get.
func (m *LRUMap[K, V]) All() iter.Seq2[K, V] { return m.core.All() }

// Backward yields every mapping, most to least recently used.
func (m *LRUMap[K, V]) Backward() iter.Seq2[K, V] { return m.core.Backward() }

// Iterator returns a cursor positioned before the least recently used
// entry. Iterating does not promote entries.
func (m *LRUMap[K, V]) Iterator() *MapIterator[K, V] { return m.core.Iterator() }

// String formats the map as {k1=v1, k2=v2, ...}, least recently used first.
func (m *LRUMap[K, V]) String() string { return m.core.String() }
