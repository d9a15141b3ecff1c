package omap

import "iter"

// LinkedMap is a hash map whose entries additionally form a list in
// insertion order. Lookups stay O(1) while iteration, Keys, Values and the
// key-navigation methods follow the order keys were first inserted;
// overwriting a value does not reposition its key.
//
// Not safe for concurrent use.
type LinkedMap[K comparable, V any] struct {
	ht   hashTable[K, V]
	list orderList[K, V]
}

var _ OrderedMap[string, int] = (*LinkedMap[string, int])(nil)

// NewLinkedMap returns an empty map with default options.
func NewLinkedMap[K comparable, V any]() *LinkedMap[K, V] {
	return NewLinkedMapWith(Options[K, V]{})
}

// NewLinkedMapWith returns an empty map configured by opt. Invalid options
// panic; see Options.
func NewLinkedMapWith[K comparable, V any](opt Options[K, V]) *LinkedMap[K, V] {
	m := &LinkedMap[K, V]{}
	m.init(opt.normalize(false))
	return m
}

func (m *LinkedMap[K, V]) init(opt Options[K, V]) {
	m.ht.init(opt.bucketCount(), opt.LoadFactor, opt.Hash, opt.Metrics)
	m.list.init()
}

// ensureInit makes a zero-value receiver usable; only UnmarshalBinary
// accepts one, every other method requires a constructed map.
func (m *LinkedMap[K, V]) ensureInit() {
	if !m.ht.initialized() {
		m.init(Options[K, V]{}.normalize(false))
	}
}

// Len returns the number of mappings.
func (m *LinkedMap[K, V]) Len() int { return m.ht.size }

// IsEmpty reports whether the map holds no mappings.
func (m *LinkedMap[K, V]) IsEmpty() bool { return m.ht.size == 0 }

// Contains reports whether key is present.
func (m *LinkedMap[K, V]) Contains(key K) bool {
	return m.ht.lookup(key) != nil
}

// Get returns the value stored under key. Reading does not affect order.
func (m *LinkedMap[K, V]) Get(key K) (V, bool) {
	e := m.ht.lookup(key)
	if e == nil {
		m.ht.metrics.Miss()
		var zero V
		return zero, false
	}
	m.ht.metrics.Hit()
	return e.value, true
}

// Peek is Get without the hit statistics.
func (m *LinkedMap[K, V]) Peek(key K) (V, bool) {
	if e := m.ht.lookup(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key. A new key joins the back of the order; an
// existing key keeps its position and only the value changes.
func (m *LinkedMap[K, V]) Put(key K, value V) (V, bool) {
	hash := m.ht.hashOf(key)
	if e := m.ht.lookupHashed(hash, key); e != nil {
		old := e.value
		e.value = value
		return old, true
	}
	e := m.ht.addNew(hash, key, value)
	m.list.pushBack(e)
	m.ht.metrics.Size(m.ht.size)
	var zero V
	return zero, false
}

// PutAll copies every mapping from src, in src's iteration order.
func (m *LinkedMap[K, V]) PutAll(src Map[K, V]) {
	for k, v := range src.All() {
		m.Put(k, v)
	}
}

// Remove deletes key, returning the value it held.
func (m *LinkedMap[K, V]) Remove(key K) (V, bool) {
	hash := m.ht.hashOf(key)
	e, prev := m.ht.lookupHashedPrev(hash, key)
	if e == nil {
		var zero V
		return zero, false
	}
	old := e.value
	m.ht.removeHashed(e, prev)
	e.detachList()
	e.clear()
	m.ht.metrics.Size(m.ht.size)
	return old, true
}

// removeEntry deletes an entry the caller already holds, rescanning its
// bucket for the chain predecessor. Iterators funnel removals through here.
func (m *LinkedMap[K, V]) removeEntry(e *entry[K, V]) {
	prev, ok := m.ht.chainPredecessor(e)
	if !ok {
		panic(&CorruptionError{
			Op:     "remove",
			Detail: "entry not found in the bucket its hash maps to; was the map modified concurrently?",
		})
	}
	m.ht.removeHashed(e, prev)
	e.detachList()
	e.clear()
	m.ht.metrics.Size(m.ht.size)
}

// Clear removes all mappings, keeping the current bucket count.
func (m *LinkedMap[K, V]) Clear() {
	m.ht.clearBuckets()
	m.list.reset()
	m.ht.metrics.Size(0)
}

// FirstKey returns the first key in order (the oldest insertion).
func (m *LinkedMap[K, V]) FirstKey() (K, bool) {
	if e := m.list.front(); e != nil {
		return e.key, true
	}
	var zero K
	return zero, false
}

// LastKey returns the last key in order (the newest insertion).
func (m *LinkedMap[K, V]) LastKey() (K, bool) {
	if e := m.list.back(); e != nil {
		return e.key, true
	}
	var zero K
	return zero, false
}

// NextKey returns the key following key in order. It is absent when key is
// not in the map or is the last key.
func (m *LinkedMap[K, V]) NextKey(key K) (K, bool) {
	var zero K
	e := m.ht.lookup(key)
	if e == nil || m.list.isHeader(e.after) {
		return zero, false
	}
	return e.after.key, true
}

// PreviousKey returns the key preceding key in order. It is absent when key
// is not in the map or is the first key.
func (m *LinkedMap[K, V]) PreviousKey(key K) (K, bool) {
	var zero K
	e := m.ht.lookup(key)
	if e == nil || m.list.isHeader(e.before) {
		return zero, false
	}
	return e.before.key, true
}

// Keys returns all keys, front to back.
func (m *LinkedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.ht.size)
	for e := m.list.header.after; !m.list.isHeader(e); e = e.after {
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns all values, front to back.
func (m *LinkedMap[K, V]) Values() []V {
	values := make([]V, 0, m.ht.size)
	for e := m.list.header.after; !m.list.isHeader(e); e = e.after {
		values = append(values, e.value)
	}
	return values
}

// All yields every mapping front to back. The loop panics if the map is
// structurally modified while it runs; use Iterator to remove during
// traversal.
func (m *LinkedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		mc := m.ht.modCount
		for e := m.list.header.after; !m.list.isHeader(e); e = e.after {
			if m.ht.modCount != mc {
				panic("omap: map modified during iteration")
			}
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Backward yields every mapping back to front, with the same fail-fast
// behaviour as All.
func (m *LinkedMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		mc := m.ht.modCount
		for e := m.list.header.before; !m.list.isHeader(e); e = e.before {
			if m.ht.modCount != mc {
				panic("omap: map modified during iteration")
			}
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Iterator returns a cursor positioned before the first entry.
func (m *LinkedMap[K, V]) Iterator() *MapIterator[K, V] {
	return &MapIterator[K, V]{
		m:        m,
		next:     m.list.header.after,
		expected: m.ht.modCount,
	}
}

// String formats the map as {k1=v1, k2=v2, ...} in order.
func (m *LinkedMap[K, V]) String() string {
	return formatMap[K, V](m)
}
