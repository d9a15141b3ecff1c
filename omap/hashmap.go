package omap

import (
	"fmt"
	"iter"
	"strings"
)

// HashMap is a plain separate-chaining hash map. It exists for callers who
// want this package's hashing control, metrics and decorators without an
// order guarantee, and it is the structural base the ordered maps build on.
//
// Iteration order is bucket order: stable between modifications, otherwise
// arbitrary. Not safe for concurrent use.
type HashMap[K comparable, V any] struct {
	ht hashTable[K, V]
}

var _ Map[string, int] = (*HashMap[string, int])(nil)

// NewHashMap returns an empty map with default options.
func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return NewHashMapWith(Options[K, V]{})
}

// NewHashMapWith returns an empty map configured by opt. Invalid options
// panic; see Options.
func NewHashMapWith[K comparable, V any](opt Options[K, V]) *HashMap[K, V] {
	opt = opt.normalize(false)
	m := &HashMap[K, V]{}
	m.ht.init(opt.bucketCount(), opt.LoadFactor, opt.Hash, opt.Metrics)
	return m
}

// Len returns the number of mappings.
func (m *HashMap[K, V]) Len() int { return m.ht.size }

// IsEmpty reports whether the map holds no mappings.
func (m *HashMap[K, V]) IsEmpty() bool { return m.ht.size == 0 }

// Contains reports whether key is present.
func (m *HashMap[K, V]) Contains(key K) bool {
	return m.ht.lookup(key) != nil
}

// Get returns the value stored under key.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
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
func (m *HashMap[K, V]) Peek(key K) (V, bool) {
	if e := m.ht.lookup(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key, returning the previous value if the key was
// already present. Overwriting a value is not a structural modification.
func (m *HashMap[K, V]) Put(key K, value V) (V, bool) {
	hash := m.ht.hashOf(key)
	if e := m.ht.lookupHashed(hash, key); e != nil {
		old := e.value
		e.value = value
		return old, true
	}
	m.ht.addNew(hash, key, value)
	m.ht.metrics.Size(m.ht.size)
	var zero V
	return zero, false
}

// PutAll copies every mapping from src, in src's iteration order.
func (m *HashMap[K, V]) PutAll(src Map[K, V]) {
	for k, v := range src.All() {
		m.Put(k, v)
	}
}

// Remove deletes key, returning the value it held.
func (m *HashMap[K, V]) Remove(key K) (V, bool) {
	hash := m.ht.hashOf(key)
	e, prev := m.ht.lookupHashedPrev(hash, key)
	if e == nil {
		var zero V
		return zero, false
	}
	old := e.value
	m.ht.removeHashed(e, prev)
	e.clear()
	m.ht.metrics.Size(m.ht.size)
	return old, true
}

// Clear removes all mappings, keeping the current bucket count.
func (m *HashMap[K, V]) Clear() {
	m.ht.clearBuckets()
	m.ht.metrics.Size(0)
}

// Keys returns all keys in bucket order.
func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.ht.size)
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns all values in bucket order.
func (m *HashMap[K, V]) Values() []V {
	values := make([]V, 0, m.ht.size)
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// All yields every mapping in bucket order. The loop panics if the map is
// structurally modified while it runs; collect keys first if the body must
// mutate the map.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		mc := m.ht.modCount
		for _, e := range m.ht.data {
			for ; e != nil; e = e.next {
				if m.ht.modCount != mc {
					panic("omap: map modified during iteration")
				}
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// String formats the map as {k1=v1, k2=v2, ...} in iteration order.
func (m *HashMap[K, V]) String() string {
	return formatMap[K, V](m)
}

func formatMap[K comparable, V any](m Map[K, V]) string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v=%v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}
