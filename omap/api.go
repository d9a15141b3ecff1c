package omap

import "iter"

// Map is the contract shared by every map in this package. Implementations
// are not safe for concurrent use; wrap with Synchronized if several
// goroutines share one.
type Map[K comparable, V any] interface {
	// Len returns the number of resident mappings.
	Len() int
	// IsEmpty reports whether the map holds no mappings.
	IsEmpty() bool
	// Contains reports whether key is present, without touching recency.
	Contains(key K) bool
	// Get returns the value for key. On recency-ordered maps a hit
	// promotes the entry; use Peek there to avoid that.
	Get(key K) (V, bool)
	// Peek returns the value for key with no side effects: no recency
	// promotion, no hit statistics.
	Peek(key K) (V, bool)
	// Put stores value under key and returns the value it replaced,
	// if any.
	Put(key K, value V) (V, bool)
	// PutAll copies every mapping from src into the map, one Put at a
	// time, in src's iteration order.
	PutAll(src Map[K, V])
	// Remove deletes key and returns the value it held, if any.
	Remove(key K) (V, bool)
	// Clear removes every mapping but keeps the configuration.
	Clear()
	// Keys returns the keys in the map's iteration order.
	Keys() []K
	// Values returns the values in the map's iteration order.
	Values() []V
	// All yields every mapping in the map's iteration order. The loop
	// panics if the map is structurally modified while it runs.
	All() iter.Seq2[K, V]
}

// OrderedMap is a Map with a stable traversal order and navigation along it.
// Whether that order is insertion or recency is the implementation's
// business.
type OrderedMap[K comparable, V any] interface {
	Map[K, V]

	// FirstKey returns the key at the front of the order: the oldest
	// inserted, or the least recently used.
	FirstKey() (K, bool)
	// LastKey returns the key at the back of the order.
	LastKey() (K, bool)
	// NextKey returns the key following key in order.
	NextKey(key K) (K, bool)
	// PreviousKey returns the key preceding key in order.
	PreviousKey(key K) (K, bool)
	// Backward yields every mapping in reverse order, with the same
	// fail-fast behaviour as All.
	Backward() iter.Seq2[K, V]
	// Iterator returns a bidirectional cursor positioned before the
	// first entry. Unlike All it survives removal through itself and
	// reports external modification via Err instead of panicking.
	Iterator() *MapIterator[K, V]
}

// BoundedMap is a Map whose size cannot normally exceed a fixed maximum.
type BoundedMap[K comparable, V any] interface {
	Map[K, V]

	// MaxSize returns the configured bound.
	MaxSize() int
	// IsFull reports Len() >= MaxSize. A full map evicts on insert.
	IsFull() bool
}
