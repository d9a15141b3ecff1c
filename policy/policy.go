// Package policy defines the eviction-veto contract used by bounded maps.
//
// A full map asks the policy whether the least-recently-used entry may be
// discarded before reusing its slot for an incoming mapping. Returning false
// vetoes that candidate; what happens next depends on the map's scan mode
// (try the next-oldest entry, or admit the new mapping beyond the bound).
package policy

// Policy decides whether a candidate entry may be evicted.
//
// Semantics:
//   - CanEvict is consulted only when the map is at capacity and needs to
//     free a slot. It must not mutate the map.
//   - The candidate is offered oldest-first; vetoing does not remove the
//     candidate from future consideration.
//
// Implementations must be deterministic for a given (key, value) while the
// entry is resident, otherwise scan results are unstable.
type Policy[K comparable, V any] interface {
	CanEvict(key K, value V) bool
}

// Func adapts an ordinary function to a Policy.
type Func[K comparable, V any] func(key K, value V) bool

// CanEvict calls f.
func (f Func[K, V]) CanEvict(key K, value V) bool { return f(key, value) }

// EvictAll returns the default policy: every candidate may be evicted.
func EvictAll[K comparable, V any]() Policy[K, V] {
	return Func[K, V](func(K, V) bool { return true })
}

// Pin returns a policy that vetoes eviction of the given keys and allows
// everything else. Pinned entries stay resident until removed explicitly.
//
// Pair it with scan mode so the map walks past pinned entries instead of
// growing beyond its bound.
func Pin[K comparable, V any](keys ...K) Policy[K, V] {
	pinned := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		pinned[k] = struct{}{}
	}
	return Func[K, V](func(key K, _ V) bool {
		_, ok := pinned[key]
		return !ok
	})
}
