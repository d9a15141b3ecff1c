package omap

// ContainsValue reports whether any mapping in m holds value. Unlike key
// lookups this walks the whole map.
func ContainsValue[K, V comparable](m Map[K, V], value V) bool {
	for _, v := range m.All() {
		if v == value {
			return true
		}
	}
	return false
}

// Equal reports whether m1 and m2 hold the same key/value pairs, comparing
// values with ==. Order is ignored, so maps with different iteration orders
// can still be equal. Lookups go through Peek, leaving recency untouched.
func Equal[K, V comparable](m1, m2 Map[K, V]) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for k, v1 := range m1.All() {
		v2, ok := m2.Peek(k)
		if !ok || v1 != v2 {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a custom value comparison, allowing maps with
// different value types. Keys are still compared with ==.
func EqualFunc[K comparable, V1, V2 any](m1 Map[K, V1], m2 Map[K, V2], eq func(V1, V2) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for k, v1 := range m1.All() {
		v2, ok := m2.Peek(k)
		if !ok || !eq(v1, v2) {
			return false
		}
	}
	return true
}
