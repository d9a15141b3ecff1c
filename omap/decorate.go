package omap

import (
	"iter"
	"sync"
)

// Unmodifiable returns a read-only view of m. Mutating methods panic.
// Reads delegate to m, so changes made directly through m stay visible.
// Get is routed through Peek: a read-only view must not reorder a
// recency-ordered map underneath its other readers.
func Unmodifiable[K comparable, V any](m Map[K, V]) Map[K, V] {
	return unmodifiable[K, V]{m}
}

type unmodifiable[K comparable, V any] struct {
	m Map[K, V]
}

func (u unmodifiable[K, V]) Len() int                { return u.m.Len() }
func (u unmodifiable[K, V]) IsEmpty() bool           { return u.m.IsEmpty() }
func (u unmodifiable[K, V]) Contains(key K) bool     { return u.m.Contains(key) }
func (u unmodifiable[K, V]) Get(key K) (V, bool)     { return u.m.Peek(key) }
func (u unmodifiable[K, V]) Peek(key K) (V, bool)    { return u.m.Peek(key) }
func (u unmodifiable[K, V]) Keys() []K               { return u.m.Keys() }
func (u unmodifiable[K, V]) Values() []V             { return u.m.Values() }
func (u unmodifiable[K, V]) All() iter.Seq2[K, V]    { return u.m.All() }
func (u unmodifiable[K, V]) Put(K, V) (V, bool)      { panic("omap: Put on unmodifiable map") }
func (u unmodifiable[K, V]) PutAll(Map[K, V])        { panic("omap: PutAll on unmodifiable map") }
func (u unmodifiable[K, V]) Remove(K) (V, bool)      { panic("omap: Remove on unmodifiable map") }
func (u unmodifiable[K, V]) Clear()                  { panic("omap: Clear on unmodifiable map") }

// Synchronized returns a view of m that serializes every operation behind
// one mutex, making a single map safe to share between goroutines. All
// other references to m must go through the returned view.
//
// All holds the lock for the whole loop, so the loop body must not call
// back into the same view. Likewise PutAll's source must be a different
// map. For iteration that interleaves with other writers, snapshot with
// Keys or Values instead.
func Synchronized[K comparable, V any](m Map[K, V]) Map[K, V] {
	return &synchronized[K, V]{m: m}
}

type synchronized[K comparable, V any] struct {
	mu sync.Mutex
	m  Map[K, V]
}

func (s *synchronized[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Len()
}

func (s *synchronized[K, V]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.IsEmpty()
}

func (s *synchronized[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Contains(key)
}

func (s *synchronized[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Get(key)
}

func (s *synchronized[K, V]) Peek(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Peek(key)
}

func (s *synchronized[K, V]) Put(key K, value V) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Put(key, value)
}

func (s *synchronized[K, V]) PutAll(src Map[K, V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.PutAll(src)
}

func (s *synchronized[K, V]) Remove(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Remove(key)
}

func (s *synchronized[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Clear()
}

func (s *synchronized[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Keys()
}

func (s *synchronized[K, V]) Values() []V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Values()
}

func (s *synchronized[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for k, v := range s.m.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

var (
	_ Map[string, int] = unmodifiable[string, int]{}
	_ Map[string, int] = (*synchronized[string, int])(nil)
)
