package omap

import (
	"hash/maphash"
	"strconv"
	"testing"
)

// Basic Put/Get/Remove semantics, including the replaced-value returns.
func TestHashMap_PutGetRemove(t *testing.T) {
	t.Parallel()

	m := NewHashMap[string, int]()

	if _, replaced := m.Put("a", 1); replaced {
		t.Fatal("first Put must not report a replacement")
	}
	if old, replaced := m.Put("a", 11); !replaced || old != 1 {
		t.Fatalf("second Put: want old 1, got %v replaced=%v", old, replaced)
	}
	if v, ok := m.Get("a"); !ok || v != 11 {
		t.Fatalf("Get a want 11, got %v ok=%v", v, ok)
	}
	if m.Len() != 1 {
		t.Fatalf("want size 1, got %d", m.Len())
	}

	if v, ok := m.Remove("a"); !ok || v != 11 {
		t.Fatalf("Remove a want 11, got %v ok=%v", v, ok)
	}
	if _, ok := m.Remove("a"); ok {
		t.Fatal("second Remove must miss")
	}
	if _, ok := m.Get("a"); ok {
		t.Fatal("a must be absent after Remove")
	}
	if !m.IsEmpty() {
		t.Fatal("map must be empty")
	}
}

// Zero values are ordinary citizens: zero keys, zero values, and both.
func TestHashMap_ZeroKeyAndValue(t *testing.T) {
	t.Parallel()

	m := NewHashMap[string, int]()
	m.Put("", 0)

	if !m.Contains("") {
		t.Fatal("zero key must be present")
	}
	if v, ok := m.Get(""); !ok || v != 0 {
		t.Fatalf("zero key: got %v ok=%v", v, ok)
	}
	if ContainsValue[string, int](m, 0) != true {
		t.Fatal("zero value must be found")
	}
}

// Many inserts force repeated doubling; every mapping must survive each
// rehash and removals must keep working afterwards.
func TestHashMap_Growth(t *testing.T) {
	t.Parallel()

	rec := newRecordingMetrics()
	m := NewHashMapWith(Options[int, string]{Metrics: rec})

	const n = 1000
	for i := 0; i < n; i++ {
		m.Put(i, strconv.Itoa(i))
	}
	if m.Len() != n {
		t.Fatalf("want %d entries, got %d", n, m.Len())
	}
	if rec.grows == 0 {
		t.Fatal("expected at least one table growth")
	}
	for i := 0; i < n; i++ {
		if v, ok := m.Get(i); !ok || v != strconv.Itoa(i) {
			t.Fatalf("key %d lost after growth: %q ok=%v", i, v, ok)
		}
	}
	for i := 0; i < n; i += 2 {
		if _, ok := m.Remove(i); !ok {
			t.Fatalf("Remove %d must hit", i)
		}
	}
	if m.Len() != n/2 {
		t.Fatalf("want %d after removals, got %d", n/2, m.Len())
	}
}

// A constant hash function degrades the map to one linked list; semantics
// must not change, only speed.
func TestHashMap_DegenerateHash(t *testing.T) {
	t.Parallel()

	m := NewHashMapWith(Options[string, int]{
		Hash: func(maphash.Seed, string) uint64 { return 12345 },
	})
	const n = 100
	for i := 0; i < n; i++ {
		m.Put(strconv.Itoa(i), i)
	}
	for i := 0; i < n; i++ {
		if v, ok := m.Get(strconv.Itoa(i)); !ok || v != i {
			t.Fatalf("key %d: got %v ok=%v", i, v, ok)
		}
	}
	// Remove from the middle of the chain, the head and the tail.
	for _, k := range []string{"50", "0", "99"} {
		if _, ok := m.Remove(k); !ok {
			t.Fatalf("Remove %s must hit", k)
		}
		if m.Contains(k) {
			t.Fatalf("%s still present", k)
		}
	}
	if m.Len() != n-3 {
		t.Fatalf("want %d, got %d", n-3, m.Len())
	}
}

// A custom seeded hasher is actually used: a counting wrapper sees calls.
func TestHashMap_CustomHasher(t *testing.T) {
	t.Parallel()

	calls := 0
	m := NewHashMapWith(Options[string, string]{
		Hash: func(seed maphash.Seed, k string) uint64 {
			calls++
			return maphash.String(seed, k)
		},
	})
	m.Put("x", "1")
	m.Get("x")
	if calls == 0 {
		t.Fatal("custom hasher was never called")
	}
}

// Clear drops everything but the map remains usable.
func TestHashMap_Clear(t *testing.T) {
	t.Parallel()

	m := NewHashMap[int, int]()
	for i := 0; i < 50; i++ {
		m.Put(i, i)
	}
	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("want empty, got %d", m.Len())
	}
	if m.Contains(7) {
		t.Fatal("cleared key still present")
	}
	m.Put(7, 70)
	if v, ok := m.Get(7); !ok || v != 70 {
		t.Fatalf("map unusable after Clear: %v ok=%v", v, ok)
	}
}

// PutAll copies from any Map implementation through its iteration order.
func TestHashMap_PutAll(t *testing.T) {
	t.Parallel()

	src := NewLinkedMap[string, int]()
	src.Put("a", 1)
	src.Put("b", 2)

	m := NewHashMap[string, int]()
	m.Put("b", 0) // overwritten by src
	m.PutAll(src)

	if m.Len() != 2 {
		t.Fatalf("want 2 entries, got %d", m.Len())
	}
	if v, _ := m.Get("b"); v != 2 {
		t.Fatalf("PutAll must overwrite, got b=%d", v)
	}
}

// All stops early when the consumer breaks, and panics if the map mutates
// mid-loop.
func TestHashMap_AllFailFast(t *testing.T) {
	t.Parallel()

	m := NewHashMap[int, int]()
	for i := 0; i < 10; i++ {
		m.Put(i, i)
	}

	seen := 0
	for range m.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Fatalf("break must stop the loop, saw %d", seen)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mutation during All")
		}
	}()
	for k := range m.All() {
		m.Remove(k)
	}
}
