package omap

import (
	"strconv"
	"testing"
)

// Equal ignores iteration order and implementation; it only compares pairs.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := NewLinkedMap[string, int]()
	a.Put("x", 1)
	a.Put("y", 2)

	b := NewLRUMap[string, int](10)
	b.Put("y", 2) // same pairs, different order
	b.Put("x", 1)

	if !Equal[string, int](a, b) {
		t.Fatal("maps with equal pairs must be equal")
	}

	b.Put("z", 3)
	if Equal[string, int](a, b) {
		t.Fatal("different sizes must not be equal")
	}
	b.Remove("z")
	b.Put("y", 99)
	if Equal[string, int](a, b) {
		t.Fatal("different values must not be equal")
	}
}

// Comparing maps must not promote entries: Equal on LRU maps is a read.
func TestEqual_DoesNotDisturbRecency(t *testing.T) {
	t.Parallel()

	a := NewLRUMap[string, int](4)
	b := NewLRUMap[string, int](4)
	for _, k := range []string{"p", "q", "r"} {
		a.Put(k, 1)
		b.Put(k, 1)
	}

	if !Equal[string, int](a, b) {
		t.Fatal("expected equal maps")
	}
	if first, _ := a.FirstKey(); first != "p" {
		t.Fatal("Equal promoted an entry in its first argument")
	}
	if first, _ := b.FirstKey(); first != "p" {
		t.Fatal("Equal promoted an entry in its second argument")
	}

	// A comparison mid-iteration must also be safe: Peek does not bump
	// the modification counter.
	for range a.All() {
		_ = Equal[string, int](a, b)
		break
	}
}

// EqualFunc bridges different value types.
func TestEqualFunc(t *testing.T) {
	t.Parallel()

	nums := NewLinkedMap[string, int]()
	nums.Put("a", 1)
	nums.Put("b", 2)

	words := NewLinkedMap[string, string]()
	words.Put("a", "1")
	words.Put("b", "2")

	eq := func(n int, s string) bool { return strconv.Itoa(n) == s }
	if !EqualFunc[string, int, string](nums, words, eq) {
		t.Fatal("expected equal under conversion")
	}
	words.Put("b", "3")
	if EqualFunc[string, int, string](nums, words, eq) {
		t.Fatal("mismatched value must fail")
	}
}

// ContainsValue scans values across any map kind.
func TestContainsValue(t *testing.T) {
	t.Parallel()

	m := NewLRUMap[int, string](8)
	m.Put(1, "one")
	m.Put(2, "two")

	if !ContainsValue[int, string](m, "two") {
		t.Fatal("present value not found")
	}
	if ContainsValue[int, string](m, "three") {
		t.Fatal("absent value reported found")
	}
	if first, _ := m.FirstKey(); first != 1 {
		t.Fatal("value scan must not promote entries")
	}
}
