package policy

import "testing"

// The default policy approves every candidate.
func TestEvictAll(t *testing.T) {
	t.Parallel()

	p := EvictAll[string, int]()
	if !p.CanEvict("anything", 42) {
		t.Fatal("EvictAll must approve every candidate")
	}
}

// Func adapts a plain function without changing its answer.
func TestFunc(t *testing.T) {
	t.Parallel()

	p := Func[int, string](func(k int, v string) bool { return k%2 == 0 && v != "" })
	if !p.CanEvict(2, "x") {
		t.Fatal("even key with value must be evictable")
	}
	if p.CanEvict(3, "x") {
		t.Fatal("odd key must be vetoed")
	}
	if p.CanEvict(2, "") {
		t.Fatal("empty value must be vetoed")
	}
}

// Pin vetoes exactly the listed keys, regardless of value.
func TestPin(t *testing.T) {
	t.Parallel()

	p := Pin[string, int]("root", "config")
	for _, k := range []string{"root", "config"} {
		if p.CanEvict(k, 0) {
			t.Fatalf("pinned key %q must be vetoed", k)
		}
	}
	if !p.CanEvict("other", 0) {
		t.Fatal("unpinned key must be evictable")
	}

	empty := Pin[string, int]()
	if !empty.CanEvict("anything", 1) {
		t.Fatal("Pin with no keys behaves like EvictAll")
	}
}
