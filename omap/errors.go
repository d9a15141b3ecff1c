package omap

import (
	"errors"
	"fmt"
)

// Iterator state errors, reported through MapIterator.Err.
var (
	// ErrModified means the map changed structurally (insert, remove,
	// clear, resize or a recency promotion) after the iterator snapshot
	// was taken. The iterator is dead; take a new one.
	ErrModified = errors.New("omap: map modified during iteration")

	// ErrNoPosition means the iterator has no current entry: Next or
	// Previous has not returned true yet, or the entry was just removed.
	ErrNoPosition = errors.New("omap: iterator has no current entry")
)

// CorruptionError reports that an internal structural invariant no longer
// holds: an entry missing from the bucket its stored hash maps to, a broken
// order-list link, or an eviction scan that ran off the list. These states
// are unreachable through this package's API on a single goroutine, so the
// usual causes are unsynchronized concurrent use or a key whose hash changed
// while it was in the map. The package panics with this error rather than
// limping on with a structure it can no longer trust.
type CorruptionError struct {
	// Op names the operation that tripped the check, e.g. "evict".
	Op     string
	Detail string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("omap: structure corrupted in %s: %s", e.Op, e.Detail)
}
