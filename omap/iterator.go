package omap

// MapIterator is a bidirectional cursor over an ordered map. It starts
// before the first entry; Next and Previous move it and report whether an
// entry became current. Key, Value, SetValue and Remove act on the current
// entry, so a typical walk is:
//
//	it := m.Iterator()
//	for it.Next() {
//	    use(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
//
// The iterator is fail-fast: any structural change to the map other than
// through this iterator's own Remove (inserts, removals, Clear, and on LRU
// maps the promotion done by Get and Put) strands it. Next and Previous
// then return false and Err reports ErrModified. Removing through the
// iterator keeps it live and resynchronizes it with the map.
//
// Iterators borrow the map's memory and are single-goroutine, same as the
// map itself.
type MapIterator[K comparable, V any] struct {
	m *LinkedMap[K, V]
	// next is the entry a call to Next would surface; current is the
	// entry the last successful Next or Previous surfaced, nil when
	// there is none (fresh, or just removed).
	next     *entry[K, V]
	current  *entry[K, V]
	expected int
	err      error
}

// Next advances to the following entry. It returns false at the end of the
// order or on a stranded iterator; check Err to tell the two apart.
func (it *MapIterator[K, V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.m.ht.modCount != it.expected {
		it.err = ErrModified
		return false
	}
	if it.m.list.isHeader(it.next) {
		return false
	}
	it.current = it.next
	it.next = it.next.after
	return true
}

// Previous steps back to the preceding entry. Alternating Next and
// Previous revisits the same entry, mirroring list iterators.
func (it *MapIterator[K, V]) Previous() bool {
	if it.err != nil {
		return false
	}
	if it.m.ht.modCount != it.expected {
		it.err = ErrModified
		return false
	}
	prev := it.next.before
	if it.m.list.isHeader(prev) {
		return false
	}
	it.next = prev
	it.current = prev
	return true
}

// Key returns the current entry's key, or the zero value when no entry is
// current.
func (it *MapIterator[K, V]) Key() K {
	if it.current == nil {
		var zero K
		return zero
	}
	return it.current.key
}

// Value returns the current entry's value, or the zero value when no entry
// is current.
func (it *MapIterator[K, V]) Value() V {
	if it.current == nil {
		var zero V
		return zero
	}
	return it.current.value
}

// SetValue replaces the current entry's value and returns the old one.
// Overwriting a value does not reposition the entry or strand other
// iterators. Errors: ErrNoPosition with no current entry, ErrModified after
// an external structural change.
func (it *MapIterator[K, V]) SetValue(value V) (V, error) {
	var zero V
	if it.current == nil {
		return zero, ErrNoPosition
	}
	if it.m.ht.modCount != it.expected {
		return zero, ErrModified
	}
	old := it.current.value
	it.current.value = value
	return old, nil
}

// Remove deletes the current entry from the map. The iterator stays usable
// and continues from the neighbouring entry. Errors: ErrNoPosition with no
// current entry, ErrModified after an external structural change.
func (it *MapIterator[K, V]) Remove() error {
	if it.current == nil {
		return ErrNoPosition
	}
	if it.m.ht.modCount != it.expected {
		return ErrModified
	}
	// After Previous the cursor rests on the entry being removed; slide
	// it to the successor so it never dangles.
	if it.next == it.current {
		it.next = it.current.after
	}
	it.m.removeEntry(it.current)
	it.current = nil
	it.expected = it.m.ht.modCount
	return nil
}

// Err returns ErrModified if the map changed under the iterator, nil
// otherwise. Exhausting the order is not an error.
func (it *MapIterator[K, V]) Err() error { return it.err }

// Reset rewinds the iterator to before the first entry and takes a fresh
// snapshot of the map, clearing any stranded state.
func (it *MapIterator[K, V]) Reset() {
	it.next = it.m.list.header.after
	it.current = nil
	it.expected = it.m.ht.modCount
	it.err = nil
}
