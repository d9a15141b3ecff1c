package omap

// orderList is the circular doubly linked list threading every resident
// entry in traversal order. A sentinel header joins the two ends: the entry
// at the front is the oldest (first inserted, or least recently used), the
// one at the back the newest. An empty list is the header linked to itself.
//
// The list stores no length and allocates nothing; entries carry the links.
type orderList[K comparable, V any] struct {
	header entry[K, V]
}

func (l *orderList[K, V]) init() {
	l.header.before = &l.header
	l.header.after = &l.header
}

// reset unlinks every entry in one step by closing the header on itself.
func (l *orderList[K, V]) reset() {
	l.header.before = &l.header
	l.header.after = &l.header
}

func (l *orderList[K, V]) isHeader(e *entry[K, V]) bool {
	return e == &l.header
}

// front returns the oldest entry, or nil if the list is empty. On bounded
// maps this is the eviction end.
func (l *orderList[K, V]) front() *entry[K, V] {
	if l.header.after == &l.header {
		return nil
	}
	return l.header.after
}

// back returns the newest entry, or nil if the list is empty.
func (l *orderList[K, V]) back() *entry[K, V] {
	if l.header.before == &l.header {
		return nil
	}
	return l.header.before
}

// pushBack links a detached entry in at the newest end.
func (l *orderList[K, V]) pushBack(e *entry[K, V]) {
	e.after = &l.header
	e.before = l.header.before
	l.header.before.after = e
	l.header.before = e
}

// pushFront links a detached entry in at the oldest end, making it the next
// eviction candidate.
func (l *orderList[K, V]) pushFront(e *entry[K, V]) {
	e.before = &l.header
	e.after = l.header.after
	l.header.after.before = e
	l.header.after = e
}

// moveToBack promotes a linked entry to the newest end and reports whether
// it actually moved; the entry already at the back stays put, so repeated
// hits on one key cost two pointer reads.
//
// Panics with a *CorruptionError if e is the sentinel or has been unlinked.
// Both mean the map's structure was modified behind its back.
func (l *orderList[K, V]) moveToBack(e *entry[K, V]) bool {
	if e.after == &l.header {
		if l.isHeader(e) {
			panic(&CorruptionError{
				Op:     "promote",
				Detail: "attempted to promote the list sentinel; the map is empty or an iterator was misused",
			})
		}
		return false
	}
	if e.before == nil {
		panic(&CorruptionError{
			Op:     "promote",
			Detail: "entry is no longer linked; the map was modified concurrently or a removed entry was promoted",
		})
	}
	e.detachList()
	l.pushBack(e)
	return true
}
