package omap

// entry is a single mapping. It is intrusive twice over: next chains entries
// that share a bucket, while before/after thread every entry into one circular
// order list. An entry therefore never allocates per-structure bookkeeping.
type entry[K comparable, V any] struct {
	// Bucket chain, newest first.
	next *entry[K, V]

	// Order list neighbours. before points toward the front (oldest),
	// after toward the back (newest).
	before *entry[K, V]
	after  *entry[K, V]

	// hash is the mixed hash of key, cached so that resizing and unlinking
	// never re-invoke the hasher (the key could be expensive to hash, and
	// a misbehaving hasher must not corrupt the table after insert).
	hash uint64

	key   K
	value V
}

// detachList removes e from the order list and nils its order links.
// The bucket chain is untouched.
func (e *entry[K, V]) detachList() {
	e.before.after = e.after
	e.after.before = e.before
	e.before = nil
	e.after = nil
}

// clear zeroes the entry so removed mappings do not pin their key and value
// for the garbage collector.
func (e *entry[K, V]) clear() {
	var zeroK K
	var zeroV V
	e.next = nil
	e.before = nil
	e.after = nil
	e.hash = 0
	e.key = zeroK
	e.value = zeroV
}
