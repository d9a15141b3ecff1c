package omap

import (
	"bytes"
	"encoding"
	"encoding/gob"
	"fmt"
)

// The maps serialize as a gob stream of primitives rather than a dump of
// internal structure: an entry count (preceded by the bound for LRUMap)
// followed by the key/value pairs in iteration order. Decoding replays the
// pairs through the table's insert path, so hashes, bucket chains and the
// order list are rebuilt for the decoding process's seed instead of trusted
// from the wire. Keys and values must themselves be gob-encodable.
//
// Because gob falls back to these interfaces, the maps can be encoded
// directly with gob.Encoder or embedded in larger gob streams.
var (
	_ encoding.BinaryMarshaler   = (*HashMap[string, int])(nil)
	_ encoding.BinaryUnmarshaler = (*HashMap[string, int])(nil)
	_ encoding.BinaryMarshaler   = (*LinkedMap[string, int])(nil)
	_ encoding.BinaryUnmarshaler = (*LinkedMap[string, int])(nil)
	_ encoding.BinaryMarshaler   = (*LRUMap[string, int])(nil)
	_ encoding.BinaryUnmarshaler = (*LRUMap[string, int])(nil)
)

func encodePairs[K comparable, V any](enc *gob.Encoder, m Map[K, V]) error {
	if err := enc.Encode(m.Len()); err != nil {
		return err
	}
	for k, v := range m.All() {
		if err := enc.Encode(k); err != nil {
			return err
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func decodePairs[K comparable, V any](dec *gob.Decoder, put func(K, V)) error {
	var n int
	if err := dec.Decode(&n); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("omap: corrupt stream: negative entry count %d", n)
	}
	for i := 0; i < n; i++ {
		var k K
		var v V
		if err := dec.Decode(&k); err != nil {
			return err
		}
		if err := dec.Decode(&v); err != nil {
			return err
		}
		put(k, v)
	}
	return nil
}

// MarshalBinary encodes the entry count and the pairs in bucket order.
func (m *HashMap[K, V]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodePairs[K, V](gob.NewEncoder(&buf), m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces the map's contents with the stream's. The
// receiver keeps its configuration; a zero-value receiver gets defaults.
func (m *HashMap[K, V]) UnmarshalBinary(data []byte) error {
	if !m.ht.initialized() {
		opt := Options[K, V]{}.normalize(false)
		m.ht.init(opt.bucketCount(), opt.LoadFactor, opt.Hash, opt.Metrics)
	}
	m.Clear()
	return decodePairs(gob.NewDecoder(bytes.NewReader(data)), func(k K, v V) {
		m.Put(k, v)
	})
}

// MarshalBinary encodes the entry count and the pairs front to back, so a
// round trip preserves insertion order.
func (m *LinkedMap[K, V]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodePairs[K, V](gob.NewEncoder(&buf), m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces the map's contents with the stream's, replaying
// the pairs in stream order. The receiver keeps its configuration; a
// zero-value receiver gets defaults.
func (m *LinkedMap[K, V]) UnmarshalBinary(data []byte) error {
	m.ensureInit()
	m.Clear()
	return decodePairs(gob.NewDecoder(bytes.NewReader(data)), func(k K, v V) {
		m.Put(k, v)
	})
}

// MarshalBinary encodes the bound, the entry count and the pairs from least
// to most recently used, so a round trip preserves both contents and
// recency order.
func (m *LRUMap[K, V]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(m.maxSize); err != nil {
		return nil, err
	}
	if err := encodePairs[K, V](enc, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary restores the bound and replaces the map's contents with
// the stream's. Pairs are replayed oldest first without consulting the
// eviction policy: the stream is the authority on what was resident, even
// when unscanned vetoes had pushed the map past its bound. The receiver
// keeps its policy, scan mode and other configuration; a zero-value
// receiver gets defaults. Iterators are stranded as by any other mutation.
func (m *LRUMap[K, V]) UnmarshalBinary(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	var maxSize int
	if err := dec.Decode(&maxSize); err != nil {
		return err
	}
	if maxSize < 1 {
		return fmt.Errorf("omap: corrupt stream: max size %d, must be at least 1", maxSize)
	}
	if !m.core.ht.initialized() {
		opt := Options[K, V]{MaxSize: maxSize}.normalize(true)
		m.core.init(opt)
		m.scan = opt.ScanUntilRemovable
		m.pol = opt.Policy
		m.onEvict = opt.OnEvict
	}
	m.maxSize = maxSize
	m.Clear()
	return decodePairs(dec, func(k K, v V) {
		m.core.Put(k, v)
	})
}
