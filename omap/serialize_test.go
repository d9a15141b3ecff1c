package omap

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekuvardin/commons-collections/policy"
)

// A LinkedMap round trip preserves contents and insertion order, decoding
// into a zero-value receiver.
func TestLinkedMap_BinaryRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewLinkedMap[string, int]()
	m.Put("first", 1)
	m.Put("second", 2)
	m.Put("third", 3)
	m.Put("second", 22) // overwrite, keeps position

	data, err := m.MarshalBinary()
	require.NoError(t, err)

	var back LinkedMap[string, int]
	require.NoError(t, back.UnmarshalBinary(data))

	assert.Equal(t, m.Keys(), back.Keys())
	assert.Equal(t, m.Values(), back.Values())
	assert.True(t, Equal[string, int](m, &back))
}

// An LRUMap round trip carries the bound and the recency order, and the
// restored map keeps evicting correctly.
func TestLRUMap_BinaryRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewLRUMap[string, int](3)
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)
	m.Get("a") // recency now b, c, a

	data, err := m.MarshalBinary()
	require.NoError(t, err)

	var back LRUMap[string, int]
	require.NoError(t, back.UnmarshalBinary(data))

	assert.Equal(t, 3, back.MaxSize())
	assert.Equal(t, []string{"b", "c", "a"}, back.Keys())

	back.Put("d", 4) // full: evicts b, the restored LRU
	assert.False(t, back.Contains("b"))
	assert.True(t, back.Contains("a"))
}

// A map that overflowed its bound through unscanned vetoes round-trips at
// its full size: the stream is the authority, not the policy.
func TestLRUMap_BinaryRoundTripOverflow(t *testing.T) {
	t.Parallel()

	m := NewLRUMapWith(Options[string, int]{
		MaxSize: 2,
		Policy:  policy.Func[string, int](func(string, int) bool { return false }),
	})
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3) // veto, soft overflow
	require.Equal(t, 3, m.Len())

	data, err := m.MarshalBinary()
	require.NoError(t, err)

	var back LRUMap[string, int]
	require.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, 2, back.MaxSize())
	assert.Equal(t, 3, back.Len(), "overflowed state must survive the trip")
	assert.Equal(t, m.Keys(), back.Keys())
}

// Decoding into a configured receiver replaces contents and bound but keeps
// the receiver's policy and scan mode.
func TestLRUMap_UnmarshalIntoConfigured(t *testing.T) {
	t.Parallel()

	src := NewLRUMap[string, int](4)
	src.Put("pinned", 0)
	src.Put("x", 1)

	data, err := src.MarshalBinary()
	require.NoError(t, err)

	dst := NewLRUMapWith(Options[string, int]{
		MaxSize:            99, // replaced by the stream's bound
		ScanUntilRemovable: true,
		Policy:             policy.Pin[string, int]("pinned"),
	})
	dst.Put("old", 7)
	require.NoError(t, dst.UnmarshalBinary(data))

	assert.Equal(t, 4, dst.MaxSize())
	assert.False(t, dst.Contains("old"), "previous contents must be gone")

	// The receiver's pin policy still applies to future evictions.
	dst.Put("y", 2)
	dst.Put("z", 3) // full now
	dst.Put("w", 4) // scan skips "pinned", evicts "x"
	assert.True(t, dst.Contains("pinned"))
	assert.False(t, dst.Contains("x"))
}

// The maps participate in larger gob streams through the BinaryMarshaler
// fallback.
func TestLRUMap_GobEmbedding(t *testing.T) {
	t.Parallel()

	type snapshot struct {
		Name string
		Data *LRUMap[string, int]
	}

	m := NewLRUMap[string, int](5)
	m.Put("k1", 1)
	m.Put("k2", 2)

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(snapshot{Name: "s1", Data: m}))

	var out snapshot
	require.NoError(t, gob.NewDecoder(&buf).Decode(&out))
	require.NotNil(t, out.Data)
	assert.Equal(t, "s1", out.Name)
	assert.Equal(t, 5, out.Data.MaxSize())
	assert.Equal(t, []string{"k1", "k2"}, out.Data.Keys())
}

// HashMap serializes contents without any order promise.
func TestHashMap_BinaryRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewHashMap[int, string]()
	for i := 0; i < 20; i++ {
		m.Put(i, "v")
	}
	data, err := m.MarshalBinary()
	require.NoError(t, err)

	var back HashMap[int, string]
	require.NoError(t, back.UnmarshalBinary(data))
	assert.True(t, Equal[int, string](m, &back))
}

// Corrupt streams are rejected with errors, not panics.
func TestUnmarshal_CorruptStreams(t *testing.T) {
	t.Parallel()

	var lm LinkedMap[string, int]
	assert.Error(t, lm.UnmarshalBinary([]byte("not a gob stream")))

	// Negative entry count.
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(-1))
	assert.Error(t, lm.UnmarshalBinary(buf.Bytes()))

	// Bound below one.
	buf.Reset()
	require.NoError(t, gob.NewEncoder(&buf).Encode(0))
	var lru LRUMap[string, int]
	assert.Error(t, lru.UnmarshalBinary(buf.Bytes()))

	// Truncated pair data.
	full := NewLRUMap[string, int](2)
	full.Put("a", 1)
	data, err := full.MarshalBinary()
	require.NoError(t, err)
	var trunc LRUMap[string, int]
	assert.Error(t, trunc.UnmarshalBinary(data[:len(data)-2]))
}
