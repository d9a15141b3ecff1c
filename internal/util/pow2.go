package util

import "math/bits"

// IsPowerOfTwo reports whether x is a power of two (> 0).
func IsPowerOfTwo(x uint64) bool {
	return bits.OnesCount64(x) == 1
}

// NextPow2 returns the smallest power of two >= x. Special cases:
//   - x == 0 -> 1
//   - x > 1<<63 -> clamped to 1<<63, the largest 64-bit power of two
//
// Bucket counts are produced through this, so the result is always a valid
// mask-1 candidate.
func NextPow2(x uint64) uint64 {
	if x <= 1 {
		return 1
	}
	if x > 1<<63 {
		return 1 << 63
	}
	return 1 << uint(bits.Len64(x-1))
}
