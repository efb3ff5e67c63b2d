package scan

import "math/bits"

// Mask is the canonical per-chunk match result: bit i is set iff the
// chunk's i-th byte satisfied the condition. Bit 0 is the chunk's first
// byte. Every kernel normalizes its native lane markers into this shape
// before the scan loops consume it, so the loops never see a
// backend-specific representation.
type Mask uint64

// maskAll returns the mask with the low width bits set.
func maskAll(width int) Mask {
	if width >= 64 {
		return ^Mask(0)
	}
	return Mask(1)<<uint(width) - 1
}

// FirstMatch returns the index of the lowest set lane. The caller ensures
// the mask is nonzero.
func (m Mask) FirstMatch() int {
	assert(m != 0, "FirstMatch on zero mask")
	return bits.TrailingZeros64(uint64(m))
}

// Count returns the number of set lanes.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}
