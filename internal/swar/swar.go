// Package swar implements byte-lane predicates on 64-bit words.
//
// A uint64 holds eight byte lanes, lane 0 in the least-significant byte.
// Predicates mark matching lanes by setting the lane's top bit (0x80);
// MoveMask compresses those markers into one bit per lane, lane i to bit i.
// Every predicate is exact per lane: no carry or borrow ever leaks a marker
// into a lane whose byte did not satisfy the predicate.
package swar

const (
	// LaneLSB has the lowest bit of every lane set.
	LaneLSB = 0x0101010101010101
	// Lane7F has the low seven bits of every lane set.
	Lane7F = 0x7f7f7f7f7f7f7f7f
	// LaneMSB has the top bit of every lane set.
	LaneMSB = 0x8080808080808080
)

// Splat broadcasts b into all eight lanes.
func Splat(b byte) uint64 {
	return uint64(b) * LaneLSB
}

// ZeroLanes marks every all-zero lane of v.
//
// The textbook haszero trick ((v-LaneLSB) &^ v & LaneMSB) is only reliable
// for its lowest marker: the subtraction borrows across lanes above the
// first zero and can mark nonzero lanes. The add-based form below stays
// within each lane ((v&Lane7F)+Lane7F peaks at 0xfe), so all markers are
// exact. See https://graphics.stanford.edu/~seander/bithacks.html#ZeroInWord
func ZeroLanes(v uint64) uint64 {
	t := (v & Lane7F) + Lane7F
	return ^(t | v) & LaneMSB
}

// EqLanes marks the lanes of w equal to the splatted byte s.
func EqLanes(w, s uint64) uint64 {
	return ZeroLanes(w ^ s)
}

// GeLanes marks the lanes where w's byte is >= s's byte, unsigned.
//
// Split on the top bits: a lane wins outright when its top bit is set and
// s's is clear, loses outright in the opposite case, and otherwise the low
// seven bits decide. Those are compared by (w|LaneMSB) - (s&Lane7F), which
// keeps every lane in [0x01, 0xff] so no borrow crosses lanes.
func GeLanes(w, s uint64) uint64 {
	gt := w &^ s
	eq := ^(w ^ s)
	low := (w | LaneMSB) - (s & Lane7F)
	return (gt | (eq & low)) & LaneMSB
}

// RangeLanes marks the lanes of w within [lo, hi], both splatted, both ends
// inclusive, unsigned.
func RangeLanes(w, lo, hi uint64) uint64 {
	return GeLanes(w, lo) & GeLanes(hi, w)
}

// MoveMask compresses 0x80 lane markers into the low eight bits, lane i to
// bit i. The multiplier routes each marker to a distinct bit of the top
// byte, so the products cannot carry into each other.
func MoveMask(m uint64) uint64 {
	return (m * 0x0002040810204081) >> 56
}
