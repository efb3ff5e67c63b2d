package scan

import (
	"fmt"
	"strings"
)

// maxTerms bounds the flattened size of a condition. Conditions are plain
// stack values (the engine never allocates), so the term list is a fixed
// array. 16 intervals is four times the widest condition the package's own
// class presets need.
const maxTerms = 16

// term is one inclusive byte interval. Eq(b) is the interval {b, b}.
type term struct {
	lo, hi byte
}

func (t term) matches(b byte) bool {
	return t.lo <= b && b <= t.hi
}

// Cond is a byte predicate: an OR of up to maxTerms inclusive intervals.
// Conditions are immutable values; build one with Eq, Range, AnyOf or In
// and reuse it freely, including from concurrent goroutines. The zero
// value matches no byte.
type Cond struct {
	n     uint8
	terms [maxTerms]term
}

// Eq returns a condition matching exactly b.
func Eq(b byte) Cond {
	var c Cond
	c.n = 1
	c.terms[0] = term{b, b}
	return c
}

// Range returns a condition matching every byte in [lo, hi], both ends
// inclusive. Range panics if lo > hi.
func Range(lo, hi byte) Cond {
	if lo > hi {
		panic("range low exceeds high")
	}
	var c Cond
	c.n = 1
	c.terms[0] = term{lo, hi}
	return c
}

// AtMost returns a condition matching every byte <= hi.
func AtMost(hi byte) Cond { return Range(0, hi) }

// AtLeast returns a condition matching every byte >= lo.
func AtLeast(lo byte) Cond { return Range(lo, 255) }

// AnyOf returns a condition matching bytes that satisfy at least one of
// the given conditions. AnyOf panics when called without arguments, or
// when the combined condition would exceed maxTerms intervals.
//
// Nested AnyOf conditions flatten into a single interval list in
// left-to-right order, so composing adds no evaluation depth and Match
// keeps the original short-circuit order.
func AnyOf(conds ...Cond) Cond {
	if len(conds) == 0 {
		panic("AnyOf requires at least one condition")
	}
	out := conds[0]
	for _, c := range conds[1:] {
		for i := 0; i < int(c.n); i++ {
			out = out.with(c.terms[i])
		}
	}
	return out
}

// In returns a condition matching every byte that appears in set.
// In panics if set is empty.
func In[T string | []byte](set T) Cond {
	if len(set) == 0 {
		panic("In requires at least one byte")
	}
	c := Eq(set[0])
	for i := 1; i < len(set); i++ {
		c = c.with(term{set[i], set[i]})
	}
	return c
}

// with appends one interval, panicking past capacity.
func (c Cond) with(t term) Cond {
	if int(c.n) == maxTerms {
		panic("condition has too many terms")
	}
	c.terms[c.n] = t
	c.n++
	return c
}

// Match reports whether b satisfies the condition, trying each interval in
// order and stopping at the first hit. This is the scalar reference the
// kernels must agree with on every byte value; the scan loops use it for
// tail bytes.
func (c Cond) Match(b byte) bool {
	for i := 0; i < int(c.n); i++ {
		if c.terms[i].matches(b) {
			return true
		}
	}
	return false
}

// String renders the condition's intervals separated by '|'.
func (c Cond) String() string {
	if c.n == 0 {
		return "none"
	}
	var sb strings.Builder
	for i := 0; i < int(c.n); i++ {
		if i > 0 {
			sb.WriteByte('|')
		}
		t := c.terms[i]
		sb.WriteString(fmtByte(t.lo))
		if t.lo != t.hi {
			sb.WriteByte('-')
			sb.WriteString(fmtByte(t.hi))
		}
	}
	return sb.String()
}

func fmtByte(b byte) string {
	if b > 0x20 && b < 0x7f {
		return fmt.Sprintf("'%c'", b)
	}
	return fmt.Sprintf("0x%02x", b)
}
