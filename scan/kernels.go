package scan

import (
	"encoding/binary"

	"github.com/mhr3/sift/internal/swar"
)

// Kernel widths in bytes.
const (
	width8  = 8
	width16 = 16
	width32 = 32
)

// laneTerm is one interval compiled for the word kernels: both bounds
// splatted across the lanes, with single-byte intervals flagged for the
// cheaper equality path.
type laneTerm struct {
	lo, hi uint64
	eq     bool
}

// laneProg is a condition compiled for the word kernels. Operations build
// it on the stack once per call, hoisting the splats out of the chunk loop.
type laneProg struct {
	n int
	t [maxTerms]laneTerm
}

func compile(c *Cond) laneProg {
	var p laneProg
	p.n = int(c.n)
	for i := 0; i < p.n; i++ {
		t := c.terms[i]
		p.t[i] = laneTerm{
			lo: swar.Splat(t.lo),
			hi: swar.Splat(t.hi),
			eq: t.lo == t.hi,
		}
	}
	return p
}

// condLanes marks the lanes of w satisfying at least one compiled term.
func condLanes(w uint64, p *laneProg) uint64 {
	var m uint64
	for i := 0; i < p.n; i++ {
		t := &p.t[i]
		if t.eq {
			m |= swar.EqLanes(w, t.lo)
		} else {
			m |= swar.RangeLanes(w, t.lo, t.hi)
		}
	}
	return m
}

// mask8 evaluates the compiled condition over data[:8].
func mask8(data []byte, p *laneProg) Mask {
	assert(len(data) >= width8, "chunk shorter than kernel width")
	w := binary.LittleEndian.Uint64(data)
	return Mask(swar.MoveMask(condLanes(w, p)))
}

// mask16 evaluates the compiled condition over data[:16].
func mask16(data []byte, p *laneProg) Mask {
	assert(len(data) >= width16, "chunk shorter than kernel width")
	w0 := binary.LittleEndian.Uint64(data)
	w1 := binary.LittleEndian.Uint64(data[8:])
	l0 := condLanes(w0, p)
	l1 := condLanes(w1, p)
	if l0|l1 == 0 {
		return 0
	}
	return Mask(swar.MoveMask(l0) | swar.MoveMask(l1)<<8)
}

// mask32 evaluates the compiled condition over data[:32].
func mask32(data []byte, p *laneProg) Mask {
	assert(len(data) >= width32, "chunk shorter than kernel width")
	w0 := binary.LittleEndian.Uint64(data)
	w1 := binary.LittleEndian.Uint64(data[8:])
	w2 := binary.LittleEndian.Uint64(data[16:])
	w3 := binary.LittleEndian.Uint64(data[24:])
	l0 := condLanes(w0, p)
	l1 := condLanes(w1, p)
	l2 := condLanes(w2, p)
	l3 := condLanes(w3, p)
	if l0|l1|l2|l3 == 0 {
		return 0
	}
	return Mask(swar.MoveMask(l0) | swar.MoveMask(l1)<<8 |
		swar.MoveMask(l2)<<16 | swar.MoveMask(l3)<<24)
}
