// Package scan searches and validates byte slices against byte conditions.
//
// A Cond describes which byte values are acceptable: an exact byte (Eq), an
// inclusive interval (Range), or any-of a list (AnyOf, In). Conditions are
// small immutable values; the operations compile them into word-parallel
// kernels on the stack and never allocate.
//
// Scanning walks whole chunks of the active kernel width and hands the
// remaining tail bytes to Cond.Match one at a time, so no load ever reads
// past the end of the input. Inputs shorter than one chunk never touch the
// vector path at all. The kernel width is picked once at startup from the
// CPU's capabilities; see Strategy.
package scan

// Index returns the index of the first byte of data satisfying c, or -1 if
// no byte does. The empty input has no first byte: Index(nil, c) is -1.
func Index(data []byte, c Cond) int {
	if len(data) < activeWidth {
		return indexScalar(data, 0, &c)
	}
	p := compile(&c)
	switch activeStrategy {
	case StrategySWAR32:
		return index32(data, &p, &c)
	case StrategySWAR16:
		return index16(data, &p, &c)
	default:
		return index8(data, &p, &c)
	}
}

// MustIndex is like Index but panics when no byte matches. Use it where a
// match is a precondition and absence means the caller passed bad data.
func MustIndex(data []byte, c Cond) int {
	i := Index(data, c)
	if i < 0 {
		panic("no byte matched the condition")
	}
	return i
}

// IndexMismatch returns the index of the first byte of data that does NOT
// satisfy c, or -1 when every byte does. IndexMismatch(nil, c) is -1.
func IndexMismatch(data []byte, c Cond) int {
	if len(data) < activeWidth {
		return mismatchScalar(data, 0, &c)
	}
	p := compile(&c)
	switch activeStrategy {
	case StrategySWAR32:
		return mismatch32(data, &p, &c)
	case StrategySWAR16:
		return mismatch16(data, &p, &c)
	default:
		return mismatch8(data, &p, &c)
	}
}

// All reports whether every byte of data satisfies c. The empty input is
// vacuously true. The scan stops at the first chunk with a violation.
func All(data []byte, c Cond) bool {
	return IndexMismatch(data, c) < 0
}

// AllConstantTime reports the same result as All but always scans the
// whole input, folding the verdict without a data-dependent early exit.
// Best effort: it removes the obvious timing channel, it does not promise
// secret-independent execution.
func AllConstantTime(data []byte, c Cond) bool {
	ok := true
	i := 0
	if len(data) >= activeWidth {
		p := compile(&c)
		switch activeStrategy {
		case StrategySWAR32:
			ok, i = allCT32(data, &p)
		case StrategySWAR16:
			ok, i = allCT16(data, &p)
		default:
			ok, i = allCT8(data, &p)
		}
	}
	miss := 0
	for ; i < len(data); i++ {
		if !c.Match(data[i]) {
			miss++
		}
	}
	return ok && miss == 0
}

// Count returns the number of bytes of data satisfying c.
func Count(data []byte, c Cond) int {
	n := 0
	i := 0
	if len(data) >= activeWidth {
		p := compile(&c)
		switch activeStrategy {
		case StrategySWAR32:
			n, i = count32(data, &p)
		case StrategySWAR16:
			n, i = count16(data, &p)
		default:
			n, i = count8(data, &p)
		}
	}
	for ; i < len(data); i++ {
		if c.Match(data[i]) {
			n++
		}
	}
	return n
}

// Bitmap writes the matches of data under c into out as one bit per byte:
// bit i%64 of word out[i/64] is set iff data[i] satisfies c. out must hold
// at least (len(data)+63)/64 words; Bitmap panics otherwise. The covered
// words are fully overwritten, including the bits past the end of data;
// words beyond the coverage are left alone.
func Bitmap(data []byte, c Cond, out []uint64) {
	words := (len(data) + 63) / 64
	if len(out) < words {
		panic("bitmap buffer too small for input")
	}
	for i := range out[:words] {
		out[i] = 0
	}
	i := 0
	if len(data) >= activeWidth {
		p := compile(&c)
		switch activeStrategy {
		case StrategySWAR32:
			i = bitmap32(data, &p, out)
		case StrategySWAR16:
			i = bitmap16(data, &p, out)
		default:
			i = bitmap8(data, &p, out)
		}
	}
	for ; i < len(data); i++ {
		if c.Match(data[i]) {
			out[i>>6] |= 1 << (i & 63)
		}
	}
}

// Scalar loops. These finish what the chunk loops started and carry whole
// inputs under StrategyScalar or below one chunk in length.

func indexScalar(data []byte, i int, c *Cond) int {
	for ; i < len(data); i++ {
		if c.Match(data[i]) {
			return i
		}
	}
	return -1
}

func mismatchScalar(data []byte, i int, c *Cond) int {
	for ; i < len(data); i++ {
		if !c.Match(data[i]) {
			return i
		}
	}
	return -1
}

// Chunk loops, one set per kernel width. Each walks whole chunks and
// delegates its tail to the scalar loops above.

func index8(data []byte, p *laneProg, c *Cond) int {
	i := 0
	for ; i+width8 <= len(data); i += width8 {
		if m := mask8(data[i:], p); m != 0 {
			return i + m.FirstMatch()
		}
	}
	return indexScalar(data, i, c)
}

func index16(data []byte, p *laneProg, c *Cond) int {
	i := 0
	for ; i+width16 <= len(data); i += width16 {
		if m := mask16(data[i:], p); m != 0 {
			return i + m.FirstMatch()
		}
	}
	return indexScalar(data, i, c)
}

func index32(data []byte, p *laneProg, c *Cond) int {
	i := 0
	for ; i+width32 <= len(data); i += width32 {
		if m := mask32(data[i:], p); m != 0 {
			return i + m.FirstMatch()
		}
	}
	return indexScalar(data, i, c)
}

func mismatch8(data []byte, p *laneProg, c *Cond) int {
	i := 0
	full := maskAll(width8)
	for ; i+width8 <= len(data); i += width8 {
		if m := mask8(data[i:], p); m != full {
			return i + (^m & full).FirstMatch()
		}
	}
	return mismatchScalar(data, i, c)
}

func mismatch16(data []byte, p *laneProg, c *Cond) int {
	i := 0
	full := maskAll(width16)
	for ; i+width16 <= len(data); i += width16 {
		if m := mask16(data[i:], p); m != full {
			return i + (^m & full).FirstMatch()
		}
	}
	return mismatchScalar(data, i, c)
}

func mismatch32(data []byte, p *laneProg, c *Cond) int {
	i := 0
	full := maskAll(width32)
	for ; i+width32 <= len(data); i += width32 {
		if m := mask32(data[i:], p); m != full {
			return i + (^m & full).FirstMatch()
		}
	}
	return mismatchScalar(data, i, c)
}

func allCT8(data []byte, p *laneProg) (bool, int) {
	acc := maskAll(width8)
	i := 0
	for ; i+width8 <= len(data); i += width8 {
		acc &= mask8(data[i:], p)
	}
	return acc == maskAll(width8), i
}

func allCT16(data []byte, p *laneProg) (bool, int) {
	acc := maskAll(width16)
	i := 0
	for ; i+width16 <= len(data); i += width16 {
		acc &= mask16(data[i:], p)
	}
	return acc == maskAll(width16), i
}

func allCT32(data []byte, p *laneProg) (bool, int) {
	acc := maskAll(width32)
	i := 0
	for ; i+width32 <= len(data); i += width32 {
		acc &= mask32(data[i:], p)
	}
	return acc == maskAll(width32), i
}

func count8(data []byte, p *laneProg) (int, int) {
	n, i := 0, 0
	for ; i+width8 <= len(data); i += width8 {
		n += mask8(data[i:], p).Count()
	}
	return n, i
}

func count16(data []byte, p *laneProg) (int, int) {
	n, i := 0, 0
	for ; i+width16 <= len(data); i += width16 {
		n += mask16(data[i:], p).Count()
	}
	return n, i
}

func count32(data []byte, p *laneProg) (int, int) {
	n, i := 0, 0
	for ; i+width32 <= len(data); i += width32 {
		n += mask32(data[i:], p).Count()
	}
	return n, i
}

func bitmap8(data []byte, p *laneProg, out []uint64) int {
	i := 0
	for ; i+width8 <= len(data); i += width8 {
		out[i>>6] |= uint64(mask8(data[i:], p)) << (i & 63)
	}
	return i
}

func bitmap16(data []byte, p *laneProg, out []uint64) int {
	i := 0
	for ; i+width16 <= len(data); i += width16 {
		out[i>>6] |= uint64(mask16(data[i:], p)) << (i & 63)
	}
	return i
}

func bitmap32(data []byte, p *laneProg, out []uint64) int {
	i := 0
	for ; i+width32 <= len(data); i += width32 {
		out[i>>6] |= uint64(mask32(data[i:], p)) << (i & 63)
	}
	return i
}
