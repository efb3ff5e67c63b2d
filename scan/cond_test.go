package scan

import (
	"testing"
	"unicode"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// matchTable evaluates c.Match for all 256 byte values.
func matchTable(c Cond) (tbl [256]bool) {
	for b := 0; b < 256; b++ {
		tbl[b] = c.Match(byte(b))
	}
	return
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		cond Cond
		want func(b byte) bool
	}{
		{"eq_comma", Eq(','), func(b byte) bool { return b == ',' }},
		{"eq_zero", Eq(0), func(b byte) bool { return b == 0 }},
		{"eq_ff", Eq(0xff), func(b byte) bool { return b == 0xff }},
		{"range_digits", Range('0', '9'), func(b byte) bool { return b >= '0' && b <= '9' }},
		{"range_full", Range(0, 0xff), func(b byte) bool { return true }},
		{"range_high", Range(0x80, 0xff), func(b byte) bool { return b >= 0x80 }},
		{"range_single", Range('x', 'x'), func(b byte) bool { return b == 'x' }},
		{"at_most", AtMost(0x1f), func(b byte) bool { return b <= 0x1f }},
		{"at_least", AtLeast(0xf0), func(b byte) bool { return b >= 0xf0 }},
		{"any_of", AnyOf(Range('A', 'Z'), Range('a', 'z'), Range('0', '9'), Eq(' ')),
			func(b byte) bool {
				return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == ' '
			}},
		{"in_separators", In(",;|"), func(b byte) bool { return b == ',' || b == ';' || b == '|' }},
		{"in_bytes", In([]byte{0x00, 0x7f, 0x80}), func(b byte) bool { return b == 0 || b == 0x7f || b == 0x80 }},
		{"zero_value", Cond{}, func(b byte) bool { return false }},
	}

	for _, tt := range tests {
		for b := 0; b < 256; b++ {
			if got, want := tt.cond.Match(byte(b)), tt.want(byte(b)); got != want {
				t.Errorf("%s: Match(%#02x) = %v, want %v", tt.name, b, got, want)
			}
		}
	}
}

func TestConstructionContracts(t *testing.T) {
	mustPanic(t, "Range(9, 3)", func() { Range(9, 3) })
	mustPanic(t, "Range(1, 0)", func() { Range(1, 0) })
	mustPanic(t, "AnyOf()", func() { AnyOf() })
	mustPanic(t, "In(\"\")", func() { In("") })
	mustPanic(t, "In(nil)", func() { In([]byte(nil)) })

	// One term over capacity.
	mustPanic(t, "17 terms", func() {
		c := Eq(0)
		for i := 1; i <= maxTerms; i++ {
			c = AnyOf(c, Eq(byte(i)))
		}
	})

	// Exactly at capacity is fine.
	c := Eq(0)
	for i := 1; i < maxTerms; i++ {
		c = AnyOf(c, Eq(byte(i)))
	}
	if int(c.n) != maxTerms {
		t.Errorf("capacity condition has %d terms, want %d", c.n, maxTerms)
	}
	for b := 0; b < 256; b++ {
		if got, want := c.Match(byte(b)), b < maxTerms; got != want {
			t.Errorf("capacity condition: Match(%#02x) = %v, want %v", b, got, want)
		}
	}
}

func TestAnyOfFlattens(t *testing.T) {
	a, b, c := Eq('a'), Range('0', '9'), Eq('z')

	nested := AnyOf(AnyOf(a, b), c)
	flat := AnyOf(a, b, c)
	if nested.n != flat.n {
		t.Fatalf("nested AnyOf has %d terms, flat has %d", nested.n, flat.n)
	}
	if int(nested.n) != 3 {
		t.Fatalf("AnyOf of three primitives has %d terms, want 3", nested.n)
	}
	if matchTable(nested) != matchTable(flat) {
		t.Error("nested and flat AnyOf disagree")
	}

	single := AnyOf(b)
	if matchTable(single) != matchTable(b) {
		t.Error("AnyOf of one condition changed its meaning")
	}
}

func TestClasses(t *testing.T) {
	tests := []struct {
		name string
		cond Cond
		want func(b byte) bool
	}{
		{"ASCII", ASCII, func(b byte) bool { return b < 0x80 }},
		{"Digit", Digit, func(b byte) bool { return b >= '0' && b <= '9' }},
		{"Upper", Upper, func(b byte) bool { return b >= 'A' && b <= 'Z' }},
		{"Lower", Lower, func(b byte) bool { return b >= 'a' && b <= 'z' }},
		{"Printable", Printable, func(b byte) bool { return b >= 0x20 && b < 0x7f }},
		{"Alpha", Alpha, func(b byte) bool {
			return b < 0x80 && unicode.IsLetter(rune(b))
		}},
		{"Alnum", Alnum, func(b byte) bool {
			return b < 0x80 && (unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b)))
		}},
		{"HexDigit", HexDigit, func(b byte) bool {
			return b >= '0' && b <= '9' || b >= 'A' && b <= 'F' || b >= 'a' && b <= 'f'
		}},
		{"Space", Space, func(b byte) bool {
			return b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r'
		}},
	}

	for _, tt := range tests {
		for b := 0; b < 256; b++ {
			if got, want := tt.cond.Match(byte(b)), tt.want(byte(b)); got != want {
				t.Errorf("%s.Match(%#02x) = %v, want %v", tt.name, b, got, want)
			}
		}
	}
}

func TestCondString(t *testing.T) {
	tests := []struct {
		cond Cond
		want string
	}{
		{Eq(','), "','"},
		{Eq(0), "0x00"},
		{Eq(' '), "0x20"},
		{Range('a', 'z'), "'a'-'z'"},
		{Range(0, 0x1f), "0x00-0x1f"},
		{AnyOf(Digit, Eq('_')), "'0'-'9'|'_'"},
		{Cond{}, "none"},
	}
	for _, tt := range tests {
		if got := tt.cond.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
