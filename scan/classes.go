package scan

// Predefined conditions for common byte classes. Each is an ordinary Cond
// and composes with AnyOf like any other.
var (
	// ASCII matches any 7-bit byte.
	ASCII = Range(0, 0x7f)

	// Digit matches '0' through '9'.
	Digit = Range('0', '9')

	// Upper and Lower match ASCII letters of one case.
	Upper = Range('A', 'Z')
	Lower = Range('a', 'z')

	// Alpha matches ASCII letters; Alnum adds digits.
	Alpha = AnyOf(Upper, Lower)
	Alnum = AnyOf(Digit, Upper, Lower)

	// HexDigit matches 0-9, A-F and a-f.
	HexDigit = AnyOf(Digit, Range('A', 'F'), Range('a', 'f'))

	// Space matches ASCII whitespace: '\t' through '\r' plus the space byte.
	Space = AnyOf(Range('\t', '\r'), Eq(' '))

	// Printable matches the visible ASCII characters and space.
	Printable = Range(0x20, 0x7e)
)
