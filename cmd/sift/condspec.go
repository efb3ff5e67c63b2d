package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mhr3/sift/scan"
)

var classes = map[string]scan.Cond{
	"ascii": scan.ASCII,
	"digit": scan.Digit,
	"upper": scan.Upper,
	"lower": scan.Lower,
	"alpha": scan.Alpha,
	"alnum": scan.Alnum,
	"hex":   scan.HexDigit,
	"space": scan.Space,
	"print": scan.Printable,
}

// parseCondSpec turns a comma-separated atom list into one condition.
// Malformed input comes back as an error, never a panic; a literal comma
// is spelled 0x2c.
func parseCondSpec(spec string) (cond scan.Cond, err error) {
	// Composing too many atoms trips the condition capacity panic.
	defer func() {
		if recover() != nil {
			cond, err = scan.Cond{}, fmt.Errorf("condition %q has too many atoms", spec)
		}
	}()

	atoms := strings.Split(spec, ",")
	cond, err = parseAtom(atoms[0])
	if err != nil {
		return scan.Cond{}, err
	}
	for _, atom := range atoms[1:] {
		c, err := parseAtom(atom)
		if err != nil {
			return scan.Cond{}, err
		}
		cond = scan.AnyOf(cond, c)
	}
	return cond, nil
}

func parseAtom(atom string) (scan.Cond, error) {
	if c, ok := classes[atom]; ok {
		return c, nil
	}
	if len(atom) == 1 {
		return scan.Eq(atom[0]), nil
	}
	if len(atom) == 3 && atom[1] == '-' {
		lo, hi := atom[0], atom[2]
		if lo > hi {
			return scan.Cond{}, fmt.Errorf("range %q runs backwards", atom)
		}
		return scan.Range(lo, hi), nil
	}
	if strings.HasPrefix(atom, "0x") || strings.HasPrefix(atom, "0X") {
		n, err := strconv.ParseUint(atom[2:], 16, 8)
		if err != nil {
			return scan.Cond{}, fmt.Errorf("bad byte value %q", atom)
		}
		return scan.Eq(byte(n)), nil
	}
	return scan.Cond{}, fmt.Errorf("unrecognized atom %q", atom)
}
