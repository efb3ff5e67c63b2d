// Package rules validates byte slices against a set of named requirements.
//
// Each Rule pairs a name with a scan.Cond. A Set accepts data when every
// byte satisfies at least one rule and every rule is satisfied by at least
// one byte. Validation failures carry the offending position or rule name
// and unwrap to the package sentinels for errors.Is dispatch.
package rules

import (
	"errors"
	"fmt"

	"github.com/mhr3/sift/scan"
)

var (
	// ErrForbiddenByte marks errors reporting a byte no rule allows.
	ErrForbiddenByte = errors.New("forbidden byte")
	// ErrUnmetRule marks errors reporting a rule no byte satisfied.
	ErrUnmetRule = errors.New("unmet rule")
)

// Rule names a byte condition the data is allowed, and expected, to use.
type Rule struct {
	Name string
	Cond scan.Cond
}

// New returns a named rule over cond.
func New(name string, cond scan.Cond) Rule {
	return Rule{Name: name, Cond: cond}
}

// ForbiddenByteError reports the first byte satisfying no rule in the set.
type ForbiddenByteError struct {
	Pos  int
	Byte byte
}

func (e *ForbiddenByteError) Error() string {
	return fmt.Sprintf("forbidden byte 0x%02x at position %d", e.Byte, e.Pos)
}

func (e *ForbiddenByteError) Unwrap() error { return ErrForbiddenByte }

// UnmetRuleError reports the first rule, in declaration order, that no byte
// of the data satisfied.
type UnmetRuleError struct {
	Rule string
}

func (e *UnmetRuleError) Error() string {
	return fmt.Sprintf("no byte satisfies rule %q", e.Rule)
}

func (e *UnmetRuleError) Unwrap() error { return ErrUnmetRule }

// Set is an immutable compiled rule list. Build one with NewSet and share
// it freely; validation holds no mutable state.
type Set struct {
	rules []Rule
	any   scan.Cond
}

// NewSet compiles rules into a set, precomputing the disjunction of every
// rule's condition for the allowed-bytes pass. NewSet panics when called
// without rules, and the combined condition shares scan's interval
// capacity, so a set of many wide AnyOf rules can panic the same way
// scan.AnyOf does.
func NewSet(rr ...Rule) *Set {
	if len(rr) == 0 {
		panic("NewSet requires at least one rule")
	}
	conds := make([]scan.Cond, len(rr))
	for i, r := range rr {
		conds[i] = r.Cond
	}
	return &Set{
		rules: append([]Rule(nil), rr...),
		any:   scan.AnyOf(conds...),
	}
}

// Validate checks data against the whole set. It returns nil when every
// byte satisfies some rule and every rule is met somewhere in data; a
// *ForbiddenByteError for the first byte outside all rules; otherwise a
// *UnmetRuleError for the first rule in declaration order that matched
// nothing. Forbidden bytes are reported before unmet rules. Empty data
// leaves every rule unmet.
func (s *Set) Validate(data []byte) error {
	if i := scan.IndexMismatch(data, s.any); i >= 0 {
		return &ForbiddenByteError{Pos: i, Byte: data[i]}
	}
	for _, r := range s.rules {
		if scan.Index(data, r.Cond) < 0 {
			return &UnmetRuleError{Rule: r.Name}
		}
	}
	return nil
}

// Partial checks data as a prefix of a larger input: every byte must
// satisfy some rule, but rules met by no byte are fine since the rest of
// the input may still meet them. Partial(nil) is nil.
func (s *Set) Partial(data []byte) error {
	if i := scan.IndexMismatch(data, s.any); i >= 0 {
		return &ForbiddenByteError{Pos: i, Byte: data[i]}
	}
	return nil
}
