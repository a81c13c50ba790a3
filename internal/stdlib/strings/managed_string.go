package stringsx

import (
	"strconv"
	"strings"

	"github.com/orizon-lang/orizon-rt/internal/rt"
)

// Str is a managed, immutable string value type, the Go stand-in for
// original_source/src/core/ds/string.hpp's $String. It carries no owning
// fields of its own — a leaf in the collector's object graph, exactly the
// role $String plays in array-test.cpp.
type Str struct {
	rt.Base
	s string
}

// apiConstraint pins the range of internal/rt API versions this package was
// written against; rt_strict builds check it at construction (see
// rt.CheckAPICompatible), the default build does not.
const apiConstraint = ">=1.0.0, <2.0.0"

// NewStr constructs a managed Str. Strings are leaves, so MakeNoGC is the
// right constructor here — they can never participate in a cycle — but
// NewStr uses Make so Str can still be stored inside a RefArray without the
// caller having to remember which constructor a given element type wants.
func NewStr(s string) rt.Ref[*Str] {
	rt.CheckAPICompatible(apiConstraint)

	return rt.Make[*Str](&Str{s: s})
}

func (s *Str) String() string { return s.s }

func (s *Str) Length() int { return len(s.s) }

func (s *Str) At(idx int) rt.Ref[*Str] {
	if idx < 0 || idx >= len(s.s) {
		return rt.Ref[*Str]{}
	}

	return NewStr(string(s.s[idx]))
}

// Split mirrors string.hpp's split: every occurrence of sep is a boundary,
// trailing remainder included even if empty.
func (s *Str) Split(sep rt.Ref[*Str]) []rt.Ref[*Str] {
	parts := strings.Split(s.s, sep.Get().s)

	out := make([]rt.Ref[*Str], 0, len(parts))
	for _, p := range parts {
		out = append(out, NewStr(p))
	}

	return out
}

func (s *Str) Substring(start, end int) rt.Ref[*Str] {
	if start < 0 {
		start = 0
	}

	if end > len(s.s) {
		end = len(s.s)
	}

	if start >= end {
		return NewStr("")
	}

	return NewStr(s.s[start:end])
}

func (s *Str) Add(other rt.Ref[*Str]) rt.Ref[*Str] {
	return NewStr(s.s + other.Get().s)
}

func (s *Str) IsInt() bool {
	_, err := strconv.Atoi(s.s)
	return err == nil
}

func (s *Str) IsFloat() bool {
	_, err := strconv.ParseFloat(s.s, 64)
	return err == nil
}

func (s *Str) IsAlpha() bool {
	for _, r := range s.s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}

	return s.s != ""
}

func (s *Str) IsAlNum() bool {
	for _, r := range s.s {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'

		if !alpha && !digit {
			return false
		}
	}

	return s.s != ""
}

func (s *Str) Equal(other rt.Ref[*Str]) bool { return s.s == other.Get().s }

// ParseInt and ParseFloat mirror string.hpp's free parseInt/parseFloat.
func ParseInt(s rt.Ref[*Str]) (int64, error) { return strconv.ParseInt(s.Get().s, 10, 64) }

func ParseFloat(s rt.Ref[*Str]) (float64, error) { return strconv.ParseFloat(s.Get().s, 64) }
