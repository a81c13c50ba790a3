package stringsx

import "testing"

func TestStrSplit(t *testing.T) {
	s := NewStr("a,b,c")
	parts := s.Get().Split(NewStr(","))

	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}

	if parts[1].Get().String() != "b" {
		t.Fatalf("expected second part %q, got %q", "b", parts[1].Get().String())
	}
}

func TestStrSubstring(t *testing.T) {
	s := NewStr("hello world")
	if got := s.Get().Substring(0, 5).Get().String(); got != "hello" {
		t.Fatalf("expected %q, got %q", "hello", got)
	}
}

func TestStrAdd(t *testing.T) {
	a := NewStr("foo")
	b := NewStr("bar")

	if got := a.Get().Add(b).Get().String(); got != "foobar" {
		t.Fatalf("expected %q, got %q", "foobar", got)
	}
}

func TestStrClassification(t *testing.T) {
	cases := []struct {
		in                          string
		isInt, isFloat, isAlpha, isAlNum bool
	}{
		{"123", true, true, false, true},
		{"1.5", false, true, false, false},
		{"abc", false, false, true, true},
		{"ab3", false, false, false, true},
		{"a b", false, false, false, false},
	}

	for _, c := range cases {
		s := NewStr(c.in).Get()

		if got := s.IsInt(); got != c.isInt {
			t.Errorf("%q.IsInt() = %v, want %v", c.in, got, c.isInt)
		}

		if got := s.IsFloat(); got != c.isFloat {
			t.Errorf("%q.IsFloat() = %v, want %v", c.in, got, c.isFloat)
		}

		if got := s.IsAlpha(); got != c.isAlpha {
			t.Errorf("%q.IsAlpha() = %v, want %v", c.in, got, c.isAlpha)
		}

		if got := s.IsAlNum(); got != c.isAlNum {
			t.Errorf("%q.IsAlNum() = %v, want %v", c.in, got, c.isAlNum)
		}
	}
}

func TestStrEqual(t *testing.T) {
	a := NewStr("same")
	b := NewStr("same")

	if !a.Get().Equal(b) {
		t.Fatal("expected equal strings to compare equal by value")
	}
}

func TestParseIntAndFloat(t *testing.T) {
	i, err := ParseInt(NewStr("42"))
	if err != nil || i != 42 {
		t.Fatalf("ParseInt(42) = %d, %v", i, err)
	}

	f, err := ParseFloat(NewStr("3.5"))
	if err != nil || f != 3.5 {
		t.Fatalf("ParseFloat(3.5) = %v, %v", f, err)
	}
}
