package jsonschema

import (
	"testing"
)

func Test_Convert_AsBool(t *testing.T) {
	cases := []struct {
		in     Value
		strict bool
		want   bool
		ok     bool
	}{
		{Bool(true), true, true, true},
		{Bool(false), true, false, true},
		{Int(1), true, false, false},
		{Int(1), false, true, true},
		{Int(0), false, false, true},
		{Int(2), false, false, false},
		{Num(1.0), false, true, true},
		{Num(0.0), false, false, true},
		{Num(0.5), false, false, false},
		{Str("yes"), false, true, true},
		{Str("y"), false, true, true},
		{Str("on"), false, true, true},
		{Str("t"), false, true, true},
		{Str("1"), false, true, true},
		{Str("off"), false, false, true},
		{Str("no"), false, false, true},
		{Str("0"), false, false, true},
		{Str("YES"), false, false, false}, // tokens are case-sensitive
		{Str("true"), true, false, false},
		{Null, false, false, false},
		{Arr(Bool(true)), false, false, false},
	}
	for _, c := range cases {
		got, ok := c.in.AsBool(c.strict)
		if ok != c.ok || got != c.want {
			t.Fatalf("AsBool(%v, strict=%v) = (%v,%v); want (%v,%v)", c.in, c.strict, got, ok, c.want, c.ok)
		}
	}
}

func Test_Convert_AsInt(t *testing.T) {
	cases := []struct {
		in     Value
		strict bool
		want   int64
		ok     bool
	}{
		{Int(7), true, 7, true},
		{Num(42.0), true, 0, false},
		{Num(42.0), false, 42, true},
		{Num(42.5), false, 0, false}, // non-exact never converts
		{Str("42"), false, 42, true},
		{Str("42"), true, 0, false},
		{Str("42.0"), false, 0, false}, // base-10 integers only
		{Str("x"), false, 0, false},
		{Bool(true), false, 0, false},
		{Null, false, 0, false},
	}
	for _, c := range cases {
		got, ok := c.in.AsInt(c.strict)
		if ok != c.ok || got != c.want {
			t.Fatalf("AsInt(%v, strict=%v) = (%v,%v); want (%v,%v)", c.in, c.strict, got, ok, c.want, c.ok)
		}
	}
}

func Test_Convert_AsNum(t *testing.T) {
	cases := []struct {
		in     Value
		strict bool
		want   float64
		ok     bool
	}{
		{Num(2.5), true, 2.5, true},
		{Int(7), true, 7.0, true}, // int is always convertible
		{Str("2.5"), true, 0, false},
		{Str("2.5"), false, 2.5, true},
		{Str("1e3"), false, 1000, true},
		{Str("x"), false, 0, false},
		{Bool(true), false, 0, false},
	}
	for _, c := range cases {
		got, ok := c.in.AsNum(c.strict)
		if ok != c.ok || got != c.want {
			t.Fatalf("AsNum(%v, strict=%v) = (%v,%v); want (%v,%v)", c.in, c.strict, got, ok, c.want, c.ok)
		}
	}
}

func Test_Convert_AsStr(t *testing.T) {
	cases := []struct {
		in     Value
		strict bool
		want   string
		ok     bool
	}{
		{Str("hi"), true, "hi", true},
		{Int(42), true, "", false},
		{Int(42), false, "42", true},
		{Num(2.5), false, "2.5", true},
		{Bool(true), false, "true", true},
		{Bool(false), false, "false", true},
		{Null, false, "", false},
		{Arr(), false, "", false},
	}
	for _, c := range cases {
		got, ok := c.in.AsStr(c.strict)
		if ok != c.ok || got != c.want {
			t.Fatalf("AsStr(%v, strict=%v) = (%q,%v); want (%q,%v)", c.in, c.strict, got, ok, c.want, c.ok)
		}
	}
}
