package jsonschema

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mustDecode decodes or fails the test.
func mustDecode(t *testing.T, src string) Value {
	t.Helper()
	v, err := DecodeValue([]byte(src))
	if err != nil {
		t.Fatalf("DecodeValue(%q) failed: %v", src, err)
	}
	return v
}

func Test_ValueCodec_NumericFidelity(t *testing.T) {
	cases := []struct {
		src  string
		want Value
	}{
		{"42", Int(42)},
		{"-7", Int(-7)},
		{"42.0", Num(42.0)},
		{"42.5", Num(42.5)},
		{"1e3", Num(1000)},
		{"9223372036854775807", Int(9223372036854775807)},
		// One past int64 max: falls through to float.
		{"9223372036854775808", Num(9223372036854775808)},
	}
	for _, c := range cases {
		got := mustDecode(t, c.src)
		if !got.Equal(c.want) {
			t.Fatalf("DecodeValue(%q) = %v; want %v", c.src, got, c.want)
		}
	}
}

func Test_ValueCodec_DecodePriority(t *testing.T) {
	// A JSON boolean is never read as a number or string, and vice versa.
	if v := mustDecode(t, "true"); v.Tag != VBool {
		t.Fatalf("true must decode as bool, got %s", v.Tag)
	}
	if v := mustDecode(t, `"true"`); v.Tag != VStr {
		t.Fatalf("\"true\" must decode as string, got %s", v.Tag)
	}
	if v := mustDecode(t, `"42"`); v.Tag != VStr {
		t.Fatalf("\"42\" must decode as string, got %s", v.Tag)
	}
	if v := mustDecode(t, "null"); !v.IsNull() {
		t.Fatalf("null must decode as Null")
	}
}

func Test_ValueCodec_RoundTrip(t *testing.T) {
	values := []Value{
		Null,
		Bool(true),
		Bool(false),
		Int(0),
		Int(-123456),
		Num(3.25),
		Num(42.0), // integral double must stay a double
		Str(""),
		Str("héllo \"quoted\" \\ line\nbreak"),
		Arr(),
		Arr(Int(1), Num(2.0), Str("three"), Null, Bool(true)),
		Obj(map[string]Value{}),
		Obj(map[string]Value{
			"nested": Obj(map[string]Value{"deep": Arr(Int(1), Obj(map[string]Value{"x": Null}))}),
			"n":      Num(7.0),
			"i":      Int(7),
		}),
	}
	for _, v := range values {
		data, err := EncodeValue(v)
		if err != nil {
			t.Fatalf("EncodeValue(%v) failed: %v", v, err)
		}
		back, err := DecodeValue(data)
		if err != nil {
			t.Fatalf("DecodeValue(%s) failed: %v", data, err)
		}
		if !back.Equal(v) {
			t.Fatalf("round trip mismatch: %v -> %s -> %v", v, data, back)
		}
	}
}

func Test_ValueCodec_IntegralDouble_EmitsFractionalLiteral(t *testing.T) {
	data, err := EncodeValue(Num(42.0))
	if err != nil {
		t.Fatalf("EncodeValue failed: %v", err)
	}
	if string(data) != "42.0" {
		t.Fatalf("Num(42.0) must encode as 42.0, got %s", data)
	}
	data, err = EncodeValue(Int(42))
	if err != nil {
		t.Fatalf("EncodeValue failed: %v", err)
	}
	if string(data) != "42" {
		t.Fatalf("Int(42) must encode as 42, got %s", data)
	}
}

func Test_ValueCodec_InvalidInput_IsDecodeError(t *testing.T) {
	for _, src := range []string{"", "{", `{"a":}`, "tru", `[1,]`} {
		_, err := DecodeValue([]byte(src))
		if err == nil {
			t.Fatalf("DecodeValue(%q) should fail", src)
		}
		if _, ok := err.(*DecodeError); !ok {
			t.Fatalf("DecodeValue(%q) error should be *DecodeError, got %T", src, err)
		}
	}
}

func Test_ValueCodec_NonFinite_IsEncodeError(t *testing.T) {
	_, err := EncodeValue(Num(math.Inf(1)))
	if err == nil {
		t.Fatalf("encoding a non-finite number should fail")
	}
	if _, ok := err.(*EncodeError); !ok {
		t.Fatalf("expected *EncodeError, got %T", err)
	}
}

func Test_ValueCodec_MarshalOptions(t *testing.T) {
	v := Obj(map[string]Value{"b": Int(2), "a": Int(1)})

	sorted, err := MarshalValue(v, MarshalOptions{SortKeys: true})
	if err != nil {
		t.Fatalf("MarshalValue failed: %v", err)
	}
	if string(sorted) != `{"a":1,"b":2}` {
		t.Fatalf("sorted marshal mismatch: %s", sorted)
	}

	pretty, err := MarshalValue(v, MarshalOptions{Indent: "  ", SortKeys: true})
	if err != nil {
		t.Fatalf("MarshalValue failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n") {
		t.Fatalf("pretty marshal should be multi-line: %s", pretty)
	}
	back := mustDecode(t, string(pretty))
	if diff := cmp.Diff(v, back); diff != "" {
		t.Fatalf("pretty output decodes differently (-want +got):\n%s", diff)
	}
}
