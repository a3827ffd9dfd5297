package jsonschema

import (
	"reflect"
	"strings"
	"testing"
)

func Test_KeyOrder_SourceOrder_NotAlphabetical(t *testing.T) {
	src := `{"zebra": 1, "apple": 2, "middle": 3, "banana": 4}`
	want := []string{"zebra", "apple", "middle", "banana"}
	if got := ExtractKeyOrder([]byte(src)); !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractKeyOrder = %v; want %v", got, want)
	}
}

func Test_KeyOrder_EmptyObject_IsEmptyNotNil(t *testing.T) {
	got := ExtractKeyOrder([]byte(`{}`))
	if got == nil || len(got) != 0 {
		t.Fatalf("empty object must yield an empty non-nil slice, got %#v", got)
	}
	got = ExtractKeyOrder([]byte(` { } `))
	if got == nil || len(got) != 0 {
		t.Fatalf("whitespace around an empty object must not matter, got %#v", got)
	}
}

func Test_KeyOrder_Failures_AreNil(t *testing.T) {
	cases := []struct {
		name string
		src  string
		path []string
	}{
		{"invalid JSON", `{"a": }`, nil},
		{"truncated", `{"a": 1`, nil},
		{"array root", `[1, 2, 3]`, nil},
		{"scalar root", `42`, nil},
		{"missing segment", `{"a": {"b": 1}}`, []string{"x"}},
		{"segment hits a scalar", `{"a": 1}`, []string{"a"}},
		{"segment hits an array", `{"a": [1, 2]}`, []string{"a"}},
	}
	for _, c := range cases {
		if got := ExtractKeyOrder([]byte(c.src), c.path...); got != nil {
			t.Fatalf("%s: want nil, got %v", c.name, got)
		}
	}
}

func Test_KeyOrder_KeyPath_Walk(t *testing.T) {
	src := `{
		"outer": {
			"inner": {"z": 1, "a": 2},
			"other": {"q": 3}
		},
		"inner": {"decoy": 0}
	}`
	want := []string{"z", "a"}
	if got := ExtractKeyOrder([]byte(src), "outer", "inner"); !reflect.DeepEqual(got, want) {
		t.Fatalf("keypath walk = %v; want %v", got, want)
	}
}

func Test_KeyOrder_NestedSameName_IsSkipped(t *testing.T) {
	// A "properties" object buried inside another member must not shadow
	// the top-level one.
	src := `{
		"first": {"properties": {"wrong": true}},
		"properties": {"right": true}
	}`
	want := []string{"right"}
	if got := ExtractKeyOrder([]byte(src), "properties"); !reflect.DeepEqual(got, want) {
		t.Fatalf("nested same-named member leaked: %v", got)
	}
}

func Test_KeyOrder_EscapedKeys_AreUnescaped(t *testing.T) {
	src := `{"plain": 1, "quo\"te": 2, "back\\slash": 3}`
	want := []string{"plain", `quo"te`, `back\slash`}
	if got := ExtractKeyOrder([]byte(src)); !reflect.DeepEqual(got, want) {
		t.Fatalf("escaped keys = %v; want %v", got, want)
	}
}

func Test_KeyOrder_BracesInsideStrings_DontConfuseDepth(t *testing.T) {
	src := `{"a": "{not a brace}", "b": ["}", "{"], "c": {"d": "]}"}}`
	want := []string{"a", "b", "c"}
	if got := ExtractKeyOrder([]byte(src)); !reflect.DeepEqual(got, want) {
		t.Fatalf("string contents leaked into depth tracking: %v", got)
	}
}

func Test_KeyOrder_Duplicates_PassThrough(t *testing.T) {
	src := `{"a": 1, "b": 2, "a": 3}`
	want := []string{"a", "b", "a"}
	if got := ExtractKeyOrder([]byte(src)); !reflect.DeepEqual(got, want) {
		t.Fatalf("duplicate keys = %v; want %v", got, want)
	}
}

func Test_KeyOrder_SchemaPropertyOrder(t *testing.T) {
	src := `{
		"type": "object",
		"properties": {
			"zebra": {"type": "string"},
			"apple": {"type": "object", "properties": {"nested": {}}},
			"banana": {"type": "integer"}
		}
	}`
	want := []string{"zebra", "apple", "banana"}
	if got := SchemaPropertyOrder([]byte(src)); !reflect.DeepEqual(got, want) {
		t.Fatalf("SchemaPropertyOrder = %v; want %v", got, want)
	}

	if got := SchemaPropertyOrder([]byte(`{"type": "string"}`)); got != nil {
		t.Fatalf("no properties member must yield nil, got %v", got)
	}
	if got := SchemaPropertyOrder([]byte(`true`)); got != nil {
		t.Fatalf("boolean schema must yield nil, got %v", got)
	}
}

func Test_KeyOrder_DeepNesting(t *testing.T) {
	// 200 levels of wrapping; the scanner tracks depth with a counter, not
	// recursion, so this must stay cheap.
	depth := 200
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString(`{"w": `)
	}
	b.WriteString(`{"z": 1, "a": 2}`)
	for i := 0; i < depth; i++ {
		b.WriteString(`}`)
	}
	path := make([]string, depth)
	for i := range path {
		path[i] = "w"
	}
	want := []string{"z", "a"}
	if got := ExtractKeyOrder([]byte(b.String()), path...); !reflect.DeepEqual(got, want) {
		t.Fatalf("deep walk = %v; want %v", got, want)
	}
}
