package jsonschema

import (
	"reflect"
	"testing"
)

func i64(v int64) *int64       { return &v }
func f64(v float64) *float64   { return &v }
func bptr(v bool) *bool        { return &v }
func fmtPtr(f StringFormat) *StringFormat { return &f }

func Test_Schema_Builders_PropertyOrder(t *testing.T) {
	n := NewObjectNode().
		Prop("zebra", StringSchema(nil)).
		Prop("apple", IntegerSchema(nil)).
		Prop("middle", BooleanSchema(nil)).
		Prop("banana", NumberSchema(nil)).
		Require("zebra", "apple")

	want := []string{"zebra", "apple", "middle", "banana"}
	if got := n.PropertyNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("PropertyNames = %v; want %v", got, want)
	}
	if !reflect.DeepEqual(n.Required, []string{"zebra", "apple"}) {
		t.Fatalf("Required = %v", n.Required)
	}

	// Re-setting an existing key keeps its original position.
	n.Prop("apple", StringSchema(nil))
	if got := n.PropertyNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("replacing a property must not move it: %v", got)
	}
}

func Test_Schema_Kind_Accessors(t *testing.T) {
	s := ObjectSchema(nil)
	if _, ok := s.ObjectNode(); !ok {
		t.Fatalf("ObjectNode accessor failed")
	}
	if _, ok := s.ArrayNode(); ok {
		t.Fatalf("object schema must not read as array")
	}

	ref := Ref("#/$defs/user")
	if target, ok := ref.Ref(); !ok || target != "#/$defs/user" {
		t.Fatalf("Ref accessor mismatch: %q %v", target, ok)
	}

	union := AnyOf(StringSchema(nil), NullSchema())
	list, ok := union.Subschemas()
	if !ok || len(list) != 2 {
		t.Fatalf("Subschemas mismatch")
	}

	neg := Not(StringSchema(nil))
	inner, ok := neg.NotSchema()
	if !ok || inner.Kind != KString {
		t.Fatalf("NotSchema mismatch")
	}
}

func Test_Schema_IsNever(t *testing.T) {
	if !NeverSchema().IsNever() {
		t.Fatalf("NeverSchema must be Not(Any)")
	}
	if AnySchema().IsNever() || Not(StringSchema(nil)).IsNever() {
		t.Fatalf("IsNever false positives")
	}
}

func Test_Schema_AdditionalProperties_Union(t *testing.T) {
	b := AllowAdditional(false)
	if allow, ok := b.Bool(); !ok || allow {
		t.Fatalf("boolean case mismatch")
	}
	if _, ok := b.Schema(); ok {
		t.Fatalf("boolean case must not expose a schema")
	}

	s := AdditionalSchema(StringSchema(nil))
	if _, ok := s.Bool(); ok {
		t.Fatalf("schema case must not expose a bool")
	}
	if sub, ok := s.Schema(); !ok || sub.Kind != KString {
		t.Fatalf("schema case mismatch")
	}
}

func Test_Schema_Equal_PropertiesIgnoreOrder(t *testing.T) {
	a := ObjectSchema(NewObjectNode().
		Prop("x", StringSchema(nil)).
		Prop("y", IntegerSchema(nil)))
	b := ObjectSchema(NewObjectNode().
		Prop("y", IntegerSchema(nil)).
		Prop("x", StringSchema(nil)))
	if !a.Equal(b) {
		t.Fatalf("property order must not affect schema equality")
	}

	c := ObjectSchema(NewObjectNode().
		Prop("x", StringSchema(nil)).
		Prop("y", StringSchema(nil)))
	if a.Equal(c) {
		t.Fatalf("different property schemas must differ")
	}
}

func Test_Schema_Equal_ListForms_RequireOrder(t *testing.T) {
	a := OneOf(StringSchema(nil), NullSchema())
	b := OneOf(NullSchema(), StringSchema(nil))
	if a.Equal(b) {
		t.Fatalf("composite member order is preserved and significant for Equal")
	}
	if !a.Equal(OneOf(StringSchema(nil), NullSchema())) {
		t.Fatalf("identical composites must be equal")
	}
	if a.Equal(AnyOf(StringSchema(nil), NullSchema())) {
		t.Fatalf("oneOf and anyOf are distinct kinds")
	}
}

func Test_Schema_Equal_ConstraintFields(t *testing.T) {
	mk := func() Schema {
		return StringSchema(&StringNode{
			Meta:      Meta{Title: "name", Default: &Value{Tag: VStr, Data: "x"}},
			MinLength: i64(1),
			MaxLength: i64(10),
			Pattern:   "^[a-z]+$",
			Format:    fmtPtr(FormatEmail),
		})
	}
	if !mk().Equal(mk()) {
		t.Fatalf("identical string schemas must be equal")
	}

	other := mk()
	other.Node.(*StringNode).MaxLength = i64(11)
	if mk().Equal(other) {
		t.Fatalf("differing constraint must break equality")
	}

	num := NumberSchema(&NumberNode{Minimum: f64(0), MultipleOf: f64(0.5)})
	if num.Equal(NumberSchema(&NumberNode{Minimum: f64(0)})) {
		t.Fatalf("missing multipleOf must break equality")
	}

	arr := ArraySchema(&ArrayNode{MinItems: i64(1), UniqueItems: bptr(true)})
	if !arr.Equal(ArraySchema(&ArrayNode{MinItems: i64(1), UniqueItems: bptr(true)})) {
		t.Fatalf("identical array schemas must be equal")
	}
}

func Test_Schema_Equal_MetaValues(t *testing.T) {
	mk := func(def Value) Schema {
		n := &IntegerNode{Meta: Meta{
			Enum:    []Value{Int(1), Int(2)},
			Default: &def,
		}}
		return IntegerSchema(n)
	}
	if !mk(Int(1)).Equal(mk(Int(1))) {
		t.Fatalf("identical metadata must compare equal")
	}
	if mk(Int(1)).Equal(mk(Int(2))) {
		t.Fatalf("different defaults must differ")
	}
}
