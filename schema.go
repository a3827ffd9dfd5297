// schema.go
//
// JSON Schema data model (draft-2020-12 subset).
//
// Goals / design:
//  1. A closed tagged union mirrors the wire format's split personality:
//     six "type"-discriminated primitive variants (object, array, string,
//     number, integer, boolean), the bare null type, and the special forms
//     reference ($ref), anyOf/allOf/oneOf, not, empty ({}) and any (the
//     boolean `true` schema; Not(Any) plays `false`).
//  2. Each primitive variant owns a plain record of its fields. The shared
//     metadata (title, description, default, examples, enum, const) lives
//     in an embedded Meta so variant structs stay flat.
//  3. Recursive positions (items, not, list members, property values) hold
//     Schema values behind pointers or slices, so nesting depth is
//     unbounded without infinite-size types.
//  4. An object schema's properties are the one mapping in this module
//     where insertion order is semantic (form generators and similar
//     tooling depend on author order), so they live in an ordered map
//     rather than a Go map. Everything else order-insensitive.
//
// This model does not validate instances, resolve $ref targets, or process
// conditional keywords; it is a faithful carrier for construction and the
// codec in schema_json.go.
package jsonschema

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SchemaKind enumerates the schema variants. The kind determines the
// dynamic type of Schema.Node.
type SchemaKind int

const (
	KObject    SchemaKind = iota // *ObjectNode
	KArray                       // *ArrayNode
	KString                      // *StringNode
	KNumber                      // *NumberNode
	KInteger                     // *IntegerNode
	KBoolean                     // *BooleanNode
	KNull                        // no payload
	KReference                   // string ($ref target, never resolved here)
	KAnyOf                       // []Schema
	KAllOf                       // []Schema
	KOneOf                       // []Schema
	KNot                         // *Schema
	KEmpty                       // no payload: the {} schema
	KAny                         // no payload: the `true` schema
)

// String names the kind for debug output and error messages.
func (k SchemaKind) String() string {
	switch k {
	case KObject:
		return "object"
	case KArray:
		return "array"
	case KString:
		return "string"
	case KNumber:
		return "number"
	case KInteger:
		return "integer"
	case KBoolean:
		return "boolean"
	case KNull:
		return "null"
	case KReference:
		return "$ref"
	case KAnyOf:
		return "anyOf"
	case KAllOf:
		return "allOf"
	case KOneOf:
		return "oneOf"
	case KNot:
		return "not"
	case KEmpty:
		return "empty"
	case KAny:
		return "any"
	default:
		return "<invalid>"
	}
}

// Schema is a single JSON Schema node.
//
// Fields:
//   - Kind — discriminant indicating which case is active.
//   - Node — payload appropriate for Kind (see SchemaKind comments).
//
// Children are exclusively owned by their parent; in-memory documents are
// acyclic by construction (cycles only arise through unresolved $ref
// strings, which this package never follows).
type Schema struct {
	Kind SchemaKind
	Node interface{}
}

// Meta carries the metadata keywords shared by every primitive variant.
// Nil/empty fields are "unset" and omitted from encoded documents.
type Meta struct {
	Title       string
	Description string
	Default     *Value
	Examples    []Value
	Enum        []Value
	Const       *Value
}

// Properties is the insertion-ordered property map of an object schema.
type Properties = orderedmap.OrderedMap[string, Schema]

// ObjectNode is the payload of a KObject schema.
type ObjectNode struct {
	Meta
	Properties *Properties
	Required   []string
	Additional *AdditionalProperties
}

// ArrayNode is the payload of a KArray schema.
type ArrayNode struct {
	Meta
	Items       *Schema
	MinItems    *int64
	MaxItems    *int64
	UniqueItems *bool
}

// StringNode is the payload of a KString schema. An empty Pattern means
// unset (the empty regex has no constraining power anyway).
type StringNode struct {
	Meta
	MinLength *int64
	MaxLength *int64
	Pattern   string
	Format    *StringFormat
}

// NumberNode is the payload of a KNumber schema.
type NumberNode struct {
	Meta
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64
}

// IntegerNode is the payload of a KInteger schema: the same five bounds as
// NumberNode, integer-typed.
type IntegerNode struct {
	Meta
	Minimum          *int64
	Maximum          *int64
	ExclusiveMinimum *int64
	ExclusiveMaximum *int64
	MultipleOf       *int64
}

// BooleanNode is the payload of a KBoolean schema: metadata only.
type BooleanNode struct {
	Meta
}

// AdditionalProperties is the two-case union allowed under an object
// schema's "additionalProperties" keyword: a boolean switch or a schema
// that every extra property must match.
type AdditionalProperties struct {
	hasSchema bool
	allow     bool
	schema    Schema
}

// AllowAdditional builds the boolean case.
func AllowAdditional(allow bool) *AdditionalProperties {
	return &AdditionalProperties{allow: allow}
}

// AdditionalSchema builds the schema case.
func AdditionalSchema(s Schema) *AdditionalProperties {
	return &AdditionalProperties{hasSchema: true, schema: s}
}

// Bool returns the boolean case, if active.
func (ap *AdditionalProperties) Bool() (bool, bool) {
	if ap == nil || ap.hasSchema {
		return false, false
	}
	return ap.allow, true
}

// Schema returns the schema case, if active.
func (ap *AdditionalProperties) Schema() (Schema, bool) {
	if ap == nil || !ap.hasSchema {
		return Schema{}, false
	}
	return ap.schema, true
}

func (ap *AdditionalProperties) equal(o *AdditionalProperties) bool {
	if ap == nil || o == nil {
		return ap == o
	}
	if ap.hasSchema != o.hasSchema {
		return false
	}
	if ap.hasSchema {
		return ap.schema.Equal(o.schema)
	}
	return ap.allow == o.allow
}

/* ===========================
   Constructors
   =========================== */

// AnySchema is the accept-everything schema (wire form: `true`).
func AnySchema() Schema { return Schema{Kind: KAny} }

// EmptySchema is the unconstrained `{}` schema. Distinct from AnySchema
// only on the wire; both accept everything.
func EmptySchema() Schema { return Schema{Kind: KEmpty} }

// NullSchema is the `{"type":"null"}` schema.
func NullSchema() Schema { return Schema{Kind: KNull} }

// NeverSchema is the reject-everything schema, canonically Not(Any); it
// round-trips to the wire literal `false`.
func NeverSchema() Schema { return Not(AnySchema()) }

// Ref builds an unresolved reference schema.
func Ref(target string) Schema { return Schema{Kind: KReference, Node: target} }

// AnyOf/AllOf/OneOf build the composite list forms. List order is
// preserved on the wire.
func AnyOf(list ...Schema) Schema { return Schema{Kind: KAnyOf, Node: list} }
func AllOf(list ...Schema) Schema { return Schema{Kind: KAllOf, Node: list} }
func OneOf(list ...Schema) Schema { return Schema{Kind: KOneOf, Node: list} }

// Not builds the negation form.
func Not(s Schema) Schema { return Schema{Kind: KNot, Node: &s} }

// Primitive-variant constructors. A nil node is replaced by an empty one.

func ObjectSchema(n *ObjectNode) Schema {
	if n == nil {
		n = NewObjectNode()
	}
	if n.Properties == nil {
		n.Properties = orderedmap.New[string, Schema]()
	}
	return Schema{Kind: KObject, Node: n}
}

func ArraySchema(n *ArrayNode) Schema {
	if n == nil {
		n = &ArrayNode{}
	}
	return Schema{Kind: KArray, Node: n}
}

func StringSchema(n *StringNode) Schema {
	if n == nil {
		n = &StringNode{}
	}
	return Schema{Kind: KString, Node: n}
}

func NumberSchema(n *NumberNode) Schema {
	if n == nil {
		n = &NumberNode{}
	}
	return Schema{Kind: KNumber, Node: n}
}

func IntegerSchema(n *IntegerNode) Schema {
	if n == nil {
		n = &IntegerNode{}
	}
	return Schema{Kind: KInteger, Node: n}
}

func BooleanSchema(n *BooleanNode) Schema {
	if n == nil {
		n = &BooleanNode{}
	}
	return Schema{Kind: KBoolean, Node: n}
}

// NewObjectNode returns an object payload with an initialized (empty)
// ordered property map.
func NewObjectNode() *ObjectNode {
	return &ObjectNode{Properties: orderedmap.New[string, Schema]()}
}

// Prop appends (or replaces) a property, preserving first-insertion order.
// Returns the node for chaining: the stand-in for the source library's
// dictionary-literal construction sugar.
func (n *ObjectNode) Prop(name string, s Schema) *ObjectNode {
	if n.Properties == nil {
		n.Properties = orderedmap.New[string, Schema]()
	}
	n.Properties.Set(name, s)
	return n
}

// Require appends property names to the required list, for chaining.
func (n *ObjectNode) Require(names ...string) *ObjectNode {
	n.Required = append(n.Required, names...)
	return n
}

// PropertyNames returns the property keys in stored insertion order.
func (n *ObjectNode) PropertyNames() []string {
	if n == nil || n.Properties == nil {
		return nil
	}
	out := make([]string, 0, n.Properties.Len())
	for pair := n.Properties.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

/* ===========================
   Accessors
   =========================== */

// Per-kind payload accessors; each returns the payload and whether the
// kind matched.

func (s Schema) ObjectNode() (*ObjectNode, bool) {
	n, ok := s.Node.(*ObjectNode)
	return n, ok && s.Kind == KObject
}

func (s Schema) ArrayNode() (*ArrayNode, bool) {
	n, ok := s.Node.(*ArrayNode)
	return n, ok && s.Kind == KArray
}

func (s Schema) StringNode() (*StringNode, bool) {
	n, ok := s.Node.(*StringNode)
	return n, ok && s.Kind == KString
}

func (s Schema) NumberNode() (*NumberNode, bool) {
	n, ok := s.Node.(*NumberNode)
	return n, ok && s.Kind == KNumber
}

func (s Schema) IntegerNode() (*IntegerNode, bool) {
	n, ok := s.Node.(*IntegerNode)
	return n, ok && s.Kind == KInteger
}

func (s Schema) BooleanNode() (*BooleanNode, bool) {
	n, ok := s.Node.(*BooleanNode)
	return n, ok && s.Kind == KBoolean
}

// Ref returns the $ref target of a reference schema.
func (s Schema) Ref() (string, bool) {
	r, ok := s.Node.(string)
	return r, ok && s.Kind == KReference
}

// Subschemas returns the member list of an anyOf/allOf/oneOf schema.
func (s Schema) Subschemas() ([]Schema, bool) {
	list, ok := s.Node.([]Schema)
	if !ok {
		return nil, false
	}
	switch s.Kind {
	case KAnyOf, KAllOf, KOneOf:
		return list, true
	}
	return nil, false
}

// NotSchema returns the negated schema of a KNot node.
func (s Schema) NotSchema() (Schema, bool) {
	p, ok := s.Node.(*Schema)
	if !ok || s.Kind != KNot {
		return Schema{}, false
	}
	return *p, true
}

// IsNever reports whether s is the canonical reject-everything schema,
// Not(Any), which encodes as the wire literal `false`.
func (s Schema) IsNever() bool {
	inner, ok := s.NotSchema()
	return ok && inner.Kind == KAny
}

// String renders a short debug representation.
func (s Schema) String() string {
	switch s.Kind {
	case KReference:
		return fmt.Sprintf("<schema $ref=%q>", s.Node.(string))
	case KAnyOf, KAllOf, KOneOf:
		return fmt.Sprintf("<schema %s n=%d>", s.Kind, len(s.Node.([]Schema)))
	default:
		return fmt.Sprintf("<schema %s>", s.Kind)
	}
}

/* ===========================
   Structural equality
   =========================== */

// Equal reports deep structural equality. Properties compare as unordered
// key/value sets (insertion order is presentation, not meaning); list
// forms compare element-wise in order; metadata values compare with
// Value.Equal.
func (s Schema) Equal(o Schema) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case KNull, KEmpty, KAny:
		return true
	case KReference:
		return s.Node.(string) == o.Node.(string)
	case KAnyOf, KAllOf, KOneOf:
		a := s.Node.([]Schema)
		b := o.Node.([]Schema)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KNot:
		return (*s.Node.(*Schema)).Equal(*o.Node.(*Schema))
	case KObject:
		return s.Node.(*ObjectNode).equal(o.Node.(*ObjectNode))
	case KArray:
		return s.Node.(*ArrayNode).equal(o.Node.(*ArrayNode))
	case KString:
		return s.Node.(*StringNode).equal(o.Node.(*StringNode))
	case KNumber:
		return s.Node.(*NumberNode).equal(o.Node.(*NumberNode))
	case KInteger:
		return s.Node.(*IntegerNode).equal(o.Node.(*IntegerNode))
	case KBoolean:
		return s.Node.(*BooleanNode).Meta.equal(&o.Node.(*BooleanNode).Meta)
	default:
		return false
	}
}

func (m *Meta) equal(o *Meta) bool {
	if m.Title != o.Title || m.Description != o.Description {
		return false
	}
	if !equalValuePtr(m.Default, o.Default) || !equalValuePtr(m.Const, o.Const) {
		return false
	}
	return equalValueList(m.Examples, o.Examples) && equalValueList(m.Enum, o.Enum)
}

func (n *ObjectNode) equal(o *ObjectNode) bool {
	if !n.Meta.equal(&o.Meta) {
		return false
	}
	if !equalStringList(n.Required, o.Required) {
		return false
	}
	if !n.Additional.equal(o.Additional) {
		return false
	}
	if propsLen(n.Properties) != propsLen(o.Properties) {
		return false
	}
	if n.Properties == nil {
		return true
	}
	for pair := n.Properties.Oldest(); pair != nil; pair = pair.Next() {
		ov, ok := o.Properties.Get(pair.Key)
		if !ok || !pair.Value.Equal(ov) {
			return false
		}
	}
	return true
}

func (n *ArrayNode) equal(o *ArrayNode) bool {
	if !n.Meta.equal(&o.Meta) {
		return false
	}
	if (n.Items == nil) != (o.Items == nil) {
		return false
	}
	if n.Items != nil && !n.Items.Equal(*o.Items) {
		return false
	}
	return equalI64Ptr(n.MinItems, o.MinItems) &&
		equalI64Ptr(n.MaxItems, o.MaxItems) &&
		equalBoolPtr(n.UniqueItems, o.UniqueItems)
}

func (n *StringNode) equal(o *StringNode) bool {
	if !n.Meta.equal(&o.Meta) {
		return false
	}
	if n.Pattern != o.Pattern {
		return false
	}
	if (n.Format == nil) != (o.Format == nil) {
		return false
	}
	if n.Format != nil && *n.Format != *o.Format {
		return false
	}
	return equalI64Ptr(n.MinLength, o.MinLength) && equalI64Ptr(n.MaxLength, o.MaxLength)
}

func (n *NumberNode) equal(o *NumberNode) bool {
	return n.Meta.equal(&o.Meta) &&
		equalF64Ptr(n.Minimum, o.Minimum) &&
		equalF64Ptr(n.Maximum, o.Maximum) &&
		equalF64Ptr(n.ExclusiveMinimum, o.ExclusiveMinimum) &&
		equalF64Ptr(n.ExclusiveMaximum, o.ExclusiveMaximum) &&
		equalF64Ptr(n.MultipleOf, o.MultipleOf)
}

func (n *IntegerNode) equal(o *IntegerNode) bool {
	return n.Meta.equal(&o.Meta) &&
		equalI64Ptr(n.Minimum, o.Minimum) &&
		equalI64Ptr(n.Maximum, o.Maximum) &&
		equalI64Ptr(n.ExclusiveMinimum, o.ExclusiveMinimum) &&
		equalI64Ptr(n.ExclusiveMaximum, o.ExclusiveMaximum) &&
		equalI64Ptr(n.MultipleOf, o.MultipleOf)
}

/* ===========================
   Small comparison helpers
   =========================== */

func propsLen(p *Properties) int {
	if p == nil {
		return 0
	}
	return p.Len()
}

func equalValuePtr(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalValueList(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalStringList(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalI64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalF64Ptr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
