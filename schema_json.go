// schema_json.go — Schema ⇄ JSON Schema documents.
//
// WHAT THIS FILE PROVIDES
// =======================
// The codec between the Schema union (schema.go) and JSON Schema's wire
// conventions, which mix three shapes:
//
//   - a boolean shorthand: `true` is the accept-everything schema and
//     `false` the reject-everything schema,
//   - objects discriminated by a "type" keyword for the primitive variants,
//   - un-discriminated composite keywords ($ref, anyOf, allOf, oneOf, not)
//     recognized by key presence.
//
// Public API:
//   - EncodeSchema(s) / MarshalSchema(s, opts)
//   - DecodeSchema(data, opts *DecodeOptions)
//   - Schema.MarshalJSON / Schema.UnmarshalJSON (stdlib interop)
//
// ENCODE
// ------
// Dispatch by variant: Any → `true`; Not(Any) → `false` (special-cased so
// the reject-everything schema round-trips to the shorthand instead of a
// nested {"not": true}); Empty → `{}`; primitives → an object with "type"
// plus each *present* field under its keyword name. Unset fields are
// omitted entirely — no null placeholders — and empty collections
// (properties, required) are omitted too, matching hand-authored schemas.
// Keywords are emitted through an ordered map so "type" leads and an object
// schema's properties appear in stored insertion order.
//
// DECODE
// ------
// Precedence: bare boolean → Any / Not(Any); then key inspection: "$ref",
// "anyOf", "allOf", "oneOf", "not" (first match in that fixed order); then
// a missing "type" resolves to Empty (zero keys) or Any (unrecognized
// keywords present — they are deliberately dropped, as the source model
// does); finally "type" dispatches to a primitive variant, and an
// unrecognized type string is a *DecodeError naming the bad value.
//
// DecodeOptions carries the one recognized decode-time setting: an
// explicit property-name order (normally produced by the extractor in
// keyorder.go) applied when populating object-schema properties. Listed
// names come first, in list order; names not listed follow in natural
// decode order. With no options the map order is whatever the decoder
// happens to enumerate.
package jsonschema

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DecodeOptions is the explicit decode-time context for DecodeSchema.
//
// PropertyOrder dictates the iteration order of decoded object-schema
// properties. It applies to every object schema encountered during the
// decode; in practice callers pair it with SchemaPropertyOrder, which
// targets the document root.
type DecodeOptions struct {
	PropertyOrder []string
}

// EncodeSchema serializes a schema to a compact JSON Schema document.
func EncodeSchema(s Schema) ([]byte, error) {
	return MarshalSchema(s, MarshalOptions{})
}

// MarshalSchema serializes a schema honoring the marshal options. SortKeys
// affects generic value payloads only; keyword order and property order are
// fixed by the model.
func MarshalSchema(s Schema, opts MarshalOptions) ([]byte, error) {
	tree, err := schemaToGoJSON(s, "")
	if err != nil {
		return nil, err
	}
	return marshalTree(tree, opts)
}

// MarshalJSON implements json.Marshaler.
func (s Schema) MarshalJSON() ([]byte, error) { return EncodeSchema(s) }

// UnmarshalJSON implements json.Unmarshaler (no property-order context;
// use DecodeSchema to supply one).
func (s *Schema) UnmarshalJSON(data []byte) error {
	dec, err := DecodeSchema(data, nil)
	if err != nil {
		return err
	}
	*s = dec
	return nil
}

/* ===========================
   ENCODE
   =========================== */

// kwMap is the ordered keyword map used for encoding, so emitted documents
// keep a stable, conventional keyword order.
type kwMap = orderedmap.OrderedMap[string, interface{}]

func schemaToGoJSON(s Schema, path string) (interface{}, error) {
	switch s.Kind {
	case KAny:
		return true, nil
	case KNot:
		if s.IsNever() {
			return false, nil
		}
		inner, _ := s.NotSchema()
		sub, err := schemaToGoJSON(inner, joinPath(path, "not"))
		if err != nil {
			return nil, err
		}
		om := orderedmap.New[string, interface{}]()
		om.Set("not", sub)
		return om, nil
	case KEmpty:
		return orderedmap.New[string, interface{}](), nil
	case KReference:
		om := orderedmap.New[string, interface{}]()
		om.Set("$ref", s.Node.(string))
		return om, nil
	case KAnyOf, KAllOf, KOneOf:
		keyword := s.Kind.String()
		list := s.Node.([]Schema)
		subs := make([]interface{}, len(list))
		for i := range list {
			sub, err := schemaToGoJSON(list[i], joinPath(path, keyword))
			if err != nil {
				return nil, err
			}
			subs[i] = sub
		}
		om := orderedmap.New[string, interface{}]()
		om.Set(keyword, subs)
		return om, nil
	case KNull:
		om := orderedmap.New[string, interface{}]()
		om.Set("type", "null")
		return om, nil
	case KObject:
		return encodeObject(s.Node.(*ObjectNode), path)
	case KArray:
		return encodeArray(s.Node.(*ArrayNode), path)
	case KString:
		return encodeString(s.Node.(*StringNode), path)
	case KNumber:
		return encodeNumber(s.Node.(*NumberNode), path)
	case KInteger:
		return encodeInteger(s.Node.(*IntegerNode), path)
	case KBoolean:
		om := orderedmap.New[string, interface{}]()
		om.Set("type", "boolean")
		if err := emitMeta(om, &s.Node.(*BooleanNode).Meta, path); err != nil {
			return nil, err
		}
		return om, nil
	default:
		return nil, encodeErrf(path, "invalid schema kind %d", s.Kind)
	}
}

// emitMeta appends the shared metadata keywords, skipping unset fields.
func emitMeta(om *kwMap, m *Meta, path string) error {
	if m.Title != "" {
		om.Set("title", m.Title)
	}
	if m.Description != "" {
		om.Set("description", m.Description)
	}
	if m.Default != nil {
		tree, err := valueToGoJSON(*m.Default, joinPath(path, "default"))
		if err != nil {
			return err
		}
		om.Set("default", tree)
	}
	if len(m.Examples) > 0 {
		tree, err := valueListToGoJSON(m.Examples, joinPath(path, "examples"))
		if err != nil {
			return err
		}
		om.Set("examples", tree)
	}
	if len(m.Enum) > 0 {
		tree, err := valueListToGoJSON(m.Enum, joinPath(path, "enum"))
		if err != nil {
			return err
		}
		om.Set("enum", tree)
	}
	if m.Const != nil {
		tree, err := valueToGoJSON(*m.Const, joinPath(path, "const"))
		if err != nil {
			return err
		}
		om.Set("const", tree)
	}
	return nil
}

func valueListToGoJSON(vs []Value, path string) ([]interface{}, error) {
	out := make([]interface{}, len(vs))
	for i := range vs {
		tree, err := valueToGoJSON(vs[i], path)
		if err != nil {
			return nil, err
		}
		out[i] = tree
	}
	return out, nil
}

func encodeObject(n *ObjectNode, path string) (interface{}, error) {
	om := orderedmap.New[string, interface{}]()
	om.Set("type", "object")
	if err := emitMeta(om, &n.Meta, path); err != nil {
		return nil, err
	}
	// Properties go out in stored insertion order; an empty map is omitted.
	if n.Properties != nil && n.Properties.Len() > 0 {
		props := orderedmap.New[string, interface{}]()
		for pair := n.Properties.Oldest(); pair != nil; pair = pair.Next() {
			sub, err := schemaToGoJSON(pair.Value, joinPath(path, "properties."+pair.Key))
			if err != nil {
				return nil, err
			}
			props.Set(pair.Key, sub)
		}
		om.Set("properties", props)
	}
	if len(n.Required) > 0 {
		om.Set("required", n.Required)
	}
	if n.Additional != nil {
		if allow, ok := n.Additional.Bool(); ok {
			om.Set("additionalProperties", allow)
		} else if sub, ok := n.Additional.Schema(); ok {
			tree, err := schemaToGoJSON(sub, joinPath(path, "additionalProperties"))
			if err != nil {
				return nil, err
			}
			om.Set("additionalProperties", tree)
		}
	}
	return om, nil
}

func encodeArray(n *ArrayNode, path string) (interface{}, error) {
	om := orderedmap.New[string, interface{}]()
	om.Set("type", "array")
	if err := emitMeta(om, &n.Meta, path); err != nil {
		return nil, err
	}
	if n.Items != nil {
		tree, err := schemaToGoJSON(*n.Items, joinPath(path, "items"))
		if err != nil {
			return nil, err
		}
		om.Set("items", tree)
	}
	if n.MinItems != nil {
		om.Set("minItems", *n.MinItems)
	}
	if n.MaxItems != nil {
		om.Set("maxItems", *n.MaxItems)
	}
	if n.UniqueItems != nil {
		om.Set("uniqueItems", *n.UniqueItems)
	}
	return om, nil
}

func encodeString(n *StringNode, path string) (interface{}, error) {
	om := orderedmap.New[string, interface{}]()
	om.Set("type", "string")
	if err := emitMeta(om, &n.Meta, path); err != nil {
		return nil, err
	}
	if n.MinLength != nil {
		om.Set("minLength", *n.MinLength)
	}
	if n.MaxLength != nil {
		om.Set("maxLength", *n.MaxLength)
	}
	if n.Pattern != "" {
		om.Set("pattern", n.Pattern)
	}
	if n.Format != nil {
		om.Set("format", string(*n.Format))
	}
	return om, nil
}

func encodeNumber(n *NumberNode, path string) (interface{}, error) {
	om := orderedmap.New[string, interface{}]()
	om.Set("type", "number")
	if err := emitMeta(om, &n.Meta, path); err != nil {
		return nil, err
	}
	if n.Minimum != nil {
		om.Set("minimum", *n.Minimum)
	}
	if n.Maximum != nil {
		om.Set("maximum", *n.Maximum)
	}
	if n.ExclusiveMinimum != nil {
		om.Set("exclusiveMinimum", *n.ExclusiveMinimum)
	}
	if n.ExclusiveMaximum != nil {
		om.Set("exclusiveMaximum", *n.ExclusiveMaximum)
	}
	if n.MultipleOf != nil {
		om.Set("multipleOf", *n.MultipleOf)
	}
	return om, nil
}

func encodeInteger(n *IntegerNode, path string) (interface{}, error) {
	om := orderedmap.New[string, interface{}]()
	om.Set("type", "integer")
	if err := emitMeta(om, &n.Meta, path); err != nil {
		return nil, err
	}
	if n.Minimum != nil {
		om.Set("minimum", *n.Minimum)
	}
	if n.Maximum != nil {
		om.Set("maximum", *n.Maximum)
	}
	if n.ExclusiveMinimum != nil {
		om.Set("exclusiveMinimum", *n.ExclusiveMinimum)
	}
	if n.ExclusiveMaximum != nil {
		om.Set("exclusiveMaximum", *n.ExclusiveMaximum)
	}
	if n.MultipleOf != nil {
		om.Set("multipleOf", *n.MultipleOf)
	}
	return om, nil
}

/* ===========================
   DECODE
   =========================== */

// DecodeSchema parses a JSON Schema document. opts may be nil; see
// DecodeOptions for the property-order contract.
func DecodeSchema(data []byte, opts *DecodeOptions) (Schema, error) {
	v, err := DecodeValue(data)
	if err != nil {
		return Schema{}, err
	}
	if opts == nil {
		opts = &DecodeOptions{}
	}
	return schemaFromValue(v, opts, "")
}

func schemaFromValue(v Value, opts *DecodeOptions, path string) (Schema, error) {
	// 1. Boolean shorthand.
	if b, ok := v.Bool(); ok {
		if b {
			return AnySchema(), nil
		}
		return NeverSchema(), nil
	}

	m, ok := v.Object()
	if !ok {
		return Schema{}, decodeErrf(path, "schema must be an object or boolean, got %s", v.Tag)
	}

	// 2. Un-discriminated composites, in fixed precedence.
	if ref, present := m["$ref"]; present {
		target, ok := ref.Str()
		if !ok {
			return Schema{}, decodeErrf(joinPath(path, "$ref"), "$ref must be a string, got %s", ref.Tag)
		}
		return Ref(target), nil
	}
	for _, keyword := range []string{"anyOf", "allOf", "oneOf"} {
		member, present := m[keyword]
		if !present {
			continue
		}
		elems, ok := member.Array()
		if !ok {
			return Schema{}, decodeErrf(joinPath(path, keyword), "%s must be an array, got %s", keyword, member.Tag)
		}
		list := make([]Schema, len(elems))
		for i := range elems {
			sub, err := schemaFromValue(elems[i], opts, joinPath(path, keyword))
			if err != nil {
				return Schema{}, err
			}
			list[i] = sub
		}
		switch keyword {
		case "anyOf":
			return AnyOf(list...), nil
		case "allOf":
			return AllOf(list...), nil
		default:
			return OneOf(list...), nil
		}
	}
	if member, present := m["not"]; present {
		sub, err := schemaFromValue(member, opts, joinPath(path, "not"))
		if err != nil {
			return Schema{}, err
		}
		return Not(sub), nil
	}

	// 3. No "type": {} is the empty schema; anything else carries only
	// unrecognized keywords and widens to Any (the extra keywords are
	// dropped, not preserved).
	typ, present := m["type"]
	if !present {
		if len(m) == 0 {
			return EmptySchema(), nil
		}
		return AnySchema(), nil
	}

	// 4. "type"-discriminated primitives.
	name, ok := typ.Str()
	if !ok {
		return Schema{}, decodeErrf(joinPath(path, "type"), "type must be a string, got %s", typ.Tag)
	}
	switch name {
	case "null":
		return NullSchema(), nil
	case "boolean":
		n := &BooleanNode{}
		if err := decodeMeta(m, &n.Meta, path); err != nil {
			return Schema{}, err
		}
		return BooleanSchema(n), nil
	case "object":
		return decodeObject(m, opts, path)
	case "array":
		return decodeArray(m, opts, path)
	case "string":
		return decodeString(m, path)
	case "number":
		return decodeNumber(m, path)
	case "integer":
		return decodeInteger(m, path)
	default:
		return Schema{}, decodeErrf(joinPath(path, "type"), "unrecognized schema type %q", name)
	}
}

// decodeMeta reads the shared metadata keywords out of m.
func decodeMeta(m map[string]Value, meta *Meta, path string) error {
	if v, present := m["title"]; present {
		s, ok := v.Str()
		if !ok {
			return decodeErrf(joinPath(path, "title"), "title must be a string, got %s", v.Tag)
		}
		meta.Title = s
	}
	if v, present := m["description"]; present {
		s, ok := v.Str()
		if !ok {
			return decodeErrf(joinPath(path, "description"), "description must be a string, got %s", v.Tag)
		}
		meta.Description = s
	}
	if v, present := m["default"]; present {
		dv := v
		meta.Default = &dv
	}
	if v, present := m["examples"]; present {
		xs, ok := v.Array()
		if !ok {
			return decodeErrf(joinPath(path, "examples"), "examples must be an array, got %s", v.Tag)
		}
		meta.Examples = append([]Value(nil), xs...)
	}
	if v, present := m["enum"]; present {
		xs, ok := v.Array()
		if !ok {
			return decodeErrf(joinPath(path, "enum"), "enum must be an array, got %s", v.Tag)
		}
		meta.Enum = append([]Value(nil), xs...)
	}
	if v, present := m["const"]; present {
		cv := v
		meta.Const = &cv
	}
	return nil
}

func decodeObject(m map[string]Value, opts *DecodeOptions, path string) (Schema, error) {
	n := NewObjectNode()
	if err := decodeMeta(m, &n.Meta, path); err != nil {
		return Schema{}, err
	}

	if v, present := m["properties"]; present {
		props, ok := v.Object()
		if !ok {
			return Schema{}, decodeErrf(joinPath(path, "properties"), "properties must be an object, got %s", v.Tag)
		}
		for _, key := range orderedKeys(props, opts.PropertyOrder) {
			sub, err := schemaFromValue(props[key], opts, joinPath(path, "properties."+key))
			if err != nil {
				return Schema{}, err
			}
			n.Properties.Set(key, sub)
		}
	}

	if v, present := m["required"]; present {
		xs, ok := v.Array()
		if !ok {
			return Schema{}, decodeErrf(joinPath(path, "required"), "required must be an array, got %s", v.Tag)
		}
		for i := range xs {
			s, ok := xs[i].Str()
			if !ok {
				return Schema{}, decodeErrf(joinPath(path, "required"), "required entries must be strings, got %s", xs[i].Tag)
			}
			n.Required = append(n.Required, s)
		}
	}

	if v, present := m["additionalProperties"]; present {
		if b, ok := v.Bool(); ok {
			n.Additional = AllowAdditional(b)
		} else {
			sub, err := schemaFromValue(v, opts, joinPath(path, "additionalProperties"))
			if err != nil {
				return Schema{}, err
			}
			n.Additional = AdditionalSchema(sub)
		}
	}
	return ObjectSchema(n), nil
}

// orderedKeys arranges the property names of m: names from order that are
// actually present come first (in order-list order), then every remaining
// name in natural decode order.
func orderedKeys(m map[string]Value, order []string) []string {
	out := make([]string, 0, len(m))
	taken := make(map[string]bool, len(order))
	for _, k := range order {
		if _, present := m[k]; present && !taken[k] {
			out = append(out, k)
			taken[k] = true
		}
	}
	for k := range m {
		if !taken[k] {
			out = append(out, k)
		}
	}
	return out
}

func decodeArray(m map[string]Value, opts *DecodeOptions, path string) (Schema, error) {
	n := &ArrayNode{}
	if err := decodeMeta(m, &n.Meta, path); err != nil {
		return Schema{}, err
	}
	if v, present := m["items"]; present {
		sub, err := schemaFromValue(v, opts, joinPath(path, "items"))
		if err != nil {
			return Schema{}, err
		}
		n.Items = &sub
	}
	var err error
	if n.MinItems, err = intField(m, "minItems", path); err != nil {
		return Schema{}, err
	}
	if n.MaxItems, err = intField(m, "maxItems", path); err != nil {
		return Schema{}, err
	}
	if v, present := m["uniqueItems"]; present {
		b, ok := v.Bool()
		if !ok {
			return Schema{}, decodeErrf(joinPath(path, "uniqueItems"), "uniqueItems must be a boolean, got %s", v.Tag)
		}
		n.UniqueItems = &b
	}
	return ArraySchema(n), nil
}

func decodeString(m map[string]Value, path string) (Schema, error) {
	n := &StringNode{}
	if err := decodeMeta(m, &n.Meta, path); err != nil {
		return Schema{}, err
	}
	var err error
	if n.MinLength, err = intField(m, "minLength", path); err != nil {
		return Schema{}, err
	}
	if n.MaxLength, err = intField(m, "maxLength", path); err != nil {
		return Schema{}, err
	}
	if v, present := m["pattern"]; present {
		s, ok := v.Str()
		if !ok {
			return Schema{}, decodeErrf(joinPath(path, "pattern"), "pattern must be a string, got %s", v.Tag)
		}
		n.Pattern = s
	}
	if v, present := m["format"]; present {
		s, ok := v.Str()
		if !ok {
			return Schema{}, decodeErrf(joinPath(path, "format"), "format must be a string, got %s", v.Tag)
		}
		f := ParseFormat(s)
		n.Format = &f
	}
	return StringSchema(n), nil
}

func decodeNumber(m map[string]Value, path string) (Schema, error) {
	n := &NumberNode{}
	if err := decodeMeta(m, &n.Meta, path); err != nil {
		return Schema{}, err
	}
	var err error
	if n.Minimum, err = numField(m, "minimum", path); err != nil {
		return Schema{}, err
	}
	if n.Maximum, err = numField(m, "maximum", path); err != nil {
		return Schema{}, err
	}
	if n.ExclusiveMinimum, err = numField(m, "exclusiveMinimum", path); err != nil {
		return Schema{}, err
	}
	if n.ExclusiveMaximum, err = numField(m, "exclusiveMaximum", path); err != nil {
		return Schema{}, err
	}
	if n.MultipleOf, err = numField(m, "multipleOf", path); err != nil {
		return Schema{}, err
	}
	return NumberSchema(n), nil
}

func decodeInteger(m map[string]Value, path string) (Schema, error) {
	n := &IntegerNode{}
	if err := decodeMeta(m, &n.Meta, path); err != nil {
		return Schema{}, err
	}
	var err error
	if n.Minimum, err = intField(m, "minimum", path); err != nil {
		return Schema{}, err
	}
	if n.Maximum, err = intField(m, "maximum", path); err != nil {
		return Schema{}, err
	}
	if n.ExclusiveMinimum, err = intField(m, "exclusiveMinimum", path); err != nil {
		return Schema{}, err
	}
	if n.ExclusiveMaximum, err = intField(m, "exclusiveMaximum", path); err != nil {
		return Schema{}, err
	}
	if n.MultipleOf, err = intField(m, "multipleOf", path); err != nil {
		return Schema{}, err
	}
	return IntegerSchema(n), nil
}

// intField reads an optional integer keyword. Doubles with no fractional
// part are accepted (schemas in the wild write 1.0 for 1).
func intField(m map[string]Value, key, path string) (*int64, error) {
	v, present := m[key]
	if !present {
		return nil, nil
	}
	i, ok := v.AsInt(false)
	if !ok || v.Tag == VStr {
		return nil, decodeErrf(joinPath(path, key), "%s must be an integer, got %s", key, v.Tag)
	}
	return &i, nil
}

// numField reads an optional numeric keyword; integers widen to float64.
func numField(m map[string]Value, key, path string) (*float64, error) {
	v, present := m[key]
	if !present {
		return nil, nil
	}
	f, ok := v.AsNum(true)
	if !ok {
		return nil, decodeErrf(joinPath(path, key), "%s must be a number, got %s", key, v.Tag)
	}
	return &f, nil
}
