// value.go
//
// Generic JSON value model.
//
// Goals / design (practical, JSON-faithful):
//  1. A single closed tagged union covers every JSON shape:
//     null, bool, integer, double, string, array, object.
//  2. The integer/double split survives decoding: a JSON literal with no
//     fractional part or exponent becomes Int when it fits int64, Num
//     otherwise. Encoding never collapses the split back (Int emits an
//     integer literal, Num emits a floating literal even when integral).
//  3. Equality and hashing are structural and recursive. Object equality
//     ignores key order (JSON object semantics); array equality requires
//     identical order. Hash is consistent with Equal.
//  4. Values are immutable by convention: builders and the decoder hand out
//     fresh trees, and nothing in this package mutates a Value after
//     construction. Safe to share across goroutines.
//
// Implementation notes:
//   - The representation mirrors the classic Tag+Data carrier: the tag
//     determines the dynamic type of Data (nil, bool, int64, float64,
//     string, []Value, map[string]Value). Object uses a plain Go map since
//     JSON object key order is not significant for this type; the one place
//     order matters in this module is an object *schema*'s properties
//     (see schema.go).
package jsonschema

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strconv"
)

// ValueTag enumerates the JSON kinds a Value may hold.
// The tag determines which dynamic type Value.Data carries.
type ValueTag int

const (
	VNull   ValueTag = iota // null (no payload)
	VBool                   // bool
	VInt                    // int64
	VNum                    // float64
	VStr                    // string
	VArray                  // []Value
	VObject                 // map[string]Value
)

// String names the tag for debug output and error messages.
func (t ValueTag) String() string {
	switch t {
	case VNull:
		return "null"
	case VBool:
		return "bool"
	case VInt:
		return "int"
	case VNum:
		return "number"
	case VStr:
		return "string"
	case VArray:
		return "array"
	case VObject:
		return "object"
	default:
		return "<invalid>"
	}
}

// Value is the universal JSON carrier used throughout this package.
//
// Fields:
//   - Tag  — discriminant indicating which case is active.
//   - Data — Go value appropriate for Tag: nil, bool, int64, float64,
//     string, []Value or map[string]Value.
//
// Invariants:
//   - When Tag==VNull, Data is nil.
//   - Data is never a pointer; trees own their children exclusively.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Null is the singleton null Value.
var Null = Value{Tag: VNull}

// Primitive constructors.
func Bool(b bool) Value   { return Value{Tag: VBool, Data: b} }
func Int(n int64) Value   { return Value{Tag: VInt, Data: n} }
func Num(f float64) Value { return Value{Tag: VNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VStr, Data: s} }

// Arr builds a VArray from the given elements. The slice is used as-is;
// callers building incrementally should not retain it afterwards.
func Arr(xs ...Value) Value { return Value{Tag: VArray, Data: xs} }

// Obj builds a VObject from a plain Go map. Key order is irrelevant for
// generic values, so no order is recorded.
func Obj(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{Tag: VObject, Data: m}
}

// Typed accessors. Each returns the payload and whether the tag matched;
// they never coerce (see convert.go for the tolerant conversions).

func (v Value) Bool() (bool, bool) {
	b, ok := v.Data.(bool)
	return b, ok && v.Tag == VBool
}

func (v Value) Int() (int64, bool) {
	n, ok := v.Data.(int64)
	return n, ok && v.Tag == VInt
}

func (v Value) Num() (float64, bool) {
	f, ok := v.Data.(float64)
	return f, ok && v.Tag == VNum
}

func (v Value) Str() (string, bool) {
	s, ok := v.Data.(string)
	return s, ok && v.Tag == VStr
}

func (v Value) Array() ([]Value, bool) {
	xs, ok := v.Data.([]Value)
	return xs, ok && v.Tag == VArray
}

func (v Value) Object() (map[string]Value, bool) {
	m, ok := v.Data.(map[string]Value)
	return m, ok && v.Tag == VObject
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.Tag == VNull }

// String renders a human-friendly debug representation.
func (v Value) String() string {
	switch v.Tag {
	case VNull:
		return "null"
	case VBool:
		return strconv.FormatBool(v.Data.(bool))
	case VInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VStr:
		return fmt.Sprintf("%q", v.Data.(string))
	case VArray:
		return fmt.Sprintf("<array len=%d>", len(v.Data.([]Value)))
	case VObject:
		return fmt.Sprintf("<object len=%d>", len(v.Data.(map[string]Value)))
	default:
		return "<invalid>"
	}
}

// Equal reports deep structural equality. Objects compare as unordered
// key/value sets; arrays compare element-wise in order. Int and Num never
// compare equal even when numerically identical (42 != 42.0): the model
// treats the two as distinct JSON kinds.
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}
	switch v.Tag {
	case VNull:
		return true
	case VBool:
		return v.Data.(bool) == o.Data.(bool)
	case VInt:
		return v.Data.(int64) == o.Data.(int64)
	case VNum:
		return v.Data.(float64) == o.Data.(float64)
	case VStr:
		return v.Data.(string) == o.Data.(string)
	case VArray:
		ax := v.Data.([]Value)
		bx := o.Data.([]Value)
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if !ax[i].Equal(bx[i]) {
				return false
			}
		}
		return true
	case VObject:
		am := v.Data.(map[string]Value)
		bm := o.Data.(map[string]Value)
		if len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !av.Equal(bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Hash returns a structural FNV-1a hash consistent with Equal: equal values
// hash identically regardless of object key insertion order. Not a
// cryptographic hash.
func (v Value) Hash() uint64 {
	h := fnv.New64a()
	v.hashInto(h)
	return h.Sum64()
}

type hasher interface {
	Write(p []byte) (int, error)
}

func (v Value) hashInto(h hasher) {
	var tag [1]byte
	tag[0] = byte(v.Tag)
	h.Write(tag[:])

	var buf [8]byte
	switch v.Tag {
	case VNull:
	case VBool:
		if v.Data.(bool) {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case VInt:
		binary.LittleEndian.PutUint64(buf[:], uint64(v.Data.(int64)))
		h.Write(buf[:])
	case VNum:
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.Data.(float64)))
		h.Write(buf[:])
	case VStr:
		h.Write([]byte(v.Data.(string)))
	case VArray:
		for _, el := range v.Data.([]Value) {
			el.hashInto(h)
		}
	case VObject:
		// Key order must not affect the hash: fold entries in sorted order.
		m := v.Data.(map[string]Value)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			h.Write([]byte(k))
			h.Write([]byte{0})
			m[k].hashInto(h)
		}
	}
}
