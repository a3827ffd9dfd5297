// value_json.go — Value ⇄ JSON bytes.
//
// WHAT THIS FILE PROVIDES
// =======================
// The bidirectional codec between the generic Value model (value.go) and
// JSON text, delegating lexing/escaping/number parsing to json-iterator and
// layering the model's numeric-fidelity rules on top.
//
// Public API:
//   - DecodeValue(data []byte) (Value, error)
//   - EncodeValue(v Value) ([]byte, error)
//   - MarshalValue(v Value, opts MarshalOptions) ([]byte, error)
//
// BEHAVIOR
// --------
// Decode preserves the Int/Num split: number literals arrive as json.Number
// (the decoder runs with UseNumber), and a literal with no '.', 'e' or 'E'
// that fits int64 becomes Int; everything else numeric becomes Num. The
// alternative order — null, bool, int, double, string, array, object — is
// fixed, so an integer literal is never classified as a double and a number
// is never classified as a bool or string.
//
// Encode is the direct structural mapping. The one subtlety is Num: Go
// serializers print float64(42) as "42", which would decode back as Int and
// break the round-trip law, so Num is rendered manually and given a ".0"
// suffix when the shortest form carries no fractional part or exponent.
// Non-finite floats are an *EncodeError (JSON has no representation).
package jsonschema

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// jsonNum is the decode-side parser configuration: numbers surface as
// json.Number so the Int/Num distinction survives.
var jsonNum = jsoniter.Config{UseNumber: true}.Froze()

// jsonStd is the encode-side configuration for compact output.
var jsonStd = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalOptions controls optional serializer behavior for both the value
// and the schema codec.
//
//   - Indent   — when non-empty, pretty-print using this unit (e.g. "  ").
//   - SortKeys — emit generic object keys in sorted order. Has no effect on
//     an object schema's properties, whose stored order always wins.
type MarshalOptions struct {
	Indent   string
	SortKeys bool
}

// DecodeValue parses JSON text into a Value. Any syntactically valid JSON
// document decodes; failures are *DecodeError.
func DecodeValue(data []byte) (Value, error) {
	var raw interface{}
	if err := jsonNum.Unmarshal(data, &raw); err != nil {
		return Null, decodeWrap(err, "", "invalid JSON")
	}
	return valueFromGoJSON(raw, "")
}

// EncodeValue serializes a Value to compact JSON bytes.
func EncodeValue(v Value) ([]byte, error) {
	return MarshalValue(v, MarshalOptions{})
}

// MarshalValue serializes a Value honoring the given options.
func MarshalValue(v Value, opts MarshalOptions) ([]byte, error) {
	tree, err := valueToGoJSON(v, "")
	if err != nil {
		return nil, err
	}
	return marshalTree(tree, opts)
}

// marshalTree runs the configured serializer over an encode tree built by
// this package (maps, slices, scalars and json.RawMessage leaves).
// Indentation is applied as a post-pass: nested Marshaler leaves emit
// compact bytes that the serializer embeds verbatim, so indenting at
// serialize time would leave them compact.
func marshalTree(tree interface{}, opts MarshalOptions) ([]byte, error) {
	cfg := jsonStd
	if opts.SortKeys {
		cfg = jsoniter.Config{EscapeHTML: true, SortMapKeys: true}.Froze()
	}
	out, err := cfg.Marshal(tree)
	if err != nil {
		return nil, encodeErrf("", "serializer rejected value: %v", err)
	}
	if opts.Indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", opts.Indent); err != nil {
			return nil, encodeErrf("", "indenting failed: %v", err)
		}
		out = buf.Bytes()
	}
	return out, nil
}

// valueFromGoJSON converts a decoded json-iterator tree into a Value.
// The path argument feeds error messages only.
func valueFromGoJSON(x interface{}, path string) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null, nil

	case bool:
		return Bool(v), nil

	case json.Number:
		// Integer first: a literal without '.', 'e' or 'E' that fits int64
		// is an Int; everything else falls through to float.
		s := v.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return Int(i), nil
			}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Null, decodeErrf(path, "number %q out of range", s)
		}
		return Num(f), nil

	case string:
		return Str(v), nil

	case []interface{}:
		out := make([]Value, len(v))
		for i := range v {
			el, err := valueFromGoJSON(v[i], path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return Null, err
			}
			out[i] = el
		}
		return Arr(out...), nil

	case map[string]interface{}:
		entries := make(map[string]Value, len(v))
		for k, vv := range v {
			ev, err := valueFromGoJSON(vv, joinPath(path, k))
			if err != nil {
				return Null, err
			}
			entries[k] = ev
		}
		return Obj(entries), nil

	default:
		// Shouldn't happen with a JSON decoder; keep a clear failure mode.
		return Null, decodeErrf(path, "unrecognized JSON value %T", x)
	}
}

// valueToGoJSON converts a Value into a serializer-ready tree. Num leaves
// are pre-rendered (json.RawMessage) so integral doubles keep a fractional
// marker.
func valueToGoJSON(v Value, path string) (interface{}, error) {
	switch v.Tag {
	case VNull:
		return nil, nil
	case VBool:
		return v.Data.(bool), nil
	case VInt:
		return v.Data.(int64), nil
	case VNum:
		f := v.Data.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, encodeErrf(path, "non-finite number %v", f)
		}
		return json.RawMessage(formatDouble(f)), nil
	case VStr:
		return v.Data.(string), nil
	case VArray:
		xs := v.Data.([]Value)
		out := make([]interface{}, len(xs))
		for i := range xs {
			el, err := valueToGoJSON(xs[i], path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			out[i] = el
		}
		return out, nil
	case VObject:
		m := v.Data.(map[string]Value)
		out := make(map[string]interface{}, len(m))
		for k, vv := range m {
			ev, err := valueToGoJSON(vv, joinPath(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	default:
		return nil, encodeErrf(path, "invalid value tag %d", v.Tag)
	}
}

// formatDouble renders a float64 as a JSON literal that always reads back
// as a double: "42" becomes "42.0", exponent forms pass through.
func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
