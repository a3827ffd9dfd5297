// yaml.go — YAML front door for schema documents.
//
// Schemas are frequently authored in YAML (OpenAPI bodies, config-driven
// form definitions). YAML's document model keeps mapping order, so a YAML
// load can preserve property order without the textual extractor: the
// order is read straight off the yaml.Node tree and threaded into the
// regular decoder as DecodeOptions.PropertyOrder.
//
// Public API:
//   - ValueFromYAML(data) — YAML document → generic Value, with the same
//     Int/Num fidelity rules as the JSON decoder.
//   - DecodeSchemaYAML(data) — YAML document → Schema, root property order
//     preserved.
//
// Only the JSON-compatible subset of YAML maps onto the model: non-string
// mapping keys, anchors expanding to cycles and custom tags are decode
// errors. Unrecognized scalar tags fall back to strings, which matches how
// YAML-authored schemas treat timestamps and the like.
package jsonschema

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValueFromYAML parses a single YAML document into a Value.
func ValueFromYAML(data []byte) (Value, error) {
	root, err := yamlRoot(data)
	if err != nil {
		return Null, err
	}
	return valueFromYAMLNode(root, "")
}

// DecodeSchemaYAML parses a single YAML document as a JSON Schema. The
// root object schema's property order follows the YAML source.
func DecodeSchemaYAML(data []byte) (Schema, error) {
	root, err := yamlRoot(data)
	if err != nil {
		return Schema{}, err
	}
	v, err := valueFromYAMLNode(root, "")
	if err != nil {
		return Schema{}, err
	}
	opts := &DecodeOptions{PropertyOrder: yamlPropertyOrder(root)}
	return schemaFromValue(v, opts, "")
}

func yamlRoot(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, decodeWrap(err, "", "invalid YAML")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, decodeErrf("", "empty YAML document")
	}
	return doc.Content[0], nil
}

// yamlPropertyOrder reads the key order of the root "properties" mapping,
// mirroring SchemaPropertyOrder for JSON text. Nil when absent.
func yamlPropertyOrder(root *yaml.Node) []string {
	root = yamlDeref(root)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "properties" {
			continue
		}
		props := yamlDeref(root.Content[i+1])
		if props == nil || props.Kind != yaml.MappingNode {
			return nil
		}
		order := make([]string, 0, len(props.Content)/2)
		for j := 0; j+1 < len(props.Content); j += 2 {
			order = append(order, props.Content[j].Value)
		}
		return order
	}
	return nil
}

func yamlDeref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func valueFromYAMLNode(n *yaml.Node, path string) (Value, error) {
	n = yamlDeref(n)
	if n == nil {
		return Null, decodeErrf(path, "unresolvable YAML alias")
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return valueFromYAMLScalar(n, path)
	case yaml.SequenceNode:
		out := make([]Value, len(n.Content))
		for i, el := range n.Content {
			ev, err := valueFromYAMLNode(el, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return Null, err
			}
			out[i] = ev
		}
		return Arr(out...), nil
	case yaml.MappingNode:
		entries := make(map[string]Value, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := yamlDeref(n.Content[i])
			if keyNode == nil || keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
				return Null, decodeErrf(path, "mapping key must be a string")
			}
			key := keyNode.Value
			ev, err := valueFromYAMLNode(n.Content[i+1], joinPath(path, key))
			if err != nil {
				return Null, err
			}
			entries[key] = ev
		}
		return Obj(entries), nil
	default:
		return Null, decodeErrf(path, "unsupported YAML node kind %d", n.Kind)
	}
}

func valueFromYAMLScalar(n *yaml.Node, path string) (Value, error) {
	switch n.Tag {
	case "!!null":
		return Null, nil
	case "!!bool":
		switch strings.ToLower(n.Value) {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return Null, decodeErrf(path, "bad YAML boolean %q", n.Value)
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return Int(i), nil
		}
		// Out-of-range integers widen to float, like huge JSON literals.
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return Num(f), nil
		}
		return Null, decodeErrf(path, "bad YAML integer %q", n.Value)
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Null, decodeErrf(path, "YAML float %q has no JSON representation", n.Value)
		}
		return Num(f), nil
	default:
		// "!!str" and any unrecognized scalar tag (timestamps etc.).
		return Str(n.Value), nil
	}
}
