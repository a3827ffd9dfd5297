// keyorder.go — recovering object key order from raw JSON text.
//
// PROBLEM
// =======
// Generic JSON decoding does not preserve source key order, but schema
// authors frequently depend on property order (form-field generation being
// the classic case). Re-serializing a decoded map cannot help — the order
// is already gone — so the order has to be read straight off the original
// bytes. This file implements that as a minimal scanner that tracks brace
// depth and string boundaries and cares only about object key positions,
// never about value parsing.
//
// Public API:
//   - ExtractKeyOrder(data, keyPath...) — top-level keys, in source order,
//     of the object at keyPath (root object when keyPath is empty).
//   - SchemaPropertyOrder(data) — convenience fixing keyPath to
//     "properties"; its result feeds DecodeOptions.PropertyOrder.
//
// Both are best-effort conveniences, not parsers: any failure — invalid
// JSON, a non-object target, a missing path segment — yields nil rather
// than an error. Input validity is established up front by a full decode
// into the generic value model; after that the scanner may assume
// well-formed text.
//
// Keys are returned unescaped (the decoded string value), so they compare
// equal to property names produced by the decoder. Duplicate keys in
// non-conformant documents are passed through verbatim, repeats included;
// a downstream map build lets the last occurrence win.
package jsonschema

// ExtractKeyOrder returns the literal source order of the top-level keys
// of the JSON object reached by walking keyPath from the root. A nil
// result means the input is not valid JSON, the target (or an intermediate
// segment) is not an object, or a segment is missing.
func ExtractKeyOrder(data []byte, keyPath ...string) []string {
	// Validity gate: everything after this may assume syntactically
	// correct JSON.
	if _, err := DecodeValue(data); err != nil {
		return nil
	}

	window := data
	for _, segment := range keyPath {
		next, ok := memberValue(window, segment)
		if !ok {
			return nil
		}
		window = next
	}
	return topLevelKeys(window)
}

// SchemaPropertyOrder returns the declaration order of an object schema's
// properties as written in the document. Nil when the document is not an
// object schema with a textual "properties" object.
func SchemaPropertyOrder(data []byte) []string {
	return ExtractKeyOrder(data, "properties")
}

/* ===========================
   Scanner
   =========================== */

// memberValue scans the object at the head of window for a top-level key
// equal to name (after unescaping) and returns the byte window of its
// value. Nested objects are skipped wholesale, so a same-named key deeper
// in the tree is never mistaken for the target.
func memberValue(window []byte, name string) ([]byte, bool) {
	var out []byte
	found := false
	ok := scanObject(window, func(key string, value []byte) {
		if !found && key == name {
			out = value
			found = true
		}
	})
	return out, ok && found
}

// topLevelKeys collects every top-level key of the object at the head of
// window, in source order, duplicates included.
func topLevelKeys(window []byte) []string {
	keys := []string{}
	if !scanObject(window, func(key string, _ []byte) {
		keys = append(keys, key)
	}) {
		return nil
	}
	return keys
}

// scanObject walks the top-level members of the object at the head of
// window, invoking visit with each unescaped key and the raw byte span of
// its value. Returns false when window does not hold an object.
func scanObject(window []byte, visit func(key string, value []byte)) bool {
	i := skipSpace(window, 0)
	if i >= len(window) || window[i] != '{' {
		return false
	}
	i++ // past '{'
	for {
		i = skipSpace(window, i)
		if i >= len(window) {
			return false
		}
		if window[i] == '}' {
			return true
		}
		if window[i] == ',' {
			i = skipSpace(window, i+1)
		}
		if i >= len(window) || window[i] != '"' {
			return false
		}
		raw, next := scanString(window, i)
		if next < 0 {
			return false
		}
		key, ok := unquoteJSON(raw)
		if !ok {
			return false
		}
		i = skipSpace(window, next)
		if i >= len(window) || window[i] != ':' {
			return false
		}
		i = skipSpace(window, i+1)
		end := skipValue(window, i)
		if end < 0 {
			return false
		}
		visit(key, window[i:end])
		i = end
	}
}

// skipSpace advances past JSON whitespace.
func skipSpace(b []byte, i int) int {
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

// scanString scans the string literal starting at b[i]=='"', honoring
// backslash escapes (including escaped quotes and backslashes). Returns
// the raw literal with quotes and the index just past the closing quote,
// or (nil, -1) on truncated input.
func scanString(b []byte, i int) ([]byte, int) {
	start := i
	i++ // past opening quote
	for i < len(b) {
		switch b[i] {
		case '\\':
			i += 2 // the escaped byte can never close the string
		case '"':
			return b[start : i+1], i + 1
		default:
			i++
		}
	}
	return nil, -1
}

// skipValue returns the index just past the JSON value starting at b[i],
// or -1 on truncated input. Container values are skipped by depth
// tracking; string contents (with any nesting punctuation inside) are
// skipped via scanString so braces in strings never confuse the count.
func skipValue(b []byte, i int) int {
	if i >= len(b) {
		return -1
	}
	switch b[i] {
	case '"':
		_, next := scanString(b, i)
		return next
	case '{', '[':
		depth := 0
		for i < len(b) {
			switch b[i] {
			case '"':
				_, next := scanString(b, i)
				if next < 0 {
					return -1
				}
				i = next
			case '{', '[':
				depth++
				i++
			case '}', ']':
				depth--
				i++
				if depth == 0 {
					return i
				}
			default:
				i++
			}
		}
		return -1
	default:
		// Scalar: run to the next structural boundary.
		for i < len(b) {
			switch b[i] {
			case ',', '}', ']', ' ', '\t', '\n', '\r':
				return i
			}
			i++
		}
		return i
	}
}

// unquoteJSON decodes a raw JSON string literal (quotes included) into its
// string value.
func unquoteJSON(raw []byte) (string, bool) {
	var s string
	if err := jsonStd.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
