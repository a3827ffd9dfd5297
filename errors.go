// errors.go: typed codec errors
//
// Two failure families cover the whole package (everything else reports
// absence through comma-ok results rather than errors):
//
//   - *DecodeError — the input is not valid JSON, or a value present does
//     not match any recognized Value/Schema alternative (for example a
//     "type" string outside the known set, or a keyword with the wrong
//     shape). Decode is all-or-nothing per document; nothing is recovered
//     internally.
//   - *EncodeError — the in-memory model is well-formed by construction,
//     so encoding only fails when the serializer cannot represent a value
//     (a non-finite float, in practice). Surfaced rather than substituted.
//
// Both carry an optional key path so messages can point at the offending
// spot of a nested document.
package jsonschema

import (
	"fmt"

	"github.com/pkg/errors"
)

// DecodeError reports malformed or unrecognizable input.
//
// Fields:
//   - Path — best-effort location inside the document ("properties.age"),
//     empty at the root.
//   - Msg  — human-readable description of what did not match.
//   - Err  — underlying parser error, when one exists.
type DecodeError struct {
	Path string
	Msg  string
	Err  error
}

func (e *DecodeError) Error() string {
	where := ""
	if e.Path != "" {
		where = " at " + e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("jsonschema: decode%s: %s: %v", where, e.Msg, e.Err)
	}
	return fmt.Sprintf("jsonschema: decode%s: %s", where, e.Msg)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// decodeErrf builds a *DecodeError at the given path.
func decodeErrf(path, format string, args ...interface{}) error {
	return &DecodeError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

// decodeWrap attaches a parser cause to a *DecodeError.
func decodeWrap(err error, path, msg string) error {
	return &DecodeError{Path: path, Msg: msg, Err: errors.WithStack(err)}
}

// EncodeError reports a value the serializer cannot represent.
type EncodeError struct {
	Path string
	Msg  string
	Err  error
}

func (e *EncodeError) Error() string {
	where := ""
	if e.Path != "" {
		where = " at " + e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("jsonschema: encode%s: %s: %v", where, e.Msg, e.Err)
	}
	return fmt.Sprintf("jsonschema: encode%s: %s", where, e.Msg)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func encodeErrf(path, format string, args ...interface{}) error {
	return &EncodeError{Path: path, Msg: fmt.Sprintf(format, args...)}
}
