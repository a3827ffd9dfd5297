// format.go — the "format" keyword for string schemas.
//
// StringFormat is an open enumeration: the draft-2020-12 named formats get
// constants, and any other wire string is carried through untouched, so
// decoding a format never fails and unknown formats round-trip verbatim.
package jsonschema

// StringFormat is a string-format identifier as it appears on the wire
// ("date-time", "uuid", ...). Values outside the named set are custom
// formats and are preserved as-is.
type StringFormat string

// The named formats of JSON Schema draft-2020-12.
const (
	FormatDateTime            StringFormat = "date-time"
	FormatDate                StringFormat = "date"
	FormatTime                StringFormat = "time"
	FormatDuration            StringFormat = "duration"
	FormatEmail               StringFormat = "email"
	FormatIDNEmail            StringFormat = "idn-email"
	FormatHostname            StringFormat = "hostname"
	FormatIDNHostname         StringFormat = "idn-hostname"
	FormatIPv4                StringFormat = "ipv4"
	FormatIPv6                StringFormat = "ipv6"
	FormatURI                 StringFormat = "uri"
	FormatURIReference        StringFormat = "uri-reference"
	FormatIRIReference        StringFormat = "iri-reference"
	FormatURITemplate         StringFormat = "uri-template"
	FormatJSONPointer         StringFormat = "json-pointer"
	FormatRelativeJSONPointer StringFormat = "relative-json-pointer"
	FormatRegex               StringFormat = "regex"
	FormatUUID                StringFormat = "uuid"
)

var namedFormats = map[StringFormat]bool{
	FormatDateTime:            true,
	FormatDate:                true,
	FormatTime:                true,
	FormatDuration:            true,
	FormatEmail:               true,
	FormatIDNEmail:            true,
	FormatHostname:            true,
	FormatIDNHostname:         true,
	FormatIPv4:                true,
	FormatIPv6:                true,
	FormatURI:                 true,
	FormatURIReference:        true,
	FormatIRIReference:        true,
	FormatURITemplate:         true,
	FormatJSONPointer:         true,
	FormatRelativeJSONPointer: true,
	FormatRegex:               true,
	FormatUUID:                true,
}

// Known reports whether f is one of the named draft-2020-12 formats (as
// opposed to a custom pass-through value).
func (f StringFormat) Known() bool { return namedFormats[f] }

// ParseFormat maps a wire string to a StringFormat. Total over all inputs:
// unrecognized strings come back unchanged as custom formats.
func ParseFormat(s string) StringFormat { return StringFormat(s) }
