package jsonschema

import (
	"testing"
)

func Test_Format_OpenEnum(t *testing.T) {
	if !FormatDateTime.Known() || !FormatUUID.Known() || !FormatEmail.Known() {
		t.Fatalf("named formats must report Known")
	}
	if StringFormat("x-my-format").Known() {
		t.Fatalf("custom formats are not Known")
	}

	if f := ParseFormat("date-time"); f != FormatDateTime {
		t.Fatalf("ParseFormat(date-time) = %q", f)
	}
	// ParseFormat is total: anything unrecognized passes through verbatim.
	if f := ParseFormat("x-my-format"); f != "x-my-format" || f.Known() {
		t.Fatalf("custom format must pass through untouched: %q", f)
	}
	if f := ParseFormat(""); f != "" {
		t.Fatalf("empty format must pass through: %q", f)
	}
}
