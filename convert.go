// convert.go — tolerant scalar conversions on Value.
//
// Each conversion comes in a strict and a non-strict mode. Strict accepts
// only the exact tag; non-strict additionally accepts the conventional
// cross-type readings below. A failed conversion is an expected outcome for
// callers probing compatibility, so every function reports absence with a
// comma-ok result and never returns an error.
//
//	AsBool  strict: VBool.      loose: Int/Num 0 and 1, and the literal
//	        string tokens true,t,yes,y,on,1 / false,f,no,n,off,0
//	        (case-sensitive).
//	AsInt   strict: VInt.       loose: VNum with no fractional part that
//	        fits int64, and VStr parsing as base-10 integer.
//	AsNum   strict: VNum, VInt. loose: VStr parsing as a float.
//	AsStr   strict: VStr.       loose: canonical text of int, num, bool.
//
// Non-exact values never convert even non-strictly: AsInt(Num(42.5), loose)
// has no result.
package jsonschema

import (
	"math"
	"strconv"
)

// AsBool converts v to a native bool. See the file comment for the accepted
// forms per mode.
func (v Value) AsBool(strict bool) (bool, bool) {
	switch v.Tag {
	case VBool:
		return v.Data.(bool), true
	case VInt:
		if strict {
			return false, false
		}
		switch v.Data.(int64) {
		case 0:
			return false, true
		case 1:
			return true, true
		}
	case VNum:
		if strict {
			return false, false
		}
		switch v.Data.(float64) {
		case 0.0:
			return false, true
		case 1.0:
			return true, true
		}
	case VStr:
		if strict {
			return false, false
		}
		switch v.Data.(string) {
		case "true", "t", "yes", "y", "on", "1":
			return true, true
		case "false", "f", "no", "n", "off", "0":
			return false, true
		}
	}
	return false, false
}

// AsInt converts v to a native int64.
func (v Value) AsInt(strict bool) (int64, bool) {
	switch v.Tag {
	case VInt:
		return v.Data.(int64), true
	case VNum:
		if strict {
			return 0, false
		}
		f := v.Data.(float64)
		if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		// Exact int64 range check; the extremes of float64 overshoot.
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	case VStr:
		if strict {
			return 0, false
		}
		if i, err := strconv.ParseInt(v.Data.(string), 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

// AsNum converts v to a native float64. An Int is always convertible, even
// in strict mode.
func (v Value) AsNum(strict bool) (float64, bool) {
	switch v.Tag {
	case VNum:
		return v.Data.(float64), true
	case VInt:
		return float64(v.Data.(int64)), true
	case VStr:
		if strict {
			return 0, false
		}
		if f, err := strconv.ParseFloat(v.Data.(string), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// AsStr converts v to a native string.
func (v Value) AsStr(strict bool) (string, bool) {
	switch v.Tag {
	case VStr:
		return v.Data.(string), true
	case VInt:
		if strict {
			return "", false
		}
		return strconv.FormatInt(v.Data.(int64), 10), true
	case VNum:
		if strict {
			return "", false
		}
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64), true
	case VBool:
		if strict {
			return "", false
		}
		return strconv.FormatBool(v.Data.(bool)), true
	}
	return "", false
}
