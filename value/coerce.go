package value

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/laxjson/format"
)

// Coercion engine: every accessor is total. Unconvertible input yields
// ok=false, never an error or panic.

// truthyWords are string spellings coerced to boolean true.
var truthyWords = map[string]bool{"1": true, "true": true, "yes": true, "on": true}

// wordValues maps boolean word spellings to their numeric interpretation,
// used by the int and double coercions.
var wordValues = map[string]float64{
	"true": 1, "yes": 1, "on": 1,
	"false": 0, "no": 0, "off": 0,
}

// dateLayouts are the string timestamp formats tried in order. The first
// layout that parses wins. Layouts without an explicit zone are UTC.
var dateLayouts = []string{
	time.RFC3339Nano, // ISO-8601 with offset, fractional seconds optional
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02-01-2006",
}

// epochMillisThreshold splits the numeric timestamp heuristic: magnitudes
// above it are Unix epoch milliseconds, the rest epoch seconds.
const epochMillisThreshold = 1e12

// AsBool interprets the value as a boolean.
//
// Strings in {"1", "true", "yes", "on"} (case-insensitive) are true; any
// other string yields ok=false rather than false. Numbers map to zero/nonzero.
func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case format.KindBool:
		return v.b, true
	case format.KindNumber:
		return v.num != 0, true
	case format.KindString:
		if truthyWords[strings.ToLower(v.str)] {
			return true, true
		}

		return false, false
	default:
		return false, false
	}
}

// AsInt interprets the value as a 64-bit integer, truncating fractional
// parts toward zero.
//
// Strings are tried as integer text, then float text (truncated), then as
// boolean words (true/yes/on -> 1, false/no/off -> 0).
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case format.KindNumber:
		return truncInt(v.num)
	case format.KindBool:
		if v.b {
			return 1, true
		}

		return 0, true
	case format.KindString:
		if n, err := strconv.ParseInt(v.str, 10, 64); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(v.str, 64); err == nil {
			return truncInt(f)
		}
		if f, ok := wordValues[strings.ToLower(v.str)]; ok {
			return int64(f), true
		}

		return 0, false
	default:
		return 0, false
	}
}

// AsFloat interprets the value as a 64-bit float.
//
// Strings are tried as float text (which subsumes integer text), then as
// boolean words (1.0/0.0).
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case format.KindNumber:
		return v.num, true
	case format.KindBool:
		if v.b {
			return 1.0, true
		}

		return 0.0, true
	case format.KindString:
		if f, err := strconv.ParseFloat(v.str, 64); err == nil {
			return f, true
		}
		if f, ok := wordValues[strings.ToLower(v.str)]; ok {
			return f, true
		}

		return 0, false
	default:
		return 0, false
	}
}

// AsString interprets the value as text.
//
// Integral-valued numbers render as decimal integers without a trailing
// ".0"; other numbers render as plain decimal float text. Booleans render
// as "true"/"false". Objects, arrays, and null yield ok=false.
func (v Value) AsString() (string, bool) {
	switch v.kind {
	case format.KindString:
		return v.str, true
	case format.KindNumber:
		if v.num == math.Trunc(v.num) && !math.IsInf(v.num, 0) &&
			v.num >= math.MinInt64 && v.num < math.MaxInt64 {
			return strconv.FormatInt(int64(v.num), 10), true
		}

		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	case format.KindBool:
		return strconv.FormatBool(v.b), true
	default:
		return "", false
	}
}

// AsTime interprets the value as a UTC calendar timestamp.
//
// String input is matched against, in order: ISO-8601 with offset
// (fractional seconds optional), "yyyy-MM-dd HH:mm:ss" (UTC assumed),
// "yyyy-MM-dd" (midnight UTC), "MM/dd/yyyy", and "dd-MM-yyyy".
//
// Numeric input is a Unix epoch: magnitudes above 1e12 are milliseconds,
// the rest seconds. The single threshold is a deliberate simplification;
// millisecond timestamps from 2001 onward already exceed it.
func (v Value) AsTime() (time.Time, bool) {
	switch v.kind {
	case format.KindString:
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, v.str, time.UTC); err == nil {
				return t.UTC(), true
			}
		}

		return time.Time{}, false
	case format.KindNumber:
		n, ok := truncInt(v.num)
		if !ok {
			return time.Time{}, false
		}

		if math.Abs(v.num) > epochMillisThreshold {
			return time.UnixMilli(n).UTC(), true
		}

		return time.Unix(n, 0).UTC(), true
	default:
		return time.Time{}, false
	}
}

// AsKind routes to the typed accessor matching the requested primitive kind.
//
// The result is the accessor's native type: bool, int64, float64, string, or
// time.Time. Unknown kinds and failed coercions yield ok=false.
func (v Value) AsKind(kind format.PrimitiveKind) (any, bool) {
	switch kind {
	case format.PrimitiveBool:
		b, ok := v.AsBool()
		return b, ok
	case format.PrimitiveInt:
		n, ok := v.AsInt()
		return n, ok
	case format.PrimitiveDouble:
		f, ok := v.AsFloat()
		return f, ok
	case format.PrimitiveString:
		s, ok := v.AsString()
		return s, ok
	case format.PrimitiveDate:
		t, ok := v.AsTime()
		return t, ok
	default:
		return nil, false
	}
}

// truncInt truncates a float toward zero, rejecting NaN, infinities, and
// values outside the int64 range.
func truncInt(f float64) (int64, bool) {
	// math.MaxInt64 rounds up to 2^63 as a float64, so the bound is exclusive.
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}
