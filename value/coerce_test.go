package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/laxjson/format"
)

func scalar(t *testing.T, data string) Value {
	t.Helper()
	v, err := DecodeString(data)
	require.NoError(t, err)

	return v
}

func TestAsBool_TruthyWords(t *testing.T) {
	for _, s := range []string{`"1"`, `"true"`, `"TRUE"`, `"yes"`, `"Yes"`, `"on"`, `"ON"`} {
		b, ok := scalar(t, s).AsBool()
		require.True(t, ok, "input %s", s)
		require.True(t, b, "input %s", s)
	}
}

func TestAsBool_UnrecognizedWordsYieldNone(t *testing.T) {
	// "0", "false", and arbitrary words are no-value, not false.
	for _, s := range []string{`"0"`, `"false"`, `"off"`, `"no"`, `"maybe"`, `""`} {
		_, ok := scalar(t, s).AsBool()
		require.False(t, ok, "input %s", s)
	}
}

func TestAsBool_Number(t *testing.T) {
	b, ok := scalar(t, `1`).AsBool()
	require.True(t, ok)
	require.True(t, b)

	b, ok = scalar(t, `-3.5`).AsBool()
	require.True(t, ok)
	require.True(t, b)

	b, ok = scalar(t, `0`).AsBool()
	require.True(t, ok)
	require.False(t, b)
}

func TestAsBool_Identity(t *testing.T) {
	b, ok := scalar(t, `true`).AsBool()
	require.True(t, ok)
	require.True(t, b)

	b, ok = scalar(t, `false`).AsBool()
	require.True(t, ok)
	require.False(t, b)
}

func TestAsBool_None(t *testing.T) {
	for _, s := range []string{`null`, `{}`, `[]`} {
		_, ok := scalar(t, s).AsBool()
		require.False(t, ok, "input %s", s)
	}
}

func TestAsInt_NumericStrings(t *testing.T) {
	n, ok := scalar(t, `"25"`).AsInt()
	require.True(t, ok)
	require.Equal(t, int64(25), n)

	// Truncation toward zero, not rounding.
	n, ok = scalar(t, `"25.9"`).AsInt()
	require.True(t, ok)
	require.Equal(t, int64(25), n)

	n, ok = scalar(t, `"-25.9"`).AsInt()
	require.True(t, ok)
	require.Equal(t, int64(-25), n)
}

func TestAsInt_BooleanWords(t *testing.T) {
	for s, want := range map[string]int64{
		`"true"`: 1, `"yes"`: 1, `"on"`: 1,
		`"false"`: 0, `"no"`: 0, `"off"`: 0,
	} {
		n, ok := scalar(t, s).AsInt()
		require.True(t, ok, "input %s", s)
		require.Equal(t, want, n, "input %s", s)
	}

	_, ok := scalar(t, `"maybe"`).AsInt()
	require.False(t, ok)
}

func TestAsInt_NumberAndBool(t *testing.T) {
	n, ok := scalar(t, `25.9`).AsInt()
	require.True(t, ok)
	require.Equal(t, int64(25), n)

	n, ok = scalar(t, `-25.9`).AsInt()
	require.True(t, ok)
	require.Equal(t, int64(-25), n)

	n, ok = scalar(t, `true`).AsInt()
	require.True(t, ok)
	require.Equal(t, int64(1), n)

	n, ok = scalar(t, `false`).AsInt()
	require.True(t, ok)
	require.Equal(t, int64(0), n)
}

func TestAsFloat(t *testing.T) {
	f, ok := scalar(t, `"12.5"`).AsFloat()
	require.True(t, ok)
	require.Equal(t, 12.5, f)

	f, ok = scalar(t, `"12"`).AsFloat()
	require.True(t, ok)
	require.Equal(t, 12.0, f)

	f, ok = scalar(t, `"on"`).AsFloat()
	require.True(t, ok)
	require.Equal(t, 1.0, f)

	f, ok = scalar(t, `"off"`).AsFloat()
	require.True(t, ok)
	require.Equal(t, 0.0, f)

	f, ok = scalar(t, `true`).AsFloat()
	require.True(t, ok)
	require.Equal(t, 1.0, f)

	_, ok = scalar(t, `"words"`).AsFloat()
	require.False(t, ok)

	_, ok = scalar(t, `null`).AsFloat()
	require.False(t, ok)
}

func TestAsString_Numbers(t *testing.T) {
	// Integral values render without a trailing ".0".
	s, ok := scalar(t, `2.0`).AsString()
	require.True(t, ok)
	require.Equal(t, "2", s)

	s, ok = scalar(t, `-7`).AsString()
	require.True(t, ok)
	require.Equal(t, "-7", s)

	s, ok = scalar(t, `12.5`).AsString()
	require.True(t, ok)
	require.Equal(t, "12.5", s)
}

func TestAsString_BoolRoundTrip(t *testing.T) {
	s, ok := scalar(t, `true`).AsString()
	require.True(t, ok)
	require.Equal(t, "true", s)

	got, ok := FromToken(s).AsBool()
	require.True(t, ok)
	require.True(t, got)

	// "false" is textual but not a truthy word, so the reverse coercion
	// degrades to no-value rather than false. The string rule table has no
	// falsy word set.
	s, ok = scalar(t, `false`).AsString()
	require.True(t, ok)
	require.Equal(t, "false", s)

	_, ok = FromToken(s).AsBool()
	require.False(t, ok)
}

func TestAsString_None(t *testing.T) {
	for _, s := range []string{`null`, `{}`, `[1]`} {
		_, ok := scalar(t, s).AsString()
		require.False(t, ok, "input %s", s)
	}
}

func TestAsTime_StringFormats(t *testing.T) {
	cases := map[string]time.Time{
		`"2024-01-01T12:34:56Z"`:          time.Date(2024, 1, 1, 12, 34, 56, 0, time.UTC),
		`"2024-01-01T12:34:56.789Z"`:      time.Date(2024, 1, 1, 12, 34, 56, 789000000, time.UTC),
		`"2024-01-01T12:34:56+02:00"`:     time.Date(2024, 1, 1, 10, 34, 56, 0, time.UTC),
		`"2024-01-01 12:34:56"`:           time.Date(2024, 1, 1, 12, 34, 56, 0, time.UTC),
		`"2024-01-01"`:                    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		`"03/15/2024"`:                    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		`"15-03-2024"`:                    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	for input, want := range cases {
		got, ok := scalar(t, input).AsTime()
		require.True(t, ok, "input %s", input)
		require.True(t, got.Equal(want), "input %s: got %v want %v", input, got, want)
	}

	_, ok := scalar(t, `"not a date"`).AsTime()
	require.False(t, ok)
}

func TestAsTime_EpochHeuristic(t *testing.T) {
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Seconds below the 1e12 threshold, milliseconds above: same instant.
	got, ok := scalar(t, `1704067200`).AsTime()
	require.True(t, ok)
	require.True(t, got.Equal(want))

	got, ok = scalar(t, `1704067200000`).AsTime()
	require.True(t, ok)
	require.True(t, got.Equal(want))
}

func TestAsTime_None(t *testing.T) {
	for _, s := range []string{`true`, `null`, `{}`, `[]`} {
		_, ok := scalar(t, s).AsTime()
		require.False(t, ok, "input %s", s)
	}
}

func TestAsKind_Dispatch(t *testing.T) {
	v := scalar(t, `"42"`)

	got, ok := v.AsKind(format.PrimitiveInt)
	require.True(t, ok)
	require.Equal(t, int64(42), got)

	got, ok = v.AsKind(format.PrimitiveDouble)
	require.True(t, ok)
	require.Equal(t, 42.0, got)

	got, ok = v.AsKind(format.PrimitiveString)
	require.True(t, ok)
	require.Equal(t, "42", got)

	_, ok = v.AsKind(format.PrimitiveDate)
	require.False(t, ok)

	_, ok = v.AsKind(format.PrimitiveKind(99))
	require.False(t, ok)
}

func TestAsKind_Date(t *testing.T) {
	got, ok := scalar(t, `"2024-01-01"`).AsKind(format.PrimitiveDate)
	require.True(t, ok)
	require.True(t, got.(time.Time).Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}
