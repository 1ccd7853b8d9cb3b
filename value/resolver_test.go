package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, data string) Value {
	t.Helper()
	v, err := DecodeString(data)
	require.NoError(t, err)

	return v
}

func TestResolver_Tier1_Exact(t *testing.T) {
	v := mustDecode(t, `{"beta_feature": 1, "beta": 2}`)

	n, ok := v.Get("beta").AsInt()
	require.True(t, ok)
	require.Equal(t, int64(2), n)
}

func TestResolver_ExactBeatsPartial(t *testing.T) {
	// "flags" contains "flag", but the exact key must win.
	v := mustDecode(t, `{"flags": 1, "flag": 2}`)

	n, ok := v.Get("flag").AsInt()
	require.True(t, ok)
	require.Equal(t, int64(2), n)
}

func TestResolver_Tier2_Containment(t *testing.T) {
	v := mustDecode(t, `{"beta_feature": 1, "new_ui": 2}`)

	n, ok := v.Get("new-u").AsInt()
	require.True(t, ok)
	require.Equal(t, int64(2), n)
}

func TestResolver_Tier2_DecodeOrderWins(t *testing.T) {
	v := mustDecode(t, `{"feature_one": 1, "feature_two": 2}`)

	n, ok := v.Get("feature").AsInt()
	require.True(t, ok)
	require.Equal(t, int64(1), n)
}

func TestResolver_Tier3_Fuzzy(t *testing.T) {
	v := mustDecode(t, `{"abcde": 1}`)

	// Distance exactly 2 resolves.
	n, ok := v.Get("abfge").AsInt()
	require.True(t, ok)
	require.Equal(t, int64(1), n)

	// Distance 3 with no closer alternative resolves to Null.
	require.True(t, v.Get("abfgh").IsNull())
}

func TestResolver_Tier3_SmallestDistanceWins(t *testing.T) {
	v := mustDecode(t, `{"abcdxy": 1, "abcdef": 2}`)

	// Query at distance 2 from abcdxy but 1 from abcdef; the smaller
	// distance wins even though the farther key decodes first.
	n, ok := v.Get("abcdez").AsInt()
	require.True(t, ok)
	require.Equal(t, int64(2), n)
}

func TestResolver_Tier3_TieBreaksByDecodeOrder(t *testing.T) {
	// Both keys at distance 1 from the query; first decoded wins.
	v := mustDecode(t, `{"abcx": 1, "abcy": 2}`)

	n, ok := v.Get("abcz").AsInt()
	require.True(t, ok)
	require.Equal(t, int64(1), n)
}

func TestResolver_Resolve_Path(t *testing.T) {
	v := mustDecode(t, `{"flags": {"beta_feature": false, "new_ui": "true"}}`)

	b, ok := v.Resolve("flags.new_ui").AsBool()
	require.True(t, ok)
	require.True(t, b)

	b, ok = v.Resolve("flags.beta_feature").AsBool()
	require.True(t, ok)
	require.False(t, b)

	require.True(t, v.Resolve("does.not.exist").IsNull())
}

func TestResolver_Resolve_ShortCircuitOnScalar(t *testing.T) {
	v := mustDecode(t, `{"name": "svc"}`)

	// Descending through a scalar yields Null, not an error.
	require.True(t, v.Resolve("name.deeper.still").IsNull())
}

func TestResolver_Lookup_Relative(t *testing.T) {
	root := mustDecode(t, `{"outer": {"inner": 42}}`)

	// Lookup is relative to its receiver, not the document root.
	require.True(t, root.Get("inner").IsNull())

	n, ok := root.Get("outer").Get("inner").AsInt()
	require.True(t, ok)
	require.Equal(t, int64(42), n)
}

func TestResolver_EmptySegment(t *testing.T) {
	v := mustDecode(t, `{"a": 1}`)

	require.True(t, v.Get("").IsNull())
	require.True(t, v.Resolve("").IsNull())
	require.True(t, v.Resolve("a.").IsNull())
}

func TestResolver_NonObjectReceiver(t *testing.T) {
	v := mustDecode(t, `[1, 2, 3]`)
	require.True(t, v.Get("anything").IsNull())
	require.True(t, Null.Get("anything").IsNull())
}

func TestResolver_Reporter_FiresOnInexactOnly(t *testing.T) {
	v := mustDecode(t, `{"flags": {"new_ui": "true"}}`)

	type match struct{ segment, key string }
	var matches []match

	r, err := NewResolver(WithReporter(func(segment, matchedKey string) {
		matches = append(matches, match{segment, matchedKey})
	}))
	require.NoError(t, err)

	// Tier 1 never reports.
	require.False(t, r.Resolve(v, "flags.new_ui").IsNull())
	require.Empty(t, matches)

	// Tier 2 reports the original segment and the matched key.
	require.False(t, r.Resolve(v, "flags.new-u").IsNull())
	require.Equal(t, []match{{"new-u", "new_ui"}}, matches)

	// Tier 3 reports as well.
	matches = nil
	require.False(t, r.Resolve(v, "flags.NEWUI").IsNull())
	require.Equal(t, []match{{"NEWUI", "new_ui"}}, matches)
}

func TestResolver_WithMaxDistance(t *testing.T) {
	v := mustDecode(t, `{"abcde": 1}`)

	wide, err := NewResolver(WithMaxDistance(3))
	require.NoError(t, err)
	require.False(t, wide.Lookup(v, "abfgh").IsNull())

	strict, err := NewResolver(WithMaxDistance(0))
	require.NoError(t, err)
	require.True(t, strict.Lookup(v, "abfge").IsNull())
}

func TestResolver_SpecScenario(t *testing.T) {
	v := mustDecode(t, `{"flags": {"beta_feature": false, "new_ui": "true"}}`)

	for _, path := range []string{"flags.new-u", "flags.NEWUI", "flags.new ui"} {
		b, ok := v.Resolve(path).AsBool()
		require.True(t, ok, "path %q", path)
		require.True(t, b, "path %q", path)
	}
}
