// Package norm provides deterministic key normalization and string edit
// distance, the two pure building blocks of laxjson's fuzzy key resolution.
package norm

import (
	"strings"
	"unicode"
)

// Normalize converts an arbitrary key spelling into its canonical
// delimiter-joined lowercase form.
//
// The algorithm treats '-', '_', and whitespace runs as segment delimiters,
// additionally splits where a lowercase letter or digit is immediately
// followed by an uppercase letter (camelCase/PascalCase boundary), lowercases
// every segment, and joins the segments with single '_' delimiters.
//
// Examples:
//
//	Normalize("betaFeatureX")   // "beta_feature_x"
//	Normalize("BETA-FEATURE-X") // "beta_feature_x"
//	Normalize("Feature Toggle") // "feature_toggle"
//	Normalize("FEATURETOGGLE")  // "featuretoggle"
//
// An all-caps run carries no boundary signal, so it stays a single segment.
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw) + 4)

	pending := false // a delimiter run awaits the next segment character
	prev := rune(0)

	for _, r := range raw {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			if sb.Len() > 0 {
				pending = true
			}
			prev = 0

			continue
		}

		boundary := unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev))
		if pending || boundary {
			if sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pending = false
		}

		sb.WriteRune(unicode.ToLower(r))
		prev = r
	}

	return sb.String()
}
