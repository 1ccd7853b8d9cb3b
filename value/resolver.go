package value

import (
	"strings"

	"github.com/arloliu/laxjson/format"
	"github.com/arloliu/laxjson/internal/options"
	"github.com/arloliu/laxjson/norm"
)

// ReportFunc observes inexact key matches during resolution. It receives the
// original path segment and the key it was matched to whenever a partial or
// fuzzy match (not an exact one) was used.
//
// The callback is fire-and-forget: its absence or behavior never alters
// resolution results. Suitable for logging or metrics.
type ReportFunc func(segment, matchedKey string)

// DefaultMaxDistance is the edit-distance bound for fuzzy key matching.
const DefaultMaxDistance = 2

// Resolver walks dot-delimited paths through a Value tree.
//
// Each path segment is normalized and matched against the current object's
// key set in strict tier order, stopping at the first tier that yields a
// candidate:
//
//  1. Exact: the normalized segment is present verbatim as a key.
//  2. Partial: the first key (in decode order) containing the segment as a
//     substring.
//  3. Fuzzy: among keys within the edit-distance bound, the one with the
//     smallest Levenshtein distance, ties broken by decode order.
//
// Resolution never fails: an unmatched segment, or descent into a
// non-object, yields Null for the remainder of the path.
//
// A Resolver is stateless apart from its configuration and is safe for
// concurrent use.
type Resolver struct {
	report      ReportFunc
	maxDistance int
}

// ResolverOption is a functional option for Resolver.
type ResolverOption = options.Option[*Resolver]

// WithReporter sets the diagnostic callback invoked on partial and fuzzy
// matches. The default is no reporting.
func WithReporter(fn ReportFunc) ResolverOption {
	return options.NoError(func(r *Resolver) {
		r.report = fn
	})
}

// WithMaxDistance sets the edit-distance bound for fuzzy matching.
// A bound of 0 disables Tier 3 entirely. The default is DefaultMaxDistance.
func WithMaxDistance(distance int) ResolverOption {
	return options.NoError(func(r *Resolver) {
		if distance < 0 {
			distance = 0
		}
		r.maxDistance = distance
	})
}

// NewResolver creates a resolver with the given options.
func NewResolver(opts ...ResolverOption) (*Resolver, error) {
	r := &Resolver{maxDistance: DefaultMaxDistance}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Resolve splits path on '.' and folds over the segments starting at root.
// Every intermediate segment must land on an object; anything else
// short-circuits to Null.
func (r *Resolver) Resolve(root Value, path string) Value {
	current := root
	for _, segment := range strings.Split(path, ".") {
		current = r.Lookup(current, segment)
		if current.IsNull() {
			return Null
		}
	}

	return current
}

// Lookup resolves a single key against the top-level keys of v using the
// three-tier strategy. It is relative to v, not to any document root.
func (r *Resolver) Lookup(v Value, key string) Value {
	if v.kind != format.KindObject {
		return Null
	}

	segment := norm.Normalize(key)
	if segment == "" {
		return Null
	}

	// Tier 1: exact normalized match.
	if child, ok := v.obj[segment]; ok {
		return child
	}

	// Tier 2: substring containment, first key in decode order.
	for _, k := range v.keys {
		if strings.Contains(k, segment) {
			r.reportMatch(key, k)

			return v.obj[k]
		}
	}

	// Tier 3: bounded edit distance, smallest first, decode order on ties.
	best := ""
	bestDist := r.maxDistance + 1
	for _, k := range v.keys {
		if d := norm.Distance(segment, k); d < bestDist {
			best = k
			bestDist = d
		}
	}
	if best != "" {
		r.reportMatch(key, best)

		return v.obj[best]
	}

	return Null
}

func (r *Resolver) reportMatch(segment, matchedKey string) {
	if r.report != nil {
		r.report(segment, matchedKey)
	}
}

var defaultResolver = &Resolver{maxDistance: DefaultMaxDistance}

// Get resolves a single key against the value's top-level keys with the
// default resolver (distance bound 2, no reporting).
func (v Value) Get(key string) Value {
	return defaultResolver.Lookup(v, key)
}

// Resolve resolves a dot-delimited path from the value with the default
// resolver (distance bound 2, no reporting).
func (v Value) Resolve(path string) Value {
	return defaultResolver.Resolve(v, path)
}
