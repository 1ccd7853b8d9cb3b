// Package value implements laxjson's resilient value model: an immutable,
// recursive representation of a decoded JSON document with normalized object
// keys, three-tier fuzzy path resolution, and a total type-coercion engine.
//
// # Core Types
//
// **Value**: Tagged union over the six JSON variants (object, array, string,
// number, bool, null). Built once at decode time and read-only thereafter,
// so a Value tree is safe to share across goroutines without locking.
//
// **Resolver**: Walks dot-delimited paths through a Value tree, matching
// each segment against object keys exactly, by substring containment, or by
// bounded edit distance, in that order.
//
// # Basic Usage
//
//	doc, err := value.Decode(payload)
//	if err != nil {
//	    return err
//	}
//
//	// Typo-, case-, and delimiter-tolerant navigation.
//	enabled, ok := doc.Resolve("flags.new-ui").AsBool()
//
// Missing keys, wrong paths, and unconvertible values never fail hard: the
// resolver returns value.Null and the coercion accessors return ok=false.
package value

import "github.com/arloliu/laxjson/format"

// Value is an immutable node of a decoded JSON document.
//
// Object keys are stored in normalized form only (see the norm package); the
// raw spelling is discarded at construction. When two distinct raw keys
// normalize identically, the last one decoded wins.
//
// The zero Value is Null. Null doubles as the JSON null literal and the
// sentinel for failed lookups; callers cannot distinguish the two.
type Value struct {
	obj  map[string]Value
	keys []string // normalized keys in decode order, drives deterministic scans
	arr  []Value
	str  string
	num  float64
	b    bool
	kind format.Kind
}

// Null is the shared null/lookup-miss sentinel.
var Null = Value{kind: format.KindNull}

// Kind returns the variant of the value.
func (v Value) Kind() format.Kind {
	return v.kind
}

// IsNull reports whether the value is JSON null or the result of a failed
// lookup. The two cases are indistinguishable.
func (v Value) IsNull() bool {
	return v.kind == format.KindNull
}

// Object returns the normalized-key mapping of an object value.
//
// The returned map is the value's internal storage and must be treated as
// read-only. Returns ok=false for any non-object variant.
func (v Value) Object() (map[string]Value, bool) {
	if v.kind != format.KindObject {
		return nil, false
	}

	return v.obj, true
}

// Keys returns the object's normalized keys in decode order, or nil for any
// non-object variant. The returned slice must be treated as read-only.
func (v Value) Keys() []string {
	if v.kind != format.KindObject {
		return nil
	}

	return v.keys
}

// Array returns the ordered elements of an array value.
//
// The returned slice is the value's internal storage and must be treated as
// read-only. Returns ok=false for any non-array variant.
func (v Value) Array() ([]Value, bool) {
	if v.kind != format.KindArray {
		return nil, false
	}

	return v.arr, true
}

// Len returns the number of elements of an array, the number of keys of an
// object, and 0 for every other variant.
func (v Value) Len() int {
	switch v.kind {
	case format.KindArray:
		return len(v.arr)
	case format.KindObject:
		return len(v.keys)
	default:
		return 0
	}
}

// Index returns the i-th element of an array value, or Null when the value
// is not an array or the index is out of range.
func (v Value) Index(i int) Value {
	if v.kind != format.KindArray || i < 0 || i >= len(v.arr) {
		return Null
	}

	return v.arr[i]
}
