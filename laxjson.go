// Package laxjson provides a resilient, self-describing value model for
// loosely-typed structured data.
//
// laxjson targets pipelines that ingest third-party or evolving JSON
// payloads (remote config, feature flags, analytics events) where schema
// drift, mixed key casing, and string-encoded primitives are expected
// rather than exceptional.
//
// # Core Features
//
//   - Deterministic key normalization ("betaFeatureX", "BETA-FEATURE-X",
//     and "beta feature x" all address the same key)
//   - Three-tier path resolution: exact, substring, then edit-distance
//     fuzzy matching with an injectable diagnostic reporter
//   - Total type coercion to bool, int, double, string, and date under a
//     fixed rule table (misses yield no-value, never an error)
//   - Immutable decoded trees, safe to share across goroutines
//   - Optional payload compression (Zstd, S2, LZ4) and a fingerprinted
//     snapshot store for polled sources
//
// # Basic Usage
//
//	import "github.com/arloliu/laxjson"
//
//	doc, err := laxjson.DecodeString(`{"flags":{"newUI":"true","retry-count":"3"}}`)
//	if err != nil {
//	    return err
//	}
//
//	enabled, _ := doc.Resolve("flags.new_ui").AsBool() // true
//	retries, _ := doc.Resolve("flags.retry count").AsInt() // 3
//
// Lookups through absent or misspelled paths return value.Null; coercions
// of unconvertible values return ok=false. Only the decode boundary can
// fail hard, with an error wrapping errs.ErrInvalidJSON.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the value
// package. For resolver configuration (custom distance bounds, match
// reporting) and the snapshot store, use the value and snapshot packages
// directly.
package laxjson

import (
	"github.com/arloliu/laxjson/compress"
	"github.com/arloliu/laxjson/format"
	"github.com/arloliu/laxjson/value"
)

// Decode parses a JSON payload into an immutable value tree.
// See value.Decode for the full contract.
func Decode(data []byte) (value.Value, error) {
	return value.Decode(data)
}

// DecodeString parses a JSON payload given as a string.
func DecodeString(data string) (value.Value, error) {
	return value.DecodeString(data)
}

// DecodeCompressed decompresses the payload with the named algorithm, then
// decodes it. CompressionNone makes it equivalent to Decode.
func DecodeCompressed(data []byte, compressionType format.CompressionType) (value.Value, error) {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return value.Null, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return value.Null, err
	}

	return value.Decode(raw)
}
