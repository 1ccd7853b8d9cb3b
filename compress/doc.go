// Package compress provides compression and decompression codecs for laxjson
// document payloads.
//
// Remote-config and analytics payloads frequently travel compressed. This
// package lets callers hand laxjson the bytes as delivered and name the
// algorithm, instead of decompressing by hand before decoding.
//
// Supported algorithms:
//   - None: No compression (pass-through)
//   - Zstd: Best ratio for large documents, moderate speed
//   - S2: Balanced ratio and speed
//   - LZ4: Fastest decompression, moderate ratio
//
// The Zstd codec selects its implementation at build time: the cgo build
// uses valyala/gozstd, the pure-Go build uses klauspost/compress/zstd.
// Both produce interchangeable streams.
//
// Codecs are stateless value types; pooled encoder/decoder state is managed
// internally, so a single codec is safe for concurrent use.
package compress
