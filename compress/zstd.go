package compress

// ZstdCompressor compresses payloads with Zstandard, trading some speed for
// the best ratio of the supported algorithms. A good fit for large config
// documents fetched infrequently.
//
// The implementation is selected at build time: cgo builds use
// valyala/gozstd, pure-Go builds use klauspost/compress/zstd. The two are
// stream-compatible.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
