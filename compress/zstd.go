package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// The default build uses the pure-Go klauspost/compress implementation.
// Building with the gozstd tag (and cgo) switches to valyala/gozstd, which
// binds the reference C library.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
