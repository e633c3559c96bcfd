package compress

// ZstdCompressor provides Zstandard compression for marshal images.
//
// Zstandard is the algorithm the foreign runtime itself uses for the
// compressed-magic header variant, so this codec sits on the core decode
// path: the decoder hands it the value stream that follows a compressed
// header and expects the uncompressed stream back.
//
// The implementation is selected at build time: the pure-Go
// klauspost/compress backend is the default, with a cgo gozstd backend
// available behind a build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
