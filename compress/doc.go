// Package compress provides the compression codecs the decoder uses for
// marshal images.
//
// Two call sites exist: the compressed-magic header variant, whose value
// stream is a Zstandard frame, and whole-image transport compression
// (intern.DecodeCompressed), where a caller received an entire marshal image
// compressed with Zstd, S2, or LZ4.
//
// Codecs are stateless value types; the zstd codec pools its encoder and
// decoder instances internally and is safe for concurrent use.
package compress
