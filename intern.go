// Package intern decodes the foreign runtime's native binary serialization
// format (its "extern" output) into an in-memory, language-neutral value
// tree, so programs outside that runtime can consume data it produced.
//
// # Basic Usage
//
// Callers supply a byte buffer — read from a file, a socket, an embedded
// resource, wherever — and get back the parsed header and one top-level
// value:
//
//	import "github.com/camlkit/intern"
//
//	hdr, value, err := intern.Decode(data)
//	if err != nil {
//	    return err
//	}
//
//	switch v := value.(type) {
//	case intern.Integer:
//	    fmt.Println("int:", int64(v))
//	case *intern.Block:
//	    fmt.Println("constructor tag:", v.Tag, "arity:", len(v.Fields))
//	}
//
// Shared and cyclic structure is preserved: two fields that referenced one
// object on the wire decode to the same Go pointer.
//
// For images whose transport compressed the whole buffer:
//
//	hdr, value, err := intern.DecodeCompressed(data, format.CompressionLZ4)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the marshal
// package, simplifying the most common use cases. For decoder options such
// as recursion-depth caps on untrusted input, use the marshal package
// directly.
package intern

import (
	"github.com/camlkit/intern/compress"
	"github.com/camlkit/intern/format"
	"github.com/camlkit/intern/internal/hash"
	"github.com/camlkit/intern/marshal"
)

// Re-exported value model, so simple consumers only import one package.
type (
	Header  = marshal.Header
	Value   = marshal.Value
	Integer = marshal.Integer
	Float   = marshal.Float
	Bytes   = marshal.Bytes
	Doubles = marshal.Doubles
	Block   = marshal.Block
	Custom  = marshal.Custom
)

// Decode decodes one marshal image: header first, then exactly one top-level
// value. Each call is independent; identical input bytes yield structurally
// identical results.
func Decode(data []byte) (Header, Value, error) {
	return marshal.NewDecoder(data).Decode()
}

// DecodeCompressed decodes a marshal image whose entire buffer was
// compressed in transit or at rest. The image is decompressed with the given
// codec, then decoded as usual. CompressionNone makes the call equivalent to
// Decode.
//
// This is distinct from the compressed-magic header variant, which Decode
// handles transparently: there the producer compressed only the value
// stream, here some transport compressed the whole image.
func DecodeCompressed(data []byte, compression format.CompressionType) (Header, Value, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return Header{}, nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return Header{}, nil, err
	}

	return Decode(raw)
}

// Fingerprint returns a 64-bit structural digest of a decoded value. The
// digest is stable across decodes of the same image and distinguishes
// aliased from merely equal substructure, which makes it a cheap identity
// for caching or deduplicating decoded trees.
func Fingerprint(v Value) uint64 {
	return hash.Fingerprint(v)
}
