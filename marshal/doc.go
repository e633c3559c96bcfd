// Package marshal decodes the foreign runtime's native binary serialization
// format into a language-neutral value tree.
//
// A Decoder wraps one immutable byte buffer and produces exactly one
// top-level Value plus the parsed Header. Decoding is a pure function of the
// input: fully synchronous, no shared state across calls, deterministic for
// identical bytes.
//
// Shared and cyclic structure survives decoding. Sharable values (bytes,
// float sequences, blocks, custom blocks) are pointer-shaped and registered
// in an object table in the order their headers are read, before their
// children are decoded; a shared back-reference on the wire resolves to the
// same pointer, so aliasing — including a block that contains itself — is
// preserved exactly.
//
// The decoder is one-directional and deliberately incomplete where the
// format's own documentation reserves room: the big-header variant, custom
// serializers beyond the built-in numeric blocks, code pointers and the
// 64-bit length opcodes all fail with errs.ErrUnsupportedFeature instead of
// guessing.
package marshal
