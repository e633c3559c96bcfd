// Package section defines the wire-level constants of the marshal format and
// the fixed-size header that prefixes every image.
//
// The constants mirror the foreign runtime's own tag table bit-for-bit. Tag
// bytes at or above 0x20 are packed prefixes carrying their payload in the
// byte itself; bytes below 0x20 are explicit opcodes followed by fixed-width
// fields. See the marshal package for the dispatch over this table.
package section
