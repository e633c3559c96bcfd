package marshal

import (
	"github.com/camlkit/intern/endian"
	"github.com/camlkit/intern/format"
	"github.com/camlkit/intern/section"
)

// Value is one node of a decoded value tree.
//
// The variant is closed: Integer, Float, *Bytes, *Doubles, *Block and
// *Custom are the only implementations. The sharable kinds (everything a
// shared reference can target: bytes, float sequences, blocks, customs) are
// pointer-shaped, so two fields resolving to the same object table slot hold
// the same pointer — aliasing is observable identity, not just equal content.
// Integer and Float are inline kinds the format never shares.
type Value interface {
	Kind() format.Kind
}

// Integer is a signed 64-bit integer. The wire encodings range from 6-bit
// inline values to explicit 64-bit fields; the decoder always widens to
// int64, never narrows.
type Integer int64

func (Integer) Kind() format.Kind { return format.KindInteger }

// Float is one IEEE-754 double.
type Float float64

func (Float) Kind() format.Kind { return format.KindFloat }

// Bytes is an opaque byte sequence. The foreign runtime's "string" carries no
// text encoding; interpretation is the consumer's.
type Bytes []byte

func (*Bytes) Kind() format.Kind { return format.KindBytes }

// Doubles is a fixed-length sequence of doubles decoded as a unit. It is a
// distinct kind, not a Block of Float fields: the wire gives it its own tag
// family and endianness markers.
type Doubles []float64

func (*Doubles) Kind() format.Kind { return format.KindDoubles }

// Block is a tagged fixed-arity aggregate: the format's uniform encoding for
// tuples, records and variant constructors. The tag distinguishes
// constructors and record shapes; what it means is the consumer's business.
type Block struct {
	Tag    uint8
	Fields []Value
}

func (*Block) Kind() format.Kind { return format.KindBlock }

// Custom is an identifier-tagged opaque payload: a foreign-runtime boxed
// scalar such as a fixed-width integer. The decoder bounds the payload but
// never interprets it; the accessors below are conveniences for the built-in
// numeric identifiers.
type Custom struct {
	ID      string
	Payload []byte
}

func (*Custom) Kind() format.Kind { return format.KindCustom }

// Int32 interprets the payload of a built-in 32-bit integer custom block.
// It reports false unless the identifier and payload width match.
func (c *Custom) Int32() (int32, bool) {
	if c.ID != section.CustomIDInt32 || len(c.Payload) != 4 {
		return 0, false
	}

	return int32(endian.GetBigEndianEngine().Uint32(c.Payload)), true
}

// Int64 interprets the payload of a built-in 64-bit integer custom block.
func (c *Custom) Int64() (int64, bool) {
	if c.ID != section.CustomIDInt64 || len(c.Payload) != 8 {
		return 0, false
	}

	return int64(endian.GetBigEndianEngine().Uint64(c.Payload)), true
}

// NativeInt interprets the payload of a built-in native-width integer custom
// block, widening the 4-byte form to int64.
func (c *Custom) NativeInt() (int64, bool) {
	if c.ID != section.CustomIDNativeInt {
		return 0, false
	}

	engine := endian.GetBigEndianEngine()
	switch len(c.Payload) {
	case 4:
		return int64(int32(engine.Uint32(c.Payload))), true
	case 8:
		return int64(engine.Uint64(c.Payload)), true
	default:
		return 0, false
	}
}
