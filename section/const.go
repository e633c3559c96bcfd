package section

// Magic markers. The plain and compressed constants share the same fixed
// header layout; the big marker announces the >4 GiB header variant, which is
// recognized but not implemented.
const (
	MagicPlain      = 0x8495A6BE // plain small header, uncompressed value stream
	MagicCompressed = 0x8495A6BD // small header followed by a Zstandard frame
	MagicBig        = 0x8495A6BF // big header variant (unsupported)
)

// Header geometry.
const (
	HeaderSize = 20 // fixed header size in bytes: magic + 4 big-endian uint32 fields
)

// Packed prefix bytes. Values at or above each prefix encode the payload in
// the tag byte itself.
//
// These values are frozen: they are the foreign runtime's wire format and
// must never change.
const (
	PrefixSmallBlock  = 0x80 // tag = code & 0x0F, field count = (code >> 4) & 0x07
	PrefixSmallInt    = 0x40 // value = code & 0x3F
	PrefixSmallString = 0x20 // length = code & 0x1F
)

// Explicit opcodes (0x00-0x1F).
const (
	CodeInt8                = 0x00 // 1-byte signed integer
	CodeInt16               = 0x01 // 2-byte big-endian signed integer
	CodeInt32               = 0x02 // 4-byte big-endian signed integer
	CodeInt64               = 0x03 // 8-byte big-endian signed integer
	CodeShared8             = 0x04 // 1-byte back-offset
	CodeShared16            = 0x05 // 2-byte big-endian back-offset
	CodeShared32            = 0x06 // 4-byte big-endian back-offset
	CodeDoubleArray32Little = 0x07 // 4-byte count, little-endian doubles
	CodeBlock32             = 0x08 // 4-byte header word: tag = w & 0xFF, count = w >> 10
	CodeString8             = 0x09 // 1-byte length, raw bytes
	CodeString32            = 0x0A // 4-byte big-endian length, raw bytes
	CodeDoubleBig           = 0x0B // one big-endian double
	CodeDoubleLittle        = 0x0C // one little-endian double
	CodeDoubleArray8Big     = 0x0D // 1-byte count, big-endian doubles
	CodeDoubleArray8Little  = 0x0E // 1-byte count, little-endian doubles
	CodeDoubleArray32Big    = 0x0F // 4-byte count, big-endian doubles
	CodeCodePointer         = 0x10 // closure code pointer (unsupported)
	CodeInfixPointer        = 0x11 // closure infix pointer (unsupported)
	CodeCustom              = 0x12 // legacy custom block, no length info (unsupported)
	CodeBlock64             = 0x13 // 64-bit block header (unsupported)
	CodeShared64            = 0x14 // 8-byte back-offset (unsupported)
	CodeString64            = 0x15 // 8-byte length string (unsupported)
	CodeDoubleArray64Big    = 0x16 // 8-byte count, big-endian doubles (unsupported)
	CodeDoubleArray64Little = 0x17 // 8-byte count, little-endian doubles (unsupported)
	CodeCustomLen           = 0x18 // custom block with declared payload lengths
	CodeCustomFixed         = 0x19 // custom block with identifier-determined length
)

// Built-in custom-block identifiers and their payload widths.
const (
	CustomIDInt32     = "_i" // 4-byte payload
	CustomIDInt64     = "_j" // 8-byte payload
	CustomIDNativeInt = "_n" // 4- or 8-byte payload, per the header's size-64 hint

	// MaxCustomIDLen bounds the identifier scan. The built-in identifiers are
	// two bytes; the bound only exists to stop a runaway scan over a corrupt
	// stream.
	MaxCustomIDLen = 64
)
