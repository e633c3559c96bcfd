package format

type (
	Kind            uint8
	CompressionType uint8
)

const (
	KindInteger Kind = 0x1 // KindInteger represents a signed 64-bit integer.
	KindBytes   Kind = 0x2 // KindBytes represents an opaque byte sequence.
	KindFloat   Kind = 0x3 // KindFloat represents one IEEE-754 double.
	KindDoubles Kind = 0x4 // KindDoubles represents a fixed-length sequence of doubles.
	KindBlock   Kind = 0x5 // KindBlock represents a tagged fixed-arity aggregate.
	KindCustom  Kind = 0x6 // KindCustom represents an identifier-tagged opaque payload.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindBytes:
		return "Bytes"
	case KindFloat:
		return "Float"
	case KindDoubles:
		return "Doubles"
	case KindBlock:
		return "Block"
	case KindCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
