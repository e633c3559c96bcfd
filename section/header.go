package section

import (
	"fmt"

	"github.com/camlkit/intern/errs"
	"github.com/camlkit/intern/internal/buffer"
)

// Header is the fixed-size prefix of a marshal image.
//
// DataLen is the byte length of the (uncompressed) value stream that follows
// the header. NumObjects is the producer's count of sharable values and is
// advisory: it is checked against the object table after decoding, never used
// to size anything up front. Size32 and Size64 are word-count estimates for
// 32- and 64-bit consumers and are informational, except that the size-64
// hint selects the native-int custom payload width.
type Header struct {
	Magic      uint32
	DataLen    uint32
	NumObjects uint32
	Size32     uint32
	Size64     uint32
}

// Compressed reports whether the value stream after the header is a
// Zstandard frame.
func (h Header) Compressed() bool {
	return h.Magic == MagicCompressed
}

// ParseHeader consumes the fixed-size header from the cursor and validates
// the magic marker. The big-header marker is reported as an unsupported
// feature rather than an unknown magic; the remaining fields are read without
// further validation.
func ParseHeader(r *buffer.Reader) (Header, error) {
	var hdr Header

	magic, err := r.ReadUint32()
	if err != nil {
		return hdr, err
	}

	switch magic {
	case MagicPlain, MagicCompressed:
		// accepted
	case MagicBig:
		return hdr, fmt.Errorf("%w: big header variant (magic 0x%08x)", errs.ErrUnsupportedFeature, magic)
	default:
		return hdr, fmt.Errorf("%w: 0x%08x", errs.ErrUnsupportedMagic, magic)
	}

	hdr.Magic = magic

	if hdr.DataLen, err = r.ReadUint32(); err != nil {
		return hdr, err
	}
	if hdr.NumObjects, err = r.ReadUint32(); err != nil {
		return hdr, err
	}
	if hdr.Size32, err = r.ReadUint32(); err != nil {
		return hdr, err
	}
	if hdr.Size64, err = r.ReadUint32(); err != nil {
		return hdr, err
	}

	return hdr, nil
}
