package marshal

import (
	"fmt"
	"math"

	"github.com/camlkit/intern/compress"
	"github.com/camlkit/intern/errs"
	"github.com/camlkit/intern/format"
	"github.com/camlkit/intern/internal/buffer"
	"github.com/camlkit/intern/section"
)

// Header is the parsed fixed-size image prefix.
type Header = section.Header

// Decoder decodes one marshal image into a value tree.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used
// by a single goroutine at a time.
//
// Note: The Decoder is NOT reusable. Decode consumes the cursor; create a new
// decoder for each image.
type Decoder struct {
	data     []byte
	r        *buffer.Reader
	hdr      Header
	table    objectTable
	maxDepth int
	depth    int
	consumed bool
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithMaxDepth bounds the structural nesting depth the decoder will recurse
// into. The format itself imposes no bound, so callers decoding untrusted
// input should set one; the default (0) is unbounded.
func WithMaxDepth(n int) DecoderOption {
	return func(d *Decoder) {
		d.maxDepth = n
	}
}

// NewDecoder creates a decoder over an input byte buffer. No parsing happens
// until Decode is called. The buffer is not copied; callers must not mutate
// it during decoding.
func NewDecoder(data []byte, opts ...DecoderOption) *Decoder {
	d := &Decoder{data: data}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Decode parses the header, then decodes exactly one top-level value from the
// stream that follows it.
//
// For the compressed magic, the value stream is decompressed as a single
// Zstandard frame before decoding; the header's data length must match the
// decompressed size. After decoding, the object table's length is checked
// against the header's object count and the consumed stream length against
// the header's data length. Any failure aborts the whole decode; no partial
// value is ever returned.
func (d *Decoder) Decode() (Header, Value, error) {
	if d.consumed {
		return Header{}, nil, fmt.Errorf("decoder already consumed")
	}
	d.consumed = true

	r := buffer.NewReader(d.data)

	hdr, err := section.ParseHeader(r)
	if err != nil {
		return hdr, nil, err
	}
	d.hdr = hdr

	if hdr.Compressed() {
		frame, err := r.ReadBytes(r.Remaining())
		if err != nil {
			return hdr, nil, err
		}

		codec, err := compress.GetCodec(format.CompressionZstd)
		if err != nil {
			return hdr, nil, err
		}

		stream, err := codec.Decompress(frame)
		if err != nil {
			return hdr, nil, fmt.Errorf("compressed value stream: %w", err)
		}
		if uint64(len(stream)) != uint64(hdr.DataLen) {
			return hdr, nil, fmt.Errorf("%w: header declares %d stream bytes, frame holds %d",
				errs.ErrSizeMismatch, hdr.DataLen, len(stream))
		}

		d.r = buffer.NewReader(stream)
	} else {
		d.r = r
	}

	streamStart := d.r.Pos()

	value, err := d.decodeValue()
	if err != nil {
		return hdr, nil, err
	}

	if uint64(d.table.len()) != uint64(hdr.NumObjects) {
		return hdr, nil, fmt.Errorf("%w: header declares %d objects, decoded %d",
			errs.ErrObjectCountMismatch, hdr.NumObjects, d.table.len())
	}

	if consumed := d.r.Pos() - streamStart; uint64(consumed) != uint64(hdr.DataLen) {
		return hdr, nil, fmt.Errorf("%w: header declares %d stream bytes, value consumed %d",
			errs.ErrSizeMismatch, hdr.DataLen, consumed)
	}

	return hdr, value, nil
}

// decodeValue reads one tag byte and dispatches on it: packed prefix bytes
// first by numeric range, then the explicit opcode table.
func (d *Decoder) decodeValue() (Value, error) {
	if d.maxDepth > 0 {
		d.depth++
		defer func() { d.depth-- }()
		if d.depth > d.maxDepth {
			return nil, fmt.Errorf("nesting depth exceeds limit %d", d.maxDepth)
		}
	}

	code, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}

	switch {
	case code >= section.PrefixSmallBlock:
		return d.decodeBlock(code&0x0F, int(code>>4)&0x07)
	case code >= section.PrefixSmallInt:
		return Integer(code & 0x3F), nil
	case code >= section.PrefixSmallString:
		return d.decodeBytes(int(code & 0x1F))
	}

	switch code {
	case section.CodeInt8:
		v, err := d.r.ReadInt8()
		return Integer(v), err
	case section.CodeInt16:
		v, err := d.r.ReadInt16()
		return Integer(v), err
	case section.CodeInt32:
		v, err := d.r.ReadInt32()
		return Integer(v), err
	case section.CodeInt64:
		v, err := d.r.ReadInt64()
		return Integer(v), err

	case section.CodeShared8:
		ofs, err := d.r.ReadUint8()
		if err != nil {
			return nil, err
		}
		return d.resolveShared(uint64(ofs))
	case section.CodeShared16:
		ofs, err := d.r.ReadUint16()
		if err != nil {
			return nil, err
		}
		return d.resolveShared(uint64(ofs))
	case section.CodeShared32:
		ofs, err := d.r.ReadUint32()
		if err != nil {
			return nil, err
		}
		return d.resolveShared(uint64(ofs))

	case section.CodeBlock32:
		w, err := d.r.ReadUint32()
		if err != nil {
			return nil, err
		}
		// One header word: tag in the low byte, field count above the
		// color bits.
		return d.decodeBlock(uint8(w&0xFF), int(w>>10))

	case section.CodeString8:
		n, err := d.r.ReadUint8()
		if err != nil {
			return nil, err
		}
		return d.decodeBytes(int(n))
	case section.CodeString32:
		n, err := d.r.ReadUint32()
		if err != nil {
			return nil, err
		}
		return d.decodeBytes(int(n))

	case section.CodeDoubleBig:
		bits, err := d.r.ReadUint64()
		if err != nil {
			return nil, err
		}
		return Float(math.Float64frombits(bits)), nil
	case section.CodeDoubleLittle:
		bits, err := d.r.ReadUint64LE()
		if err != nil {
			return nil, err
		}
		return Float(math.Float64frombits(bits)), nil

	case section.CodeDoubleArray8Big:
		n, err := d.r.ReadUint8()
		if err != nil {
			return nil, err
		}
		return d.decodeDoubles(int(n), false)
	case section.CodeDoubleArray8Little:
		n, err := d.r.ReadUint8()
		if err != nil {
			return nil, err
		}
		return d.decodeDoubles(int(n), true)
	case section.CodeDoubleArray32Big:
		n, err := d.r.ReadUint32()
		if err != nil {
			return nil, err
		}
		return d.decodeDoubles(int(n), false)
	case section.CodeDoubleArray32Little:
		n, err := d.r.ReadUint32()
		if err != nil {
			return nil, err
		}
		return d.decodeDoubles(int(n), true)

	case section.CodeCustomFixed:
		return d.decodeCustomFixed()
	case section.CodeCustomLen:
		return d.decodeCustomLen()

	case section.CodeCodePointer, section.CodeInfixPointer:
		return nil, fmt.Errorf("%w: code pointer (opcode 0x%02x)", errs.ErrUnsupportedFeature, code)
	case section.CodeCustom:
		return nil, fmt.Errorf("%w: legacy custom block carries no payload length", errs.ErrUnsupportedFeature)
	case section.CodeBlock64, section.CodeShared64, section.CodeString64,
		section.CodeDoubleArray64Big, section.CodeDoubleArray64Little:
		return nil, fmt.Errorf("%w: 64-bit length encoding (opcode 0x%02x)", errs.ErrUnsupportedFeature, code)
	}

	return nil, fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrUnknownTag, code, d.r.Pos()-1)
}

// decodeBlock reserves the block's slot, then decodes its declared number of
// fields in source order. Zero-field blocks are shape-only atoms the producer
// never records, so they take no slot; reserving one would shift every later
// back-offset.
func (d *Decoder) decodeBlock(tag uint8, count int) (Value, error) {
	if count == 0 {
		return &Block{Tag: tag}, nil
	}

	// Every field costs at least one stream byte, so a count beyond the
	// remaining bytes can never complete.
	if count > d.r.Remaining() {
		return nil, fmt.Errorf("%w: block declares %d fields with %d bytes left",
			errs.ErrTruncatedInput, count, d.r.Remaining())
	}

	block := &Block{Tag: tag, Fields: make([]Value, count)}
	d.table.reserve(block)

	for i := range block.Fields {
		field, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		block.Fields[i] = field
	}

	return block, nil
}

// decodeBytes reserves the slot, then reads the declared payload into a copy
// the caller owns.
func (d *Decoder) decodeBytes(n int) (Value, error) {
	cell := new(Bytes)
	d.table.reserve(cell)

	raw, err := d.r.ReadBytes(n)
	if err != nil {
		return nil, err
	}

	*cell = append(Bytes(nil), raw...)

	return cell, nil
}

// decodeDoubles reserves the slot, then reads the declared number of 8-byte
// floats in the variant's byte order.
func (d *Decoder) decodeDoubles(count int, littleEndian bool) (Value, error) {
	cell := new(Doubles)
	d.table.reserve(cell)

	if count > d.r.Remaining()/8 {
		return nil, fmt.Errorf("%w: float sequence declares %d elements with %d bytes left",
			errs.ErrTruncatedInput, count, d.r.Remaining())
	}

	elems := make(Doubles, count)
	for i := range elems {
		var bits uint64
		var err error
		if littleEndian {
			bits, err = d.r.ReadUint64LE()
		} else {
			bits, err = d.r.ReadUint64()
		}
		if err != nil {
			return nil, err
		}
		elems[i] = math.Float64frombits(bits)
	}

	*cell = elems

	return cell, nil
}

// resolveShared maps a back-offset to a table slot: slot = allocation counter
// minus offset. The resolved value is returned as-is — same pointer, no copy,
// no new slot. A reference into a block still being filled is legitimate;
// that is how cycles arrive.
func (d *Decoder) resolveShared(ofs uint64) (Value, error) {
	counter := uint64(d.table.len())
	if ofs == 0 || ofs > counter {
		return nil, fmt.Errorf("%w: back-offset %d with %d objects allocated",
			errs.ErrInvalidSharedReference, ofs, counter)
	}

	return d.table.get(int(counter - ofs)), nil
}

// readCustomID scans the NUL-terminated custom-block identifier, bounded by
// the scratch limit.
func (d *Decoder) readCustomID() (string, error) {
	id := make([]byte, 0, 8)
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return string(id), nil
		}
		if len(id) >= section.MaxCustomIDLen {
			return "", fmt.Errorf("%w: no terminator within %d bytes",
				errs.ErrIdentifierTooLong, section.MaxCustomIDLen)
		}
		id = append(id, b)
	}
}

// decodeCustomFixed handles custom blocks whose payload length is determined
// solely by the identifier. Only the built-in numeric identifiers are known;
// anything else fails rather than guessing a layout.
func (d *Decoder) decodeCustomFixed() (Value, error) {
	id, err := d.readCustomID()
	if err != nil {
		return nil, err
	}

	var size int
	switch id {
	case section.CustomIDInt32:
		size = 4
	case section.CustomIDInt64:
		size = 8
	case section.CustomIDNativeInt:
		if d.hdr.Size64 > 0 {
			size = 8
		} else {
			size = 4
		}
	default:
		return nil, fmt.Errorf("%w: custom serializer %q", errs.ErrUnsupportedFeature, id)
	}

	return d.decodeCustomPayload(id, size)
}

// decodeCustomLen handles custom blocks that declare their payload length on
// the wire (a 32-bit and a 64-bit counter; the 64-bit one bounds the read).
// Unknown identifiers are fine here: the declared length is the whole point
// of this encoding.
func (d *Decoder) decodeCustomLen() (Value, error) {
	id, err := d.readCustomID()
	if err != nil {
		return nil, err
	}

	if _, err := d.r.ReadUint32(); err != nil { // size on 32-bit platforms, unused
		return nil, err
	}

	size64, err := d.r.ReadUint64()
	if err != nil {
		return nil, err
	}
	if size64 > uint64(d.r.Remaining()) {
		return nil, fmt.Errorf("%w: custom block declares %d payload bytes with %d left",
			errs.ErrTruncatedInput, size64, d.r.Remaining())
	}

	return d.decodeCustomPayload(id, int(size64))
}

// decodeCustomPayload reserves the slot, then bounds and copies the payload.
// The bytes are never interpreted here.
func (d *Decoder) decodeCustomPayload(id string, size int) (Value, error) {
	cell := &Custom{ID: id}
	d.table.reserve(cell)

	raw, err := d.r.ReadBytes(size)
	if err != nil {
		return nil, err
	}

	cell.Payload = append([]byte(nil), raw...)

	return cell, nil
}
