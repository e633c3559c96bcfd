// Package buffer implements the bounds-checked byte cursor the decoder reads
// the wire image through.
package buffer

import (
	"fmt"

	"github.com/camlkit/intern/endian"
	"github.com/camlkit/intern/errs"
)

var (
	big    = endian.GetBigEndianEngine()
	little = endian.GetLittleEndianEngine()
)

// Reader is a sequential cursor over an immutable byte buffer.
//
// Every read validates the requested width against the remaining bytes
// before consuming anything. A failed read poisons the reader: the position
// is left where it was, no partial result is returned, and every subsequent
// read fails with the same truncation error. The position never moves
// backwards.
//
// Reader is not safe for concurrent use; each decode call owns its own.
type Reader struct {
	data   []byte
	pos    int
	failed bool
}

// NewReader creates a cursor positioned at the start of data. The buffer is
// not copied; callers must not mutate it while the reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current read position.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// take validates and consumes n bytes, returning them as a subslice of the
// underlying buffer. Callers that retain the result beyond the decode call
// must copy it.
func (r *Reader) take(n int) ([]byte, error) {
	if r.failed {
		return nil, fmt.Errorf("%w: reader poisoned by earlier short read at offset %d", errs.ErrTruncatedInput, r.pos)
	}
	if n < 0 || n > len(r.data)-r.pos {
		r.failed = true
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrTruncatedInput, n, r.pos, len(r.data)-r.pos)
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// ReadBytes consumes n raw bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.take(n)
}

// ReadByte consumes one byte. The name satisfies io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadUint8 consumes one byte as an unsigned integer.
func (r *Reader) ReadUint8() (uint8, error) {
	return r.ReadByte()
}

// ReadUint16 consumes a big-endian 16-bit unsigned integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}

	return big.Uint16(b), nil
}

// ReadUint32 consumes a big-endian 32-bit unsigned integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return big.Uint32(b), nil
}

// ReadUint64 consumes a big-endian 64-bit unsigned integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return big.Uint64(b), nil
}

// ReadInt8 consumes one byte as a signed integer widened to int64.
func (r *Reader) ReadInt8() (int64, error) {
	v, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	return int64(int8(v)), nil
}

// ReadInt16 consumes a big-endian signed 16-bit integer widened to int64.
func (r *Reader) ReadInt16() (int64, error) {
	v, err := r.ReadUint16()
	if err != nil {
		return 0, err
	}

	return int64(int16(v)), nil
}

// ReadInt32 consumes a big-endian signed 32-bit integer widened to int64.
func (r *Reader) ReadInt32() (int64, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}

	return int64(int32(v)), nil
}

// ReadInt64 consumes a big-endian signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}

	return int64(v), nil
}

// ReadUint32LE consumes a little-endian 32-bit unsigned integer. Only the
// little-endian double tag families use this byte order.
func (r *Reader) ReadUint32LE() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return little.Uint32(b), nil
}

// ReadUint64LE consumes a little-endian 64-bit unsigned integer. Only the
// little-endian double tag families use this byte order.
func (r *Reader) ReadUint64LE() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return little.Uint64(b), nil
}
