// Package hash computes structural fingerprints of decoded value trees.
package hash

import (
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/camlkit/intern/endian"
	"github.com/camlkit/intern/marshal"
)

// Per-kind domain separators for the digest stream.
const (
	tagInteger byte = 0x01
	tagBytes   byte = 0x02
	tagFloat   byte = 0x03
	tagDoubles byte = 0x04
	tagBlock   byte = 0x05
	tagCustom  byte = 0x06
	tagBackref byte = 0x07
)

var engine = endian.GetBigEndianEngine()

// Fingerprint computes the xxHash64 structural digest of a decoded value.
//
// The digest covers kinds, tags, lengths and contents, and encodes sharing:
// the second visit to a sharable value hashes as a back-reference to the
// first, so the walk terminates on cycles and two trees fingerprint equal
// only when their aliasing structure matches too. Decoding the same image
// twice therefore yields the same fingerprint.
func Fingerprint(v marshal.Value) uint64 {
	w := walker{
		digest: xxhash.New(),
		seen:   make(map[marshal.Value]uint64),
	}
	w.walk(v)

	return w.digest.Sum64()
}

type walker struct {
	digest *xxhash.Digest
	seen   map[marshal.Value]uint64
	count  uint64
}

func (w *walker) writeUint64(v uint64) {
	var scratch [8]byte
	engine.PutUint64(scratch[:], v)
	w.digest.Write(scratch[:])
}

func (w *walker) writeTag(tag byte) {
	w.digest.Write([]byte{tag})
}

// visit registers a sharable value on first sight. On a revisit it hashes a
// back-reference to the original slot and reports true.
func (w *walker) visit(v marshal.Value) bool {
	if slot, ok := w.seen[v]; ok {
		w.writeTag(tagBackref)
		w.writeUint64(slot)
		return true
	}

	w.seen[v] = w.count
	w.count++

	return false
}

func (w *walker) walk(v marshal.Value) {
	switch val := v.(type) {
	case marshal.Integer:
		w.writeTag(tagInteger)
		w.writeUint64(uint64(val))
	case marshal.Float:
		w.writeTag(tagFloat)
		w.writeUint64(math.Float64bits(float64(val)))
	case *marshal.Bytes:
		if w.visit(val) {
			return
		}
		w.writeTag(tagBytes)
		w.writeUint64(uint64(len(*val)))
		w.digest.Write(*val)
	case *marshal.Doubles:
		if w.visit(val) {
			return
		}
		w.writeTag(tagDoubles)
		w.writeUint64(uint64(len(*val)))
		for _, f := range *val {
			w.writeUint64(math.Float64bits(f))
		}
	case *marshal.Block:
		if w.visit(val) {
			return
		}
		w.writeTag(tagBlock)
		w.digest.Write([]byte{val.Tag})
		w.writeUint64(uint64(len(val.Fields)))
		for _, field := range val.Fields {
			w.walk(field)
		}
	case *marshal.Custom:
		if w.visit(val) {
			return
		}
		w.writeTag(tagCustom)
		w.writeUint64(uint64(len(val.ID)))
		w.digest.WriteString(val.ID)
		w.writeUint64(uint64(len(val.Payload)))
		w.digest.Write(val.Payload)
	}
}
