package intern

import (
	"testing"

	"github.com/camlkit/intern/compress"
	"github.com/camlkit/intern/endian"
	"github.com/camlkit/intern/errs"
	"github.com/camlkit/intern/format"
	"github.com/camlkit/intern/section"
	"github.com/stretchr/testify/require"
)

// sampleImage is a tuple of a small string and a shared reference back to it.
func sampleImage() []byte {
	stream := []byte{0xa0, 0x20 + 6}
	stream = append(stream, "shared"...)
	stream = append(stream, section.CodeShared8, 0x01)

	engine := endian.GetBigEndianEngine()
	buf := engine.AppendUint32(nil, section.MagicPlain)
	buf = engine.AppendUint32(buf, uint32(len(stream)))
	buf = engine.AppendUint32(buf, 2) // object count
	buf = engine.AppendUint32(buf, 4) // size-32 hint
	buf = engine.AppendUint32(buf, 3) // size-64 hint

	return append(buf, stream...)
}

func TestDecode(t *testing.T) {
	hdr, v, err := Decode(sampleImage())
	require.NoError(t, err)
	require.Equal(t, uint32(2), hdr.NumObjects)

	block, ok := v.(*Block)
	require.True(t, ok)
	require.Same(t, block.Fields[0], block.Fields[1])
}

func TestDecode_Errors(t *testing.T) {
	_, _, err := Decode(nil)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)

	bad := sampleImage()
	bad[0] = 0x00
	_, _, err = Decode(bad)
	require.ErrorIs(t, err, errs.ErrUnsupportedMagic)
}

func TestDecodeCompressed(t *testing.T) {
	image := sampleImage()

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(ct)
			require.NoError(t, err)

			packed, err := codec.Compress(image)
			require.NoError(t, err)

			hdr, v, err := DecodeCompressed(packed, ct)
			require.NoError(t, err)
			require.Equal(t, uint32(2), hdr.NumObjects)

			block := v.(*Block)
			require.Equal(t, Bytes("shared"), *block.Fields[0].(*Bytes))
		})
	}
}

func TestDecodeCompressed_UnknownCodec(t *testing.T) {
	_, _, err := DecodeCompressed(sampleImage(), format.CompressionType(0xEE))
	require.Error(t, err)
}

func TestFingerprint_StableAcrossDecodes(t *testing.T) {
	image := sampleImage()

	_, first, err := Decode(image)
	require.NoError(t, err)
	_, second, err := Decode(image)
	require.NoError(t, err)

	require.Equal(t, Fingerprint(first), Fingerprint(second))
}
