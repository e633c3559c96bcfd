package section

import (
	"testing"

	"github.com/camlkit/intern/errs"
	"github.com/camlkit/intern/internal/buffer"
	"github.com/stretchr/testify/require"
)

func headerBytes(magic uint32) []byte {
	return []byte{
		byte(magic >> 24), byte(magic >> 16), byte(magic >> 8), byte(magic),
		0x00, 0x00, 0x00, 0x10, // data length
		0x00, 0x00, 0x00, 0x02, // object count
		0x00, 0x00, 0x00, 0x05, // size-32 hint
		0x00, 0x00, 0x00, 0x04, // size-64 hint
	}
}

func TestParseHeader_Plain(t *testing.T) {
	r := buffer.NewReader(headerBytes(MagicPlain))

	hdr, err := ParseHeader(r)
	require.NoError(t, err)
	require.Equal(t, uint32(MagicPlain), hdr.Magic)
	require.Equal(t, uint32(0x10), hdr.DataLen)
	require.Equal(t, uint32(2), hdr.NumObjects)
	require.Equal(t, uint32(5), hdr.Size32)
	require.Equal(t, uint32(4), hdr.Size64)
	require.False(t, hdr.Compressed())
	require.Equal(t, HeaderSize, r.Pos())
}

func TestParseHeader_Compressed(t *testing.T) {
	r := buffer.NewReader(headerBytes(MagicCompressed))

	hdr, err := ParseHeader(r)
	require.NoError(t, err)
	require.True(t, hdr.Compressed())
}

func TestParseHeader_BigHeaderIsUnsupportedFeature(t *testing.T) {
	r := buffer.NewReader(headerBytes(MagicBig))

	_, err := ParseHeader(r)
	require.ErrorIs(t, err, errs.ErrUnsupportedFeature)
	require.NotErrorIs(t, err, errs.ErrUnsupportedMagic)
}

func TestParseHeader_UnknownMagic(t *testing.T) {
	r := buffer.NewReader(headerBytes(0xDEADBEEF))

	_, err := ParseHeader(r)
	require.ErrorIs(t, err, errs.ErrUnsupportedMagic)
}

func TestParseHeader_Truncated(t *testing.T) {
	full := headerBytes(MagicPlain)
	for _, n := range []int{0, 3, 4, 7, 12, 19} {
		r := buffer.NewReader(full[:n])
		_, err := ParseHeader(r)
		require.ErrorIs(t, err, errs.ErrTruncatedInput, "header truncated to %d bytes", n)
	}
}
