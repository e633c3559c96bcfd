package compress

import (
	"bytes"
	"testing"

	"github.com/camlkit/intern/format"
	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	// A repetitive tag-stream-like payload so every codec actually shrinks it.
	var buf bytes.Buffer
	for i := 0; i < 256; i++ {
		buf.WriteByte(0xA0)
		buf.WriteByte(0x41)
		buf.WriteByte(byte(0x40 + i%64))
	}

	return buf.Bytes()
}

func TestCodecRoundTrip(t *testing.T) {
	payload := testPayload()

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)

			if ct != format.CompressionNone {
				require.Less(t, len(compressed), len(payload))
			}
		})
	}
}

func TestGetCodec_Invalid(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionZstd, "image")
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = CreateCodec(format.CompressionType(0xFF), "image")
	require.Error(t, err)
	require.Contains(t, err.Error(), "image")
}

func TestZstdDecompress_CorruptInput(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte{0x01, 0x02, 0x03, 0x04})
	require.Error(t, err)
}

func TestEmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		out, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, out)
	}
}
