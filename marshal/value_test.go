package marshal

import (
	"testing"

	"github.com/camlkit/intern/format"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	require.Equal(t, format.KindInteger, Integer(1).Kind())
	require.Equal(t, format.KindFloat, Float(1.5).Kind())
	require.Equal(t, format.KindBytes, (&Bytes{}).Kind())
	require.Equal(t, format.KindDoubles, (&Doubles{}).Kind())
	require.Equal(t, format.KindBlock, (&Block{}).Kind())
	require.Equal(t, format.KindCustom, (&Custom{}).Kind())
}

func TestCustomAccessors(t *testing.T) {
	int32Block := &Custom{ID: "_i", Payload: []byte{0x00, 0x00, 0x00, 0x2a}}
	n32, ok := int32Block.Int32()
	require.True(t, ok)
	require.Equal(t, int32(42), n32)

	// Negative values keep their sign through the big-endian read.
	int32Block.Payload = []byte{0xFF, 0xFF, 0xFF, 0xD6}
	n32, ok = int32Block.Int32()
	require.True(t, ok)
	require.Equal(t, int32(-42), n32)

	int64Block := &Custom{ID: "_j", Payload: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xD6}}
	n64, ok := int64Block.Int64()
	require.True(t, ok)
	require.Equal(t, int64(-42), n64)

	// The 4-byte native form widens with its sign.
	native := &Custom{ID: "_n", Payload: []byte{0xFF, 0xFF, 0xFF, 0xD6}}
	nn, ok := native.NativeInt()
	require.True(t, ok)
	require.Equal(t, int64(-42), nn)

	native.Payload = []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}
	nn, ok = native.NativeInt()
	require.True(t, ok)
	require.Equal(t, int64(1)<<32, nn)
}

func TestCustomAccessors_Mismatch(t *testing.T) {
	// Wrong identifier.
	c := &Custom{ID: "_x", Payload: []byte{0, 0, 0, 1}}
	_, ok := c.Int32()
	require.False(t, ok)

	// Wrong payload width.
	c = &Custom{ID: "_i", Payload: []byte{0, 1}}
	_, ok = c.Int32()
	require.False(t, ok)

	c = &Custom{ID: "_n", Payload: []byte{0, 1}}
	_, ok = c.NativeInt()
	require.False(t, ok)
}
