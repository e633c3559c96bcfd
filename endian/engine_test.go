package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.BigEndian, engine)

	buf := []byte{0x12, 0x34, 0x56, 0x78}
	require.Equal(t, uint32(0x12345678), engine.Uint32(buf))
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	buf := []byte{0x78, 0x56, 0x34, 0x12}
	require.Equal(t, uint32(0x12345678), engine.Uint32(buf))
}

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.NotNil(t, order)

	// Exactly one of the two probes holds on any host.
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())

	if IsNativeLittleEndian() {
		require.Equal(t, binary.LittleEndian, order)
	} else {
		require.Equal(t, binary.BigEndian, order)
	}
}

func TestEngineAppend(t *testing.T) {
	var buf []byte
	buf = GetBigEndianEngine().AppendUint64(buf, 0x0102030405060708)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buf)
}
