package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	require.Equal(t, byte(0x02), bytes[0], "little endian should put LSB first")
	require.Equal(t, byte(0x01), bytes[1], "little endian should put MSB second")

	require.Equal(t, testValue, engine.Uint16(bytes))
}

func TestLittleEndianAppend(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := make([]byte, 0, 8)
	buf = engine.AppendUint32(buf, 0xAABBCCDD)
	require.Equal(t, []byte{0xDD, 0xCC, 0xBB, 0xAA}, buf)
}
