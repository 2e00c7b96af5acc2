package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineFor(t *testing.T) {
	require.Equal(t, binary.LittleEndian, EngineFor(false))
	require.Equal(t, binary.BigEndian, EngineFor(true))
}

func TestCheckEndianness(t *testing.T) {
	native := CheckEndianness()
	require.True(t, native == binary.LittleEndian || native == binary.BigEndian)
	require.Equal(t, native == binary.BigEndian, IsNativeBigEndian())
}

func TestFloat64Columns(t *testing.T) {
	values := []float64{0, 1.5, -2.25, math.MaxFloat64, math.SmallestNonzeroFloat64}

	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := AppendFloat64s(engine, []byte{0xaa}, values)
		require.Len(t, buf, 1+8*len(values))
		require.Equal(t, byte(0xaa), buf[0])

		got, rest, err := ReadFloat64s(engine, append(buf[1:], 0x01), len(values))
		require.NoError(t, err)
		require.Equal(t, values, got)
		require.Equal(t, []byte{0x01}, rest)
	}
}

func TestFloat64ByteOrder(t *testing.T) {
	le := AppendFloat64s(GetLittleEndianEngine(), nil, []float64{1})
	be := AppendFloat64s(GetBigEndianEngine(), nil, []float64{1})

	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, le)
	require.Equal(t, []byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, be)
}

func TestReadFloat64s_Short(t *testing.T) {
	_, _, err := ReadFloat64s(GetLittleEndianEngine(), make([]byte, 15), 2)
	require.ErrorContains(t, err, "need 2 float64 values, have 15 bytes")

	_, _, err = ReadFloat64s(GetLittleEndianEngine(), nil, -1)
	require.Error(t, err)

	got, rest, err := ReadFloat64s(GetLittleEndianEngine(), nil, 0)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Empty(t, rest)
}
