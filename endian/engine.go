// Package endian selects the byte order used for snapshot headers and
// float64 columns.
//
// Snapshots are little-endian unless written with the big-endian flag:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendFloat64s(engine, buf, points.Xs())
//
// All functions are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// EngineFor returns the big-endian engine when bigEndian is set and the
// little-endian one otherwise.
func EngineFor(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// AppendFloat64s appends the IEEE 754 bits of each value to dst.
func AppendFloat64s(engine EndianEngine, dst []byte, values []float64) []byte {
	for _, v := range values {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

// ReadFloat64s decodes n float64 values from the start of src and returns
// them with the unread remainder.
func ReadFloat64s(engine EndianEngine, src []byte, n int) ([]float64, []byte, error) {
	if n < 0 || len(src)/8 < n {
		return nil, src, fmt.Errorf("need %d float64 values, have %d bytes", n, len(src))
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = math.Float64frombits(engine.Uint64(src[i*8:]))
	}

	return values, src[n*8:], nil
}
