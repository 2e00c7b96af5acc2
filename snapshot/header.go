package snapshot

import (
	"fmt"

	"github.com/arloliu/linfit/endian"
	"github.com/arloliu/linfit/format"
)

const (
	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 32
	// Version is the format version written by Encode.
	Version = 1

	FlagHasLine   = 0x01 // FlagHasLine marks a payload that starts with [slope, intercept].
	FlagBigEndian = 0x02 // FlagBigEndian marks big-endian header fields and columns.
	flagKnownMask = FlagHasLine | FlagBigEndian

	float64Size = 8
)

// Magic identifies a linfit snapshot.
var Magic = [4]byte{'L', 'F', 'I', 'T'}

// Header is the fixed-size header at the start of a snapshot.
type Header struct {
	Version     uint8                  // byte offset 4
	Compression format.CompressionType // byte offset 5
	Flags       uint8                  // byte offset 6
	PointCount  uint32                 // byte offset 8-11
	CurveCount  uint32                 // byte offset 12-15
	PayloadLen  uint32                 // byte offset 16-19
	RawLen      uint32                 // byte offset 20-23
	Checksum    uint64                 // byte offset 24-31
}

// HasLine reports whether the payload carries a fitted line.
func (h Header) HasLine() bool {
	return h.Flags&FlagHasLine != 0
}

// IsBigEndian reports whether the snapshot was written big-endian.
func (h Header) IsBigEndian() bool {
	return h.Flags&FlagBigEndian != 0
}

// Engine returns the byte order named by the flags.
func (h Header) Engine() endian.EndianEngine {
	return endian.EngineFor(h.IsBigEndian())
}

// expectedRawLen returns the uncompressed payload size implied by the counts.
func (h Header) expectedRawLen() uint64 {
	n := 2*uint64(h.PointCount) + 2*uint64(h.CurveCount)
	if h.HasLine() {
		n += 2
	}

	return n * float64Size
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Engine()

	copy(b[0:4], Magic[:])
	b[4] = h.Version
	b[5] = uint8(h.Compression)
	b[6] = h.Flags
	engine.PutUint32(b[8:12], h.PointCount)
	engine.PutUint32(b[12:16], h.CurveCount)
	engine.PutUint32(b[16:20], h.PayloadLen)
	engine.PutUint32(b[20:24], h.RawLen)
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// ParseHeader parses and validates the header at the start of data.
//
// Returns:
//   - Header: Parsed header
//   - error: ErrTruncated, ErrInvalidMagic, ErrUnsupportedVersion or ErrInvalidHeader
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncated, len(data), HeaderSize)
	}

	if [4]byte(data[0:4]) != Magic {
		return Header{}, fmt.Errorf("%w: %q", ErrInvalidMagic, data[0:4])
	}

	h := Header{
		Version:     data[4],
		Compression: format.CompressionType(data[5]),
		Flags:       data[6],
	}

	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	if h.Flags&^flagKnownMask != 0 {
		return Header{}, fmt.Errorf("%w: unknown flags 0x%02x", ErrInvalidHeader, h.Flags)
	}

	if data[7] != 0 {
		return Header{}, fmt.Errorf("%w: reserved byte is 0x%02x", ErrInvalidHeader, data[7])
	}

	if h.Compression.String() == "Unknown" {
		return Header{}, fmt.Errorf("%w: compression type 0x%02x", ErrInvalidHeader, data[5])
	}

	engine := h.Engine()
	h.PointCount = engine.Uint32(data[8:12])
	h.CurveCount = engine.Uint32(data[12:16])
	h.PayloadLen = engine.Uint32(data[16:20])
	h.RawLen = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	if uint64(h.RawLen) != h.expectedRawLen() {
		return Header{}, fmt.Errorf("%w: raw length %d, counts imply %d", ErrCorruptPayload, h.RawLen, h.expectedRawLen())
	}

	return h, nil
}
