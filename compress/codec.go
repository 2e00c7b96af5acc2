package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/linfit/format"
)

// ErrSizeMismatch is returned when a payload does not decompress to exactly
// the size recorded next to it.
var ErrSizeMismatch = errors.New("decompressed size mismatch")

// Compressor compresses snapshot payloads.
//
// Memory management:
//   - Returned slice is owned by the caller (NoOp returns the input itself)
//   - Input slice is not modified
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Snapshot headers record the uncompressed payload size, so decompression is
// told the exact size up front. Implementations never allocate more than
// size bytes for the output and return ErrSizeMismatch when the data would
// decode to anything else. They are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data, which must expand to exactly size bytes.
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes the effect of compressing one payload.
type Stats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType
	// OriginalSize is the payload size before compression.
	OriginalSize int64
	// CompressedSize is the payload size after compression.
	CompressedSize int64
}

// Ratio returns compressed size / original size, or 0 for an empty payload.
//
// Values below 1.0 mean the codec saved space. Tiny snapshots can come out
// above 1.0 because of codec framing.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage of the original size.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

func sizeMismatch(got, want int) error {
	return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, got, want)
}
