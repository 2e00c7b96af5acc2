//go:build gozstd && cgo

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/valyala/gozstd"
)

// Compress compresses data with libzstd at level 3.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress streams Zstd frames through libzstd into a buffer of exactly
// size bytes and fails if any output is left over.
func (c ZstdCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch(0, size)
		}
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	out := make([]byte, size)
	n, err := io.ReadFull(zr, out)
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, sizeMismatch(n, size)
		}
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	var extra [1]byte
	if m, _ := zr.Read(extra[:]); m != 0 {
		return nil, fmt.Errorf("%w: payload expands past %d bytes", ErrSizeMismatch, size)
	}

	return out, nil
}
