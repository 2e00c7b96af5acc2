package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/linfit/compress"
	"github.com/arloliu/linfit/endian"
	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/internal/hash"
	"github.com/arloliu/linfit/internal/options"
	"github.com/arloliu/linfit/internal/pool"
	"github.com/arloliu/linfit/regression"
)

// Snapshot is the persisted part of a fit: the input points, the fitted line
// (nil when no fit ran) and the sampled curve.
type Snapshot struct {
	Points regression.PointSet
	Line   *regression.Line
	Curve  regression.Curve
}

// Info describes a snapshot without decoding its payload.
type Info struct {
	Header Header
	Stats  compress.Stats
}

// Encode serializes s.
//
// Parameters:
//   - s: Snapshot to encode; empty point sets and curves are allowed
//   - opts: WithCompression, WithBigEndian
//
// Returns:
//   - []byte: Header followed by the (possibly compressed) payload
//   - error: Option errors, ErrTooLarge, or codec errors
func Encode(s Snapshot, opts ...EncoderOption) ([]byte, error) {
	cfg := &encoderConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if uint64(len(s.Points)) > math.MaxUint32 || uint64(len(s.Curve)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d points, %d curve points", ErrTooLarge, len(s.Points), len(s.Curve))
	}

	h := Header{
		Version:     Version,
		Compression: cfg.compression,
		PointCount:  uint32(len(s.Points)),
		CurveCount:  uint32(len(s.Curve)),
	}
	if s.Line != nil {
		h.Flags |= FlagHasLine
	}
	if cfg.bigEndian {
		h.Flags |= FlagBigEndian
	}

	rawLen := h.expectedRawLen()
	if rawLen > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes", ErrTooLarge, rawLen)
	}
	h.RawLen = uint32(rawLen)

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	buf.Grow(int(rawLen))
	buf.B = appendPayload(buf.B, h.Engine(), s)
	h.Checksum = hash.Bytes(buf.B)

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	packed, err := codec.Compress(buf.B)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}
	if uint64(len(packed)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: compressed payload of %d bytes", ErrTooLarge, len(packed))
	}
	h.PayloadLen = uint32(len(packed))

	// packed may alias the pooled buffer, so copy before it is released.
	out := make([]byte, 0, HeaderSize+len(packed))
	out = append(out, h.Bytes()...)
	out = append(out, packed...)

	return out, nil
}

func appendPayload(dst []byte, engine endian.EndianEngine, s Snapshot) []byte {
	if s.Line != nil {
		dst = endian.AppendFloat64s(engine, dst, s.Line.Coefficients())
	}

	dst = endian.AppendFloat64s(engine, dst, s.Points.Xs())
	dst = endian.AppendFloat64s(engine, dst, s.Points.Ys())

	curve := regression.PointSet(s.Curve)
	dst = endian.AppendFloat64s(engine, dst, curve.Xs())
	dst = endian.AppendFloat64s(engine, dst, curve.Ys())

	return dst
}

// Inspect parses the header of data and reports payload sizes.
func Inspect(data []byte) (Info, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Header: h,
		Stats: compress.Stats{
			Algorithm:      h.Compression,
			OriginalSize:   int64(h.RawLen),
			CompressedSize: int64(h.PayloadLen),
		},
	}, nil
}

// Decode parses data produced by Encode.
//
// Returns:
//   - Snapshot: Decoded points, line and curve
//   - error: Header errors, ErrTruncated, ErrTrailingData, ErrCorruptPayload
//     or ErrChecksumMismatch
func Decode(data []byte) (Snapshot, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Snapshot{}, err
	}

	end := uint64(HeaderSize) + uint64(h.PayloadLen)
	if uint64(len(data)) < end {
		return Snapshot{}, fmt.Errorf("%w: payload needs %d bytes, have %d", ErrTruncated, h.PayloadLen, len(data)-HeaderSize)
	}
	if uint64(len(data)) > end {
		return Snapshot{}, fmt.Errorf("%w: %d bytes", ErrTrailingData, uint64(len(data))-end)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	// RawLen already agrees with the counts, so it bounds the output buffer.
	raw, err := codec.Decompress(data[HeaderSize:end], int(h.RawLen))
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}

	if sum := hash.Bytes(raw); sum != h.Checksum {
		return Snapshot{}, fmt.Errorf("%w: got 0x%016x, header says 0x%016x", ErrChecksumMismatch, sum, h.Checksum)
	}

	return decodePayload(h, raw)
}

func decodePayload(h Header, raw []byte) (Snapshot, error) {
	engine := h.Engine()
	var s Snapshot

	if h.HasLine() {
		coeffs, rest, err := endian.ReadFloat64s(engine, raw, 2)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
		}
		s.Line = &regression.Line{Slope: coeffs[0], Intercept: coeffs[1]}
		raw = rest
	}

	points, raw, err := readPoints(engine, raw, int(h.PointCount))
	if err != nil {
		return Snapshot{}, err
	}
	s.Points = points

	curve, _, err := readPoints(engine, raw, int(h.CurveCount))
	if err != nil {
		return Snapshot{}, err
	}
	s.Curve = regression.Curve(curve)

	return s, nil
}

// readPoints reads an X column followed by a Y column of n values each.
func readPoints(engine endian.EndianEngine, raw []byte, n int) (regression.PointSet, []byte, error) {
	xs, raw, err := endian.ReadFloat64s(engine, raw, n)
	if err != nil {
		return nil, raw, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}

	ys, raw, err := endian.ReadFloat64s(engine, raw, n)
	if err != nil {
		return nil, raw, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}

	points := make(regression.PointSet, n)
	for i := range points {
		points[i] = regression.Point{X: xs[i], Y: ys[i]}
	}

	return points, raw, nil
}
