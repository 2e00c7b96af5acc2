// Package snapshot encodes a fit result (points, line and sampled curve)
// into a compact, checksummed binary form and decodes it back.
//
// # Layout
//
// A snapshot is a fixed 32-byte header followed by one payload:
//
//	offset  size  field
//	0       4     magic "LFIT"
//	4       1     version (1)
//	5       1     compression type (format.CompressionType)
//	6       1     flags: bit 0 has line, bit 1 big-endian
//	7       1     reserved, must be 0
//	8       4     point count
//	12      4     curve point count
//	16      4     payload length as stored (after compression)
//	20      4     payload length before compression
//	24      8     xxHash64 of the uncompressed payload
//
// The uncompressed payload is a run of float64 columns: [slope, intercept]
// when the line flag is set, then point X, point Y, curve X and curve Y.
// Multi-byte header fields and columns use the byte order named by the
// big-endian flag.
//
// # Usage
//
//	data, err := snapshot.Encode(snap, snapshot.WithCompression(format.CompressionZstd))
//	...
//	snap, err = snapshot.Decode(data)
//
// Inspect reads only the header and reports sizes without touching the
// payload.
package snapshot
