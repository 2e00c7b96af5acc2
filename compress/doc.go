// Package compress provides the codecs applied to linfit snapshot payloads.
//
// A snapshot payload is a run of float64 columns. Slopes and intercepts
// rarely repeat, but densely sampled curves do compress, so the codec is
// chosen per snapshot:
//   - None: payload stored as-is (default)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Codecs are looked up by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	raw, err := codec.Decompress(packed, len(payload))
//
// Decompress takes the expected output size, which snapshot headers record,
// and never allocates past it.
//
// Zstd uses the pure-Go klauspost/compress implementation by default. Build
// with "-tags gozstd" (cgo required) to use valyala/gozstd instead; the
// output is wire-compatible either way.
//
// All codecs are stateless values and safe for concurrent use.
package compress
