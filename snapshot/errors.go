package snapshot

import "errors"

var (
	// ErrInvalidMagic is returned when the data does not start with "LFIT".
	ErrInvalidMagic = errors.New("invalid snapshot magic")
	// ErrUnsupportedVersion is returned for a format version this package cannot read.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	// ErrInvalidHeader is returned for unknown flag bits, a non-zero reserved
	// byte or an unknown compression type.
	ErrInvalidHeader = errors.New("invalid snapshot header")
	// ErrTruncated is returned when the data is shorter than the header says.
	ErrTruncated = errors.New("snapshot data truncated")
	// ErrTrailingData is returned when bytes follow the payload.
	ErrTrailingData = errors.New("unexpected data after snapshot payload")
	// ErrCorruptPayload is returned when the payload cannot be decompressed
	// or its size disagrees with the header counts.
	ErrCorruptPayload = errors.New("corrupt snapshot payload")
	// ErrChecksumMismatch is returned when the payload hash does not match the header.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
	// ErrTooLarge is returned when a snapshot has more points than the header can count.
	ErrTooLarge = errors.New("snapshot too large")
)
