package snapshot

import (
	"fmt"

	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/internal/options"
)

type encoderConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// EncoderOption configures Encode.
type EncoderOption = options.Option[*encoderConfig]

// WithCompression selects the payload codec. The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(cfg *encoderConfig) error {
		if compression.String() == "Unknown" {
			return fmt.Errorf("%w: compression type 0x%02x", ErrInvalidHeader, uint8(compression))
		}
		cfg.compression = compression

		return nil
	})
}

// WithBigEndian writes header fields and columns big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = true
	})
}
