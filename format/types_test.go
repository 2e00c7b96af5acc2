package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType(t *testing.T) {
	tests := []struct {
		name string
		typ  CompressionType
		str  string
	}{
		{"none", CompressionNone, "None"},
		{"ZSTD", CompressionZstd, "Zstd"},
		{" s2 ", CompressionS2, "S2"},
		{"lz4", CompressionLZ4, "LZ4"},
		{"", CompressionNone, "None"},
	}

	for _, tt := range tests {
		got, err := ParseCompressionType(tt.name)
		require.NoError(t, err)
		require.Equal(t, tt.typ, got)
		require.Equal(t, tt.str, got.String())
	}

	_, err := ParseCompressionType("brotli")
	require.ErrorContains(t, err, `unknown compression type: "brotli"`)
	require.Equal(t, "Unknown", CompressionType(0xff).String())
}
