package hash

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Bytes([]byte(tt.data)))
		})
	}
}

func TestFloat64s(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{2, 4, 6}

	assert.Equal(t, Float64s(xs, ys), Float64s([]float64{1, 2, 3}, []float64{2, 4, 6}))
	assert.NotEqual(t, Float64s(xs, ys), Float64s(ys, xs), "column order matters")
	assert.NotEqual(t, Float64s([]float64{1, 2}, []float64{3}), Float64s([]float64{1}, []float64{2, 3}))
	assert.NotEqual(t, Float64s([]float64{0}), Float64s([]float64{math.Copysign(0, -1)}), "signed zero has distinct bits")
	assert.NotEqual(t, Float64s(), Float64s(nil))
}

func BenchmarkFloat64s(b *testing.B) {
	xs := make([]float64, 1000)
	ys := make([]float64, 1000)
	for i := range xs {
		xs[i] = rand.Float64()
		ys[i] = rand.Float64()
	}
	b.ResetTimer()

	for b.Loop() {
		Float64s(xs, ys)
	}
}
