package regression

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Tokenize splits raw on whitespace and parses every token as a float64.
//
// Parsing is best effort. These tokens are skipped and counted in dropped
// instead of failing the whole input:
//   - tokens that are not numbers
//   - "nan", "inf", "+Inf" and other spellings of NaN or an infinity
//   - numbers outside the float64 range, such as "1e400"
//
// Parameters:
//   - raw: Free text such as "1 2.5 -3e2"
//
// Returns:
//   - values: Parsed values in input order
//   - dropped: Number of tokens that were skipped
func Tokenize(raw string) (values []float64, dropped int) {
	fields := strings.Fields(raw)
	values = make([]float64, 0, len(fields))

	for _, field := range fields {
		v, err := cast.ToFloat64E(field)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			dropped++
			continue
		}
		values = append(values, v)
	}

	return values, dropped
}
