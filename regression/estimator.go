package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeLinear represents the straight line: y = a*x + b
	ModelTypeLinear ModelType = iota
	// ModelTypeHyperbolic represents the hyperbolic model: y = a + b / x
	ModelTypeHyperbolic
	// ModelTypeLogarithmic represents the logarithmic model: y = a + b * ln(x)
	ModelTypeLogarithmic
	// ModelTypePower represents the power model: y = a * x^b
	ModelTypePower
	// ModelTypeExponential represents the exponential model: y = a * e^(b * x)
	ModelTypeExponential
	// ModelTypePolynomial represents the quadratic model: y = a + b*x + c*x²
	ModelTypePolynomial
)

var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeExponential: "exponential",
	ModelTypePolynomial:  "polynomial",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

var modelTypeFromString = map[string]ModelType{
	"linear":      ModelTypeLinear,
	"hyperbolic":  ModelTypeHyperbolic,
	"logarithmic": ModelTypeLogarithmic,
	"power":       ModelTypePower,
	"exponential": ModelTypeExponential,
	"polynomial":  ModelTypePolynomial,
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1)
}

func newEmptyEstimator(modelType ModelType) Estimator {
	switch modelType {
	case ModelTypeLinear:
		return &Line{}
	case ModelTypeHyperbolic:
		return NewHyperbolicEstimator(0, 0)
	case ModelTypeLogarithmic:
		return NewLogarithmicEstimator(0, 0)
	case ModelTypePower:
		return NewPowerEstimator(0, 0)
	case ModelTypeExponential:
		return NewExponentialEstimator(0, 0)
	case ModelTypePolynomial:
		return NewPolynomialEstimator(0, 0, 0)
	default:
		return nil
	}
}

// Estimator predicts Y for a given X using a fitted model.
type Estimator interface {
	// Estimate calculates Y for the given X.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns the model coefficients.
	Coefficients() []float64
	// SetCoefficients replaces the coefficients of the model.
	// The number of coefficients must match the model:
	// - 2 coefficients: linear, hyperbolic, logarithmic, power, exponential
	// - 3 coefficients: polynomial (quadratic)
	SetCoefficients(coeffs []float64) error
}

// HyperbolicEstimator implements y = a + b / x.
type HyperbolicEstimator struct {
	a, b float64
}

// NewHyperbolicEstimator creates a hyperbolic estimator with the given coefficients.
func NewHyperbolicEstimator(a, b float64) *HyperbolicEstimator {
	return &HyperbolicEstimator{a: a, b: b}
}

// Estimate returns a + b/x, or +Inf at x == 0.
func (h *HyperbolicEstimator) Estimate(x float64) float64 {
	if x == 0 {
		return math.Inf(1)
	}

	return h.a + h.b/x
}

// Type returns the model type.
func (h *HyperbolicEstimator) Type() ModelType {
	return ModelTypeHyperbolic
}

// Coefficients returns [a, b].
func (h *HyperbolicEstimator) Coefficients() []float64 {
	return []float64{h.a, h.b}
}

// SetCoefficients expects exactly [a, b].
func (h *HyperbolicEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("hyperbolic model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	h.a, h.b = coeffs[0], coeffs[1]

	return nil
}

// LogarithmicEstimator implements y = a + b * ln(x).
type LogarithmicEstimator struct {
	a, b float64
}

// NewLogarithmicEstimator creates a logarithmic estimator with the given coefficients.
func NewLogarithmicEstimator(a, b float64) *LogarithmicEstimator {
	return &LogarithmicEstimator{a: a, b: b}
}

// Estimate returns a + b*ln(x), or +Inf for x <= 0.
func (l *LogarithmicEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.Inf(1)
	}

	return l.a + l.b*math.Log(x)
}

// Type returns the model type.
func (l *LogarithmicEstimator) Type() ModelType {
	return ModelTypeLogarithmic
}

// Coefficients returns [a, b].
func (l *LogarithmicEstimator) Coefficients() []float64 {
	return []float64{l.a, l.b}
}

// SetCoefficients expects exactly [a, b].
func (l *LogarithmicEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("logarithmic model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.a, l.b = coeffs[0], coeffs[1]

	return nil
}

// PowerEstimator implements y = a * x^b.
type PowerEstimator struct {
	a, b float64
}

// NewPowerEstimator creates a power estimator with the given coefficients.
func NewPowerEstimator(a, b float64) *PowerEstimator {
	return &PowerEstimator{a: a, b: b}
}

// Estimate returns a * x^b, or +Inf for x <= 0.
func (p *PowerEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.Inf(1)
	}

	return p.a * math.Pow(x, p.b)
}

// Type returns the model type.
func (p *PowerEstimator) Type() ModelType {
	return ModelTypePower
}

// Coefficients returns [a, b].
func (p *PowerEstimator) Coefficients() []float64 {
	return []float64{p.a, p.b}
}

// SetCoefficients expects exactly [a, b].
func (p *PowerEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("power model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	p.a, p.b = coeffs[0], coeffs[1]

	return nil
}

// ExponentialEstimator implements y = a * e^(b * x).
type ExponentialEstimator struct {
	a, b float64
}

// NewExponentialEstimator creates an exponential estimator with the given coefficients.
func NewExponentialEstimator(a, b float64) *ExponentialEstimator {
	return &ExponentialEstimator{a: a, b: b}
}

// Estimate returns a * e^(b*x).
func (e *ExponentialEstimator) Estimate(x float64) float64 {
	return e.a * math.Exp(e.b*x)
}

// Type returns the model type.
func (e *ExponentialEstimator) Type() ModelType {
	return ModelTypeExponential
}

// Coefficients returns [a, b].
func (e *ExponentialEstimator) Coefficients() []float64 {
	return []float64{e.a, e.b}
}

// SetCoefficients expects exactly [a, b].
func (e *ExponentialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("exponential model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	e.a, e.b = coeffs[0], coeffs[1]

	return nil
}

// PolynomialEstimator implements y = a + b*x + c*x².
type PolynomialEstimator struct {
	a, b, c float64
}

// NewPolynomialEstimator creates a quadratic estimator with the given coefficients.
func NewPolynomialEstimator(a, b, c float64) *PolynomialEstimator {
	return &PolynomialEstimator{a: a, b: b, c: c}
}

// Estimate returns a + b*x + c*x².
func (p *PolynomialEstimator) Estimate(x float64) float64 {
	return p.a + p.b*x + p.c*x*x
}

// Type returns the model type.
func (p *PolynomialEstimator) Type() ModelType {
	return ModelTypePolynomial
}

// Coefficients returns [a, b, c].
func (p *PolynomialEstimator) Coefficients() []float64 {
	return []float64{p.a, p.b, p.c}
}

// SetCoefficients expects exactly [a, b, c].
func (p *PolynomialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 3 {
		return fmt.Errorf("polynomial model expects exactly 3 coefficients, got %d", len(coeffs))
	}
	p.a, p.b, p.c = coeffs[0], coeffs[1], coeffs[2]

	return nil
}

// NewEstimator creates an estimator by model name and coefficients.
//
// Parameters:
//   - name: The model name (case-insensitive): "linear", "hyperbolic",
//     "logarithmic", "power", "exponential" or "polynomial"
//   - coeffs: 2 coefficients for most models, 3 for polynomial. For the
//     linear model the order is [slope, intercept].
//
// Returns:
//   - Estimator: The created estimator instance
//   - error: Unknown name or wrong number of coefficients
//
// Example:
//
//	est, err := NewEstimator("linear", []float64{2.0, 0.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := est.Estimate(3) // 6.5
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	modelType := ModelTypeFromString(name)
	if modelType == ModelType(-1) {
		supportedTypes := make([]string, 0, len(modelTypeNames))
		for _, modelTypeName := range modelTypeNames {
			supportedTypes = append(supportedTypes, modelTypeName)
		}
		slices.Sort(supportedTypes)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supportedTypes, ", "))
	}

	estimator := newEmptyEstimator(modelType)
	if estimator == nil {
		return nil, fmt.Errorf("failed to create estimator for model type: %s", name)
	}

	if err := estimator.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return estimator, nil
}
