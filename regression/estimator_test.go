package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimatorImplementations(t *testing.T) {
	tests := []struct {
		name      string
		estimator Estimator
		x         float64
		expected  float64
		coeffs    int
	}{
		{"Line", &Line{Slope: 2, Intercept: 1}, 3, 7, 2},
		{"HyperbolicEstimator", NewHyperbolicEstimator(10, 50), 100, 10.5, 2},
		{"LogarithmicEstimator", NewLogarithmicEstimator(5, 2), 100, 5 + 2*math.Log(100), 2},
		{"PowerEstimator", NewPowerEstimator(2, -0.5), 100, 0.2, 2},
		{"ExponentialEstimator", NewExponentialEstimator(3, 0.1), 10, 3 * math.E, 2},
		{"PolynomialEstimator", NewPolynomialEstimator(1, 2, 0.5), 2, 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expected, tt.estimator.Estimate(tt.x), 1e-10)
			require.Len(t, tt.estimator.Coefficients(), tt.coeffs)
		})
	}
}

func TestEstimatorDomainEdges(t *testing.T) {
	require.True(t, math.IsInf(NewHyperbolicEstimator(1, 1).Estimate(0), 1))
	require.InDelta(t, 0.0, NewHyperbolicEstimator(1, 1).Estimate(-1), 1e-12)

	for _, x := range []float64{0, -1} {
		require.True(t, math.IsInf(NewLogarithmicEstimator(1, 1).Estimate(x), 1))
		require.True(t, math.IsInf(NewPowerEstimator(1, 1).Estimate(x), 1))
	}

	require.InDelta(t, 1.0, NewExponentialEstimator(1, 1).Estimate(0), 1e-12)
	require.InDelta(t, 3.0, NewPolynomialEstimator(1, 1, 1).Estimate(-2), 1e-12)
}

func TestSetCoefficients(t *testing.T) {
	for _, est := range []Estimator{
		&Line{},
		NewHyperbolicEstimator(0, 0),
		NewLogarithmicEstimator(0, 0),
		NewPowerEstimator(0, 0),
		NewExponentialEstimator(0, 0),
	} {
		require.NoError(t, est.SetCoefficients([]float64{1.5, 2.5}), est.Type().String())
		require.Equal(t, []float64{1.5, 2.5}, est.Coefficients())
		require.Error(t, est.SetCoefficients([]float64{1, 2, 3}))
	}

	poly := NewPolynomialEstimator(0, 0, 0)
	require.NoError(t, poly.SetCoefficients([]float64{1, 2, 3}))
	require.Equal(t, []float64{1, 2, 3}, poly.Coefficients())
	require.ErrorContains(t, poly.SetCoefficients([]float64{1, 2}), "expects exactly 3 coefficients")
}

func TestModelTypeString(t *testing.T) {
	tests := []struct {
		modelType ModelType
		expected  string
	}{
		{ModelTypeLinear, "linear"},
		{ModelTypeHyperbolic, "hyperbolic"},
		{ModelTypeLogarithmic, "logarithmic"},
		{ModelTypePower, "power"},
		{ModelTypeExponential, "exponential"},
		{ModelTypePolynomial, "polynomial"},
		{ModelType(999), "unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.modelType.String())
		if tt.expected != "unknown" {
			require.Equal(t, tt.modelType, ModelTypeFromString(tt.expected))
		}
	}

	require.Equal(t, ModelTypeLinear, ModelTypeFromString("LINEAR"))
	require.Equal(t, ModelType(-1), ModelTypeFromString("cubic"))
}

func TestNewEstimator(t *testing.T) {
	est, err := NewEstimator("linear", []float64{2, 0.5})
	require.NoError(t, err)
	require.Equal(t, ModelTypeLinear, est.Type())
	require.InDelta(t, 6.5, est.Estimate(3), 1e-12)

	est, err = NewEstimator("Polynomial", []float64{1, 2, 0.5})
	require.NoError(t, err)
	require.Equal(t, ModelTypePolynomial, est.Type())

	_, err = NewEstimator("cubic", []float64{1, 2})
	require.ErrorContains(t, err, "unknown model type: cubic")
	require.ErrorContains(t, err, "exponential, hyperbolic, linear, logarithmic, polynomial, power")

	_, err = NewEstimator("power", []float64{1})
	require.Error(t, err)
}
