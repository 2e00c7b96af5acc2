package regression

import (
	"fmt"
	"math"
	"slices"
)

// Analyze fits every supported model to points and ranks them by R².
//
// The linear model is always fitted. The others are fitted only where their
// transform is defined for the data:
//   - Hyperbolic: every X != 0
//   - Logarithmic: every X > 0
//   - Power: every X > 0 and every Y > 0
//   - Exponential: every Y > 0
//   - Polynomial: at least 3 points and a non-singular system
//
// Models that cannot be fitted are listed in Result.Skipped.
//
// Returns:
//   - *Result: Ranked models, best first
//   - error: ErrInsufficientPoints or ErrDegenerateInput
//
// Example:
//
//	result, err := regression.Analyze(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := result.BestFit.Estimator.Estimate(4.2)
func Analyze(points PointSet) (*Result, error) {
	line, err := fitLine(points)
	if err != nil {
		return nil, err
	}

	x, y := points.Xs(), points.Ys()
	models := []*Model{newLinearModel(line, x, y)}
	var skipped []ModelType

	candidates := []struct {
		modelType ModelType
		usable    bool
		fit       func(x, y []float64) *Model
	}{
		{ModelTypeHyperbolic, allOf(x, nonZero), fitHyperbolic},
		{ModelTypeLogarithmic, allOf(x, positive), fitLogarithmic},
		{ModelTypePower, allOf(x, positive) && allOf(y, positive), fitPower},
		{ModelTypeExponential, allOf(y, positive), fitExponential},
		{ModelTypePolynomial, len(x) >= 3, fitPolynomial},
	}

	for _, c := range candidates {
		var model *Model
		if c.usable {
			model = c.fit(x, y)
		}
		if model == nil || !modelIsFinite(model) {
			skipped = append(skipped, c.modelType)
			continue
		}
		models = append(models, model)
	}

	slices.SortStableFunc(models, func(a, b *Model) int {
		if a.RSquared > b.RSquared {
			return -1
		}
		if a.RSquared < b.RSquared {
			return 1
		}

		return 0
	})

	return &Result{
		BestFit:   models[0],
		AllModels: models,
		Skipped:   skipped,
	}, nil
}

func newLinearModel(line *Line, x, y []float64) *Model {
	r2, rmse := goodnessOfFit(line, x, y)

	return &Model{
		Type:         ModelTypeLinear,
		Coefficients: line.Coefficients(),
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      fmt.Sprintf("y = %.2f*x + %.2f", line.Slope, line.Intercept),
		Estimator:    line,
	}
}

// fitHyperbolic fits y = a + b/x by regressing y on 1/x.
func fitHyperbolic(x, y []float64) *Model {
	a, b, ok := leastSquares(mapValues(x, func(v float64) float64 { return 1 / v }), y)
	if !ok {
		return nil
	}

	est := NewHyperbolicEstimator(a, b)
	r2, rmse := goodnessOfFit(est, x, y)

	return &Model{
		Type:         ModelTypeHyperbolic,
		Coefficients: []float64{a, b},
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      fmt.Sprintf("y = %.2f + %.2f / x", a, b),
		Estimator:    est,
	}
}

// fitLogarithmic fits y = a + b*ln(x) by regressing y on ln(x).
func fitLogarithmic(x, y []float64) *Model {
	a, b, ok := leastSquares(mapValues(x, math.Log), y)
	if !ok {
		return nil
	}

	est := NewLogarithmicEstimator(a, b)
	r2, rmse := goodnessOfFit(est, x, y)

	return &Model{
		Type:         ModelTypeLogarithmic,
		Coefficients: []float64{a, b},
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      fmt.Sprintf("y = %.2f + %.2f * ln(x)", a, b),
		Estimator:    est,
	}
}

// fitPower fits y = a*x^b by regressing ln(y) on ln(x).
func fitPower(x, y []float64) *Model {
	logA, b, ok := leastSquares(mapValues(x, math.Log), mapValues(y, math.Log))
	if !ok {
		return nil
	}
	a := math.Exp(logA)

	est := NewPowerEstimator(a, b)
	r2, rmse := goodnessOfFit(est, x, y)

	return &Model{
		Type:         ModelTypePower,
		Coefficients: []float64{a, b},
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      fmt.Sprintf("y = %.2f * x^%.3f", a, b),
		Estimator:    est,
	}
}

// fitExponential fits y = a*e^(b*x) by regressing ln(y) on x.
func fitExponential(x, y []float64) *Model {
	logA, b, ok := leastSquares(x, mapValues(y, math.Log))
	if !ok {
		return nil
	}
	a := math.Exp(logA)

	est := NewExponentialEstimator(a, b)
	r2, rmse := goodnessOfFit(est, x, y)

	return &Model{
		Type:         ModelTypeExponential,
		Coefficients: []float64{a, b},
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      fmt.Sprintf("y = %.2f * e^(%.3f * x)", a, b),
		Estimator:    est,
	}
}

// fitPolynomial fits y = a + b*x + c*x² through the normal equations
//
//	[n    Σx   Σx²] [a]   [Σy]
//	[Σx   Σx²  Σx³] [b] = [Σxy]
//	[Σx²  Σx³  Σx⁴] [c]   [Σx²y]
//
// solved with Cramer's rule. Returns nil when the system is singular.
func fitPolynomial(x, y []float64) *Model {
	n := float64(len(x))
	var sumX, sumX2, sumX3, sumX4, sumY, sumXY, sumX2Y float64
	for i := range x {
		xi := x[i]
		xi2 := xi * xi
		yi := y[i]

		sumX += xi
		sumX2 += xi2
		sumX3 += xi2 * xi
		sumX4 += xi2 * xi2
		sumY += yi
		sumXY += xi * yi
		sumX2Y += xi2 * yi
	}

	det := det3(
		n, sumX, sumX2,
		sumX, sumX2, sumX3,
		sumX2, sumX3, sumX4,
	)
	if math.Abs(det) < 1e-10 {
		return nil
	}

	a := det3(
		sumY, sumX, sumX2,
		sumXY, sumX2, sumX3,
		sumX2Y, sumX3, sumX4,
	) / det
	b := det3(
		n, sumY, sumX2,
		sumX, sumXY, sumX3,
		sumX2, sumX2Y, sumX4,
	) / det
	c := det3(
		n, sumX, sumY,
		sumX, sumX2, sumXY,
		sumX2, sumX3, sumX2Y,
	) / det

	est := NewPolynomialEstimator(a, b, c)
	r2, rmse := goodnessOfFit(est, x, y)

	return &Model{
		Type:         ModelTypePolynomial,
		Coefficients: []float64{a, b, c},
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      fmt.Sprintf("y = %.2f + %.2f*x + %.2f*x²", a, b, c),
		Estimator:    est,
	}
}
