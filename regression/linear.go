package regression

import "fmt"

// Line is an ordinary least squares fit: y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

var _ Estimator = (*Line)(nil)

// Estimate returns Slope*x + Intercept.
func (l *Line) Estimate(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Type returns ModelTypeLinear.
func (l *Line) Type() ModelType {
	return ModelTypeLinear
}

// Coefficients returns [slope, intercept].
func (l *Line) Coefficients() []float64 {
	return []float64{l.Slope, l.Intercept}
}

// SetCoefficients expects exactly [slope, intercept].
func (l *Line) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.Slope, l.Intercept = coeffs[0], coeffs[1]

	return nil
}

// String returns the line as a formula.
func (l *Line) String() string {
	return fmt.Sprintf("y = %.4fx + %.4f", l.Slope, l.Intercept)
}

// FitLinear fits a least squares line through points and samples it between
// the smallest and largest X.
//
// The fit uses the closed form
//
//	slope     = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//	intercept = (Σy − slope·Σx) / n
//
// The curve is sampled with SampleCurve using opts; by default every 0.1
// along X with negative Y values raised to zero.
//
// Returns:
//   - *Line: The fitted line
//   - Curve: Points sampled along the line from min X through max X
//   - error: ErrInsufficientPoints for fewer than two points,
//     ErrDegenerateInput when every X is identical, or a sampling error
//
// When sampling fails (ErrCurveTooLarge under WithMaxPoints) the fitted line
// is still returned alongside the error.
func FitLinear(points PointSet, opts ...CurveOption) (*Line, Curve, error) {
	cfg, err := newCurveConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	line, err := fitLine(points)
	if err != nil {
		return nil, nil, err
	}

	minX, maxX := points.XRange()
	curve, err := sampleCurve(line, minX, maxX, cfg)
	if err != nil {
		return line, nil, err
	}

	return line, curve, nil
}

// fitLine solves the normal equations for points.
func fitLine(points PointSet) (*Line, error) {
	if len(points) <= 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientPoints, len(points))
	}

	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}

	// Rounding can leave a tiny nonzero denominator for identical X values.
	denominator := n*sumXX - sumX*sumX
	if denominator == 0 || sameX(points) {
		return nil, ErrDegenerateInput
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	return &Line{Slope: slope, Intercept: intercept}, nil
}

func sameX(points PointSet) bool {
	for _, p := range points[1:] {
		if p.X != points[0].X {
			return false
		}
	}

	return true
}
