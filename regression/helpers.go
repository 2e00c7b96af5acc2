package regression

import "math"

// leastSquares fits y = a + b*x and reports false when x has no spread or
// the result is not finite.
func leastSquares(x, y []float64) (a, b float64, ok bool) {
	n := float64(len(x))
	if n == 0 {
		return 0, 0, false
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0, 0, false
	}

	b = (n*sumXY - sumX*sumY) / denominator
	a = (sumY - b*sumX) / n

	return a, b, isFinite(a) && isFinite(b)
}

// goodnessOfFit calculates R² and RMSE of est against the observations in a
// single pass.
//
// R² = 1 - SS_res/SS_tot and is reported as 0 when the observed Y values
// have no variance. RMSE = √(SS_res / n).
func goodnessOfFit(est Estimator, x, y []float64) (r2, rmse float64) {
	n := len(y)
	if n == 0 {
		return 0, 0
	}

	meanY := calculateMean(y)

	ssTot := 0.0
	ssRes := 0.0
	for i := range y {
		residual := y[i] - est.Estimate(x[i])
		ssTot += (y[i] - meanY) * (y[i] - meanY)
		ssRes += residual * residual
	}

	if ssTot != 0 {
		r2 = 1.0 - ssRes/ssTot
	}
	rmse = math.Sqrt(ssRes / float64(n))

	return r2, rmse
}

func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// det3 returns the determinant of the row-major 3x3 matrix.
func det3(a11, a12, a13, a21, a22, a23, a31, a32, a33 float64) float64 {
	return a11*(a22*a33-a23*a32) -
		a12*(a21*a33-a23*a31) +
		a13*(a21*a32-a22*a31)
}

func mapValues(values []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}

	return out
}

func allOf(values []float64, pred func(float64) bool) bool {
	for _, v := range values {
		if !pred(v) {
			return false
		}
	}

	return true
}

func nonZero(v float64) bool { return v != 0 }

func positive(v float64) bool { return v > 0 }

func modelIsFinite(m *Model) bool {
	if !isFinite(m.RSquared) || !isFinite(m.RMSE) {
		return false
	}
	for _, c := range m.Coefficients {
		if !isFinite(c) {
			return false
		}
	}

	return true
}
