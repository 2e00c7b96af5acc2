package regression

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func pointsFrom(t *testing.T, x []float64, fn func(float64) float64) PointSet {
	t.Helper()

	points := make(PointSet, len(x))
	for i, xi := range x {
		points[i] = Point{X: xi, Y: fn(xi)}
	}

	return points
}

// TestAnalyze_LinearData checks that an exact line ranks the linear model first.
func TestAnalyze_LinearData(t *testing.T) {
	points := pointsFrom(t, []float64{1, 2, 3, 4, 5}, func(x float64) float64 { return 3*x + 1 })

	result, err := Analyze(points)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.BestFit == nil {
		t.Fatal("BestFit should not be nil")
	}
	if result.BestFit.Type != ModelTypeLinear {
		t.Errorf("Expected linear best fit, got %s", result.BestFit.Type)
	}
	if math.Abs(result.BestFit.RSquared-1) > 1e-12 {
		t.Errorf("Expected R²=1 for exact data, got %f", result.BestFit.RSquared)
	}
	if len(result.AllModels) != 6 {
		t.Fatalf("Expected 6 models, got %d", len(result.AllModels))
	}
	if len(result.Skipped) != 0 {
		t.Errorf("Expected no skipped models, got %v", result.Skipped)
	}

	for i := 1; i < len(result.AllModels); i++ {
		if result.AllModels[i-1].RSquared < result.AllModels[i].RSquared {
			t.Errorf("Models not sorted by R²: model %d has R²=%.3f, model %d has R²=%.3f",
				i-1, result.AllModels[i-1].RSquared, i, result.AllModels[i].RSquared)
		}
	}

	if result.BestFit != result.AllModels[0] {
		t.Error("BestFit should be the first model in AllModels")
	}
}

func TestAnalyze_QuadraticData(t *testing.T) {
	points := pointsFrom(t, []float64{1, 2, 3, 4, 5, 6}, func(x float64) float64 { return 1 + 2*x + 0.5*x*x })

	result, err := Analyze(points)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	best := result.BestFit
	if best.Type != ModelTypePolynomial {
		t.Fatalf("Expected polynomial best fit, got %s", best.Type)
	}

	want := []float64{1, 2, 0.5}
	for i, c := range best.Coefficients {
		if math.Abs(c-want[i]) > 1e-6 {
			t.Errorf("Coefficient %d = %f, expected %f", i, c, want[i])
		}
	}
}

func TestAnalyze_ExponentialData(t *testing.T) {
	points := pointsFrom(t, []float64{0, 1, 2, 3, 4}, func(x float64) float64 { return 2 * math.Exp(0.5*x) })

	result, err := Analyze(points)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	best := result.BestFit
	if best.Type != ModelTypeExponential {
		t.Fatalf("Expected exponential best fit, got %s", best.Type)
	}
	if math.Abs(best.Coefficients[0]-2) > 1e-9 || math.Abs(best.Coefficients[1]-0.5) > 1e-9 {
		t.Errorf("Unexpected coefficients %v", best.Coefficients)
	}

	// x = 0 rules out the hyperbolic, logarithmic and power transforms.
	want := []ModelType{ModelTypeHyperbolic, ModelTypeLogarithmic, ModelTypePower}
	if !slices.Equal(result.Skipped, want) {
		t.Errorf("Skipped = %v, expected %v", result.Skipped, want)
	}
}

func TestAnalyze_SkipsUndefinedTransforms(t *testing.T) {
	points := PointSet{{X: -2, Y: -1}, {X: -1, Y: 2}, {X: 1, Y: 0}, {X: 2, Y: 5}}

	result, err := Analyze(points)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	want := []ModelType{ModelTypeLogarithmic, ModelTypePower, ModelTypeExponential}
	if !slices.Equal(result.Skipped, want) {
		t.Errorf("Skipped = %v, expected %v", result.Skipped, want)
	}

	for _, m := range result.AllModels {
		if slices.Contains(want, m.Type) {
			t.Errorf("Model %s should have been skipped", m.Type)
		}
	}
}

func TestAnalyze_TwoPointsSkipsPolynomial(t *testing.T) {
	result, err := Analyze(PointSet{{X: 1, Y: 3}, {X: 2, Y: 5}})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if !slices.Contains(result.Skipped, ModelTypePolynomial) {
		t.Errorf("Polynomial should be skipped for two points, skipped=%v", result.Skipped)
	}
}

func TestAnalyze_Errors(t *testing.T) {
	if _, err := Analyze(PointSet{{X: 1, Y: 1}}); !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("Expected ErrInsufficientPoints, got %v", err)
	}

	if _, err := Analyze(PointSet{{X: 2, Y: 1}, {X: 2, Y: 5}, {X: 2, Y: 9}}); !errors.Is(err, ErrDegenerateInput) {
		t.Errorf("Expected ErrDegenerateInput, got %v", err)
	}
}

func TestFitPolynomial_Singular(t *testing.T) {
	// Only two distinct X values make the quadratic system singular.
	if model := fitPolynomial([]float64{1, 1, 2}, []float64{2, 3, 4}); model != nil {
		t.Errorf("Expected nil model for singular system, got %s", model)
	}
}

func TestGoodnessOfFit(t *testing.T) {
	line := &Line{Slope: 1, Intercept: 0}

	r2, rmse := goodnessOfFit(line, []float64{1, 2, 3}, []float64{1, 2, 3})
	if r2 != 1 || rmse != 0 {
		t.Errorf("Perfect fit: r2=%f rmse=%f", r2, rmse)
	}

	r2, rmse = goodnessOfFit(line, []float64{1, 2}, []float64{2, 2})
	if r2 != 0 {
		t.Errorf("Constant observations should report R²=0, got %f", r2)
	}
	if math.Abs(rmse-math.Sqrt(0.5)) > 1e-12 {
		t.Errorf("RMSE = %f, expected %f", rmse, math.Sqrt(0.5))
	}

	r2, rmse = goodnessOfFit(line, nil, nil)
	if r2 != 0 || rmse != 0 {
		t.Errorf("Empty input: r2=%f rmse=%f", r2, rmse)
	}
}

func TestModelAndResultString(t *testing.T) {
	m := &Model{Type: ModelTypeLinear, RSquared: 0.5, RMSE: 1.25, Formula: "y = 1.00*x + 0.00"}
	want := "Model{Type: linear, R²: 0.5000, RMSE: 1.2500, Formula: y = 1.00*x + 0.00}"
	if got := m.String(); got != want {
		t.Errorf("Model.String() = %q, expected %q", got, want)
	}

	if got := (&Result{}).String(); got != "Result{BestFit: nil}" {
		t.Errorf("Result.String() = %q", got)
	}
}
