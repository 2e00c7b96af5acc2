package regression

import "fmt"

// Model represents a fitted regression model with its goodness-of-fit metrics.
//
// Fields:
//   - Type: The mathematical model type
//   - Coefficients: The fitted parameters of the model
//   - RSquared: Coefficient of determination (higher is better)
//   - RMSE: Root mean square error (lower is better)
//   - Formula: Human-readable mathematical formula
//   - Estimator: Concrete implementation for making predictions
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients contains the model coefficients.
	Coefficients []float64
	// RSquared is the coefficient of determination.
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator is the concrete estimator implementation.
	Estimator Estimator
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result represents the outcome of Analyze.
//
// Fields:
//   - BestFit: The model with the highest R²
//   - AllModels: All fitted models ranked by R² (best first)
//   - Skipped: Model types that could not be fitted to the data
type Result struct {
	// BestFit is the best-fit model (highest R²).
	BestFit *Model
	// AllModels contains all fitted models ranked by R² (best first).
	AllModels []*Model
	// Skipped lists the models whose transform is undefined for the data,
	// for example logarithmic when some X <= 0.
	Skipped []ModelType
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}",
		r.BestFit, len(r.AllModels))
}
