// Package regression fits straight lines (and a handful of alternative curves)
// to small two-dimensional point sets typed in by a user.
//
// The package is the computational core of linfit. It turns two free-text
// number lists into a PointSet, computes an ordinary least squares line
// through the points and samples that line into a dense Curve suitable for
// plotting.
//
// # Key Features
//
//   - **Lenient Parsing**: Tokens that are not numbers are dropped rather than rejected
//   - **Closed-Form OLS**: Slope and intercept straight from the normal equations
//   - **Curve Sampling**: Fixed-step sampling between min X and max X with a display clamp
//   - **Model Comparison**: Linear, hyperbolic, logarithmic, power, exponential and
//     quadratic models ranked by R²
//
// # Usage Patterns
//
// ## Parse and Fit
//
//	points, err := regression.ParsePoints("1 2 3", "2 4 6")
//	if err != nil {
//	    log.Fatal(err) // ErrMismatchedLengths
//	}
//
//	line, curve, err := regression.FitLinear(points)
//	if err != nil {
//	    log.Fatal(err) // ErrInsufficientPoints or ErrDegenerateInput
//	}
//	fmt.Println(line) // y = 2.0000x + 0.0000
//
// ## Curve Options
//
// The curve is sampled every 0.1 along X and negative predictions are raised
// to zero. Both behaviors are adjustable:
//
//	line, curve, err := regression.FitLinear(points,
//	    regression.WithStep(0.5),
//	    regression.WithClamp(false),
//	)
//
// ## Model Comparison
//
//	result, err := regression.Analyze(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, model := range result.AllModels {
//	    fmt.Printf("%s: R²=%.4f, Formula=%s\n", model.Type, model.RSquared, model.Formula)
//	}
//
// # Errors
//
// All failures are validation failures and can be matched with errors.Is:
//
//   - ErrMismatchedLengths: X and Y produced a different number of values
//   - ErrInsufficientPoints: fewer than two points
//   - ErrDegenerateInput: every X is identical, so the slope is undefined
//   - ErrInvalidStep, ErrCurveTooLarge: bad curve sampling options
//
// # Performance Characteristics
//
//   - Parsing and fitting are O(n) in the number of points
//   - Sampling is O((maxX-minX)/step), bounded by WithMaxPoints when set
package regression
