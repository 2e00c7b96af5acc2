package regression_test

import (
	"fmt"
	"log"

	"github.com/arloliu/linfit/regression"
)

// ExampleFitLinear parses two number lists and fits a line through them.
func ExampleFitLinear() {
	points, err := regression.ParsePoints("1 2 3", "2 4 6")
	if err != nil {
		log.Fatal(err)
	}

	line, curve, err := regression.FitLinear(points)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(line)
	fmt.Printf("Curve: %d points from x=%.1f to x=%.1f\n", len(curve), curve[0].X, curve[len(curve)-1].X)

	// Output:
	// y = 2.0000x + 0.0000
	// Curve: 21 points from x=1.0 to x=3.0
}

// ExampleParsePoints shows that non-numeric tokens are dropped before pairing.
func ExampleParsePoints() {
	points, err := regression.ParsePoints("1 two 3", "10 30")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(points)

	_, err = regression.ParsePoints("1 2 3", "1 2")
	fmt.Println(err)

	// Output:
	// [{1 10} {3 30}]
	// the number of X and Y values must match: got 3 X and 2 Y
}

// ExampleAnalyze compares the supported models on a small data set.
func ExampleAnalyze() {
	points, err := regression.ParsePoints("1 2 3 4", "3 5 7 9")
	if err != nil {
		log.Fatal(err)
	}

	result, err := regression.Analyze(points)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Best-fit model: %s\n", result.BestFit.Type)
	fmt.Printf("Formula: %s\n", result.BestFit.Formula)
	fmt.Printf("Estimate at x=10: %.2f\n", result.BestFit.Estimator.Estimate(10))

	// Output:
	// Best-fit model: linear
	// Formula: y = 2.00*x + 1.00
	// Estimate at x=10: 21.00
}

// ExampleNewEstimator rebuilds an estimator from stored coefficients.
func ExampleNewEstimator() {
	est, err := regression.NewEstimator("linear", []float64{0.5, 1})
	if err != nil {
		log.Fatal(err)
	}

	for _, x := range []float64{0, 2, 4} {
		fmt.Printf("x=%.0f y=%.1f\n", x, est.Estimate(x))
	}

	// Output:
	// x=0 y=1.0
	// x=2 y=2.0
	// x=4 y=3.0
}
