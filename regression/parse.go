package regression

import "fmt"

// ParseReport describes what ParseInput kept and dropped.
type ParseReport struct {
	// Points holds the paired values, in input order.
	Points PointSet
	// DroppedX is the number of X tokens that were not numbers.
	DroppedX int
	// DroppedY is the number of Y tokens that were not numbers.
	DroppedY int
}

// ParsePoints pairs the numbers found in rawX and rawY into a PointSet.
//
// Both inputs are tokenized with Tokenize, so invalid tokens vanish silently.
// The i-th valid X is paired with the i-th valid Y. Two empty inputs yield an
// empty set and no error; the point count is checked later by FitLinear.
//
// Returns ErrMismatchedLengths when the number of valid X values differs from
// the number of valid Y values.
//
// Example:
//
//	points, err := regression.ParsePoints("1 3 5", "2 4 6")
//	// points == PointSet{{1, 2}, {3, 4}, {5, 6}}
func ParsePoints(rawX, rawY string) (PointSet, error) {
	report, err := ParseInput(rawX, rawY)
	if err != nil {
		return nil, err
	}

	return report.Points, nil
}

// ParseInput behaves like ParsePoints and also reports how many tokens were
// dropped on each side. The report's drop counts are filled in even when the
// lengths do not match.
func ParseInput(rawX, rawY string) (ParseReport, error) {
	xs, droppedX := Tokenize(rawX)
	ys, droppedY := Tokenize(rawY)

	report := ParseReport{DroppedX: droppedX, DroppedY: droppedY}
	if len(xs) != len(ys) {
		return report, fmt.Errorf("%w: got %d X and %d Y", ErrMismatchedLengths, len(xs), len(ys))
	}

	points := make(PointSet, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	report.Points = points

	return report, nil
}
