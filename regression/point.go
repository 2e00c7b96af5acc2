package regression

import "slices"

// Point is a single (X, Y) sample.
type Point struct {
	X float64
	Y float64
}

// PointSet is an ordered sequence of points. Order follows the input order
// and only matters for display.
type PointSet []Point

// Curve is an ordered sequence of points sampled along a fitted model.
type Curve []Point

// Len returns the number of points.
func (ps PointSet) Len() int {
	return len(ps)
}

// Xs returns the X coordinates in order.
func (ps PointSet) Xs() []float64 {
	xs := make([]float64, len(ps))
	for i, p := range ps {
		xs[i] = p.X
	}

	return xs
}

// Ys returns the Y coordinates in order.
func (ps PointSet) Ys() []float64 {
	ys := make([]float64, len(ps))
	for i, p := range ps {
		ys[i] = p.Y
	}

	return ys
}

// XRange returns the minimum and maximum X. Both are zero for an empty set.
func (ps PointSet) XRange() (minX, maxX float64) {
	if len(ps) == 0 {
		return 0, 0
	}

	minX, maxX = ps[0].X, ps[0].X
	for _, p := range ps[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
	}

	return minX, maxX
}

// Clone returns an independent copy of the set.
func (ps PointSet) Clone() PointSet {
	return slices.Clone(ps)
}

// AsCurve returns the points as a Curve, copying the backing array.
func (ps PointSet) AsCurve() Curve {
	return Curve(slices.Clone(ps))
}

// Len returns the number of sampled points.
func (c Curve) Len() int {
	return len(c)
}
