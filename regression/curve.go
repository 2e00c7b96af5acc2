package regression

import (
	"fmt"
	"math"
)

// SampleCurve evaluates est at evenly spaced X values from `from` through
// `through`.
//
// The i-th sample sits at from + i*step. Sampling stops at the last value not
// greater than `through`, so the final point lands exactly on `through` only
// when the range is a multiple of the step. When clamping is enabled each Y
// is raised to at least the clamp floor.
//
// Parameters:
//   - est: Model to evaluate
//   - from: First X value
//   - through: Inclusive upper bound for X
//   - opts: Sampling options (WithStep, WithClamp, WithClampFloor, WithMaxPoints)
//
// Returns:
//   - Curve: Sampled points, empty when from > through
//   - error: ErrInvalidStep, ErrInvalidRange or ErrCurveTooLarge
func SampleCurve(est Estimator, from, through float64, opts ...CurveOption) (Curve, error) {
	cfg, err := newCurveConfig(opts)
	if err != nil {
		return nil, err
	}

	return sampleCurve(est, from, through, cfg)
}

func sampleCurve(est Estimator, from, through float64, cfg CurveConfig) (Curve, error) {
	if !isFinite(from) || !isFinite(through) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, from, through)
	}

	if from > through {
		return Curve{}, nil
	}

	count := math.Floor((through-from)/cfg.Step) + 1
	if count >= maxCurveLen {
		return nil, fmt.Errorf("%w: %.0f points requested", ErrCurveTooLarge, count)
	}
	if cfg.MaxPoints > 0 && count > float64(cfg.MaxPoints) {
		return nil, fmt.Errorf("%w: %.0f points requested, limit is %d", ErrCurveTooLarge, count, cfg.MaxPoints)
	}

	curve := make(Curve, 0, min(int(count)+1, curvePrealloc))
	for i := 0; ; i++ {
		x := from + float64(i)*cfg.Step
		if x > through {
			break
		}

		y := est.Estimate(x)
		if cfg.Clamp {
			y = max(y, cfg.ClampFloor)
		}
		curve = append(curve, Point{X: x, Y: y})
	}

	return curve, nil
}

const (
	// maxCurveLen keeps the sample index exact in float64 and the length in int.
	maxCurveLen = 1 << 52
	// curvePrealloc caps the up-front allocation; larger curves grow by append.
	curvePrealloc = 1 << 16
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
