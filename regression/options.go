package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/linfit/internal/options"
)

const (
	// DefaultStep is the X distance between two consecutive curve points.
	DefaultStep = 0.1
	// DefaultClampFloor is the lowest Y a clamped curve point may take.
	DefaultClampFloor = 0.0
	// DefaultMaxPoints is the default curve size limit. Zero means unlimited.
	DefaultMaxPoints = 0
)

// CurveConfig holds the parameters used to sample a curve.
type CurveConfig struct {
	Step       float64
	Clamp      bool
	ClampFloor float64
	MaxPoints  int
}

// DefaultCurveConfig returns the sampling used for plotting: 0.1 steps with
// negative predictions raised to zero.
func DefaultCurveConfig() CurveConfig {
	return CurveConfig{
		Step:       DefaultStep,
		Clamp:      true,
		ClampFloor: DefaultClampFloor,
		MaxPoints:  DefaultMaxPoints,
	}
}

// CurveOption is a functional option for CurveConfig.
type CurveOption = options.Option[*CurveConfig]

// WithStep sets the sampling step. The step must be a positive finite number.
func WithStep(step float64) CurveOption {
	return options.New(func(cfg *CurveConfig) error {
		if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidStep, step)
		}
		cfg.Step = step

		return nil
	})
}

// WithClamp enables or disables raising sampled Y values to the clamp floor.
func WithClamp(enabled bool) CurveOption {
	return options.NoError(func(cfg *CurveConfig) {
		cfg.Clamp = enabled
	})
}

// WithClampFloor sets the lowest Y a clamped point may take.
func WithClampFloor(floor float64) CurveOption {
	return options.NoError(func(cfg *CurveConfig) {
		cfg.ClampFloor = floor
	})
}

// WithMaxPoints limits the number of sampled points. Values <= 0 remove the limit.
func WithMaxPoints(n int) CurveOption {
	return options.NoError(func(cfg *CurveConfig) {
		cfg.MaxPoints = max(n, 0)
	})
}

func newCurveConfig(opts []CurveOption) (CurveConfig, error) {
	cfg := DefaultCurveConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return CurveConfig{}, err
	}

	return cfg, nil
}

// NewCurveConfig applies opts to DefaultCurveConfig and returns the result,
// so callers can reject bad options before the first fit.
func NewCurveConfig(opts ...CurveOption) (CurveConfig, error) {
	return newCurveConfig(opts)
}
