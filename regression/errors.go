package regression

import "errors"

var (
	// ErrMismatchedLengths is returned when the X and Y inputs yield a different
	// number of valid values.
	ErrMismatchedLengths = errors.New("the number of X and Y values must match")
	// ErrInsufficientPoints is returned when a fit is requested for fewer than two points.
	ErrInsufficientPoints = errors.New("not enough points for approximation")
	// ErrDegenerateInput is returned when every point shares the same X value.
	ErrDegenerateInput = errors.New("all points have the same X value")
	// ErrInvalidStep is returned when the curve sampling step is not a positive finite number.
	ErrInvalidStep = errors.New("curve step must be a positive finite number")
	// ErrInvalidRange is returned when a curve bound is NaN or infinite.
	ErrInvalidRange = errors.New("curve range must be finite")
	// ErrCurveTooLarge is returned when sampling would exceed the configured point limit.
	ErrCurveTooLarge = errors.New("curve would exceed the maximum number of points")
)
