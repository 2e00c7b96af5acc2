// Package linfit fits a least squares line through points typed as two
// free-text lists of numbers and samples the line for plotting.
//
// # Core Features
//
//   - Lenient parsing: anything that is not a number is skipped
//   - Closed-form ordinary least squares fit
//   - Approximation curve sampled every 0.1 along X, negative Y clamped to 0
//   - Comparison against hyperbolic, logarithmic, power, exponential and
//     quadratic models
//   - Checksummed binary snapshots with optional Zstd, S2 or LZ4 compression
//
// # Basic Usage
//
//	points, err := linfit.ParsePoints("1 2 3", "2 4 6")
//	if err != nil {
//	    return err // regression.ErrMismatchedLengths
//	}
//
//	line, curve, err := linfit.FitLinear(points)
//	if err != nil {
//	    return err // ErrInsufficientPoints or ErrDegenerateInput
//	}
//	fmt.Println(line)       // y = 2.0000x + 0.0000
//	fmt.Println(len(curve)) // 21
//
// Interactive callers keep a session.State and move it through
// Parse, Approximate and Clear:
//
//	st := linfit.NewSession("1 2 3", "2 4 6")
//	st = linfit.Approximate(linfit.Parse(st))
//	st = linfit.Clear(st)
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. The
// regression, session, snapshot and config packages offer full control.
package linfit

import (
	"fmt"

	"github.com/arloliu/linfit/internal/hash"
	"github.com/arloliu/linfit/regression"
	"github.com/arloliu/linfit/session"
	"github.com/arloliu/linfit/snapshot"
)

var defaultEngine = mustEngine()

// mustEngine builds the engine behind the package-level helpers. It takes
// no options, so a failure is a programming error.
func mustEngine() *session.Engine {
	eng, err := session.NewEngine()
	if err != nil {
		panic(fmt.Sprintf("linfit: default session engine: %v", err))
	}

	return eng
}

// ParsePoints pairs the numbers in rawX and rawY into points.
// See regression.ParsePoints.
func ParsePoints(rawX, rawY string) (regression.PointSet, error) {
	return regression.ParsePoints(rawX, rawY)
}

// FitLinear fits a line through points and samples it from min X to max X.
// See regression.FitLinear for the available options.
func FitLinear(points regression.PointSet, opts ...regression.CurveOption) (*regression.Line, regression.Curve, error) {
	return regression.FitLinear(points, opts...)
}

// Analyze fits every supported model and ranks them by R².
func Analyze(points regression.PointSet) (*regression.Result, error) {
	return regression.Analyze(points)
}

// NewSession starts a session for the given input text.
func NewSession(rawX, rawY string) session.State {
	return session.NewState(rawX, rawY)
}

// Parse runs the parse transition with default settings.
func Parse(st session.State) session.State {
	return defaultEngine.Parse(st)
}

// Approximate runs the fit transition with default settings.
func Approximate(st session.State) session.State {
	return defaultEngine.Approximate(st)
}

// Clear empties st, keeping only its ID.
func Clear(st session.State) session.State {
	return defaultEngine.Clear(st)
}

// EncodeSnapshot serializes the points, line and curve of st.
func EncodeSnapshot(st session.State, opts ...snapshot.EncoderOption) ([]byte, error) {
	return snapshot.Encode(st.Snapshot(), opts...)
}

// DecodeSnapshot restores a session from data written by EncodeSnapshot.
func DecodeSnapshot(data []byte) (session.State, error) {
	s, err := snapshot.Decode(data)
	if err != nil {
		return session.State{}, err
	}

	return session.FromSnapshot(s), nil
}

// Fingerprint returns the xxHash64 of the point coordinates, in order.
func Fingerprint(points regression.PointSet) uint64 {
	return hash.Float64s(points.Xs(), points.Ys())
}
