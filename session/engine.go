package session

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/arloliu/linfit/internal/options"
	"github.com/arloliu/linfit/regression"
)

// MessagePrefix starts every State.Message.
const MessagePrefix = "Error: "

// Engine runs the Parse, Approximate and Clear transitions.
// It holds no session data and is safe for concurrent use.
type Engine struct {
	logger    *slog.Logger
	curveOpts []regression.CurveOption
}

// Option configures an Engine.
type Option = options.Option[*Engine]

// WithLogger sets the logger. A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	})
}

// WithCurveOptions sets the sampling options used by Approximate.
func WithCurveOptions(opts ...regression.CurveOption) Option {
	return options.New(func(e *Engine) error {
		if _, err := regression.NewCurveConfig(opts...); err != nil {
			return err
		}
		e.curveOpts = append(e.curveOpts, opts...)

		return nil
	})
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Parse turns st.RawX and st.RawY into points.
//
// Points, Line, Curve and Message are reset first. On success the curve
// shows the raw points until Approximate runs. On failure only Message and
// Err are set.
func (e *Engine) Parse(st State) State {
	st.Points, st.Line, st.Curve = nil, nil, nil
	st.Dropped = 0
	st.setError(nil)

	report, err := regression.ParseInput(st.RawX, st.RawY)
	st.Dropped = report.DroppedX + report.DroppedY
	if err != nil {
		e.logger.Warn("parse failed", "session", st.ID, "dropped", st.Dropped, "error", err)
		st.setError(err)

		return st
	}

	st.Points = report.Points
	st.Curve = report.Points.AsCurve()

	e.logger.Debug("parsed points",
		"session", st.ID,
		"points", len(st.Points),
		"dropped", st.Dropped,
		"fingerprint", fmt.Sprintf("%016x", st.Fingerprint()),
	)

	return st
}

// Approximate fits a line through st.Points and samples the curve.
//
// On failure Message and Err are set and the previous Line and Curve are
// kept, except that a line fitted before curve sampling failed replaces Line. On success Line and Curve are replaced and Message is cleared.
func (e *Engine) Approximate(st State) State {
	line, curve, err := regression.FitLinear(st.Points, e.curveOpts...)
	if err != nil {
		e.logger.Warn("approximation failed", "session", st.ID, "points", len(st.Points), "error", err)
		if line != nil {
			st.Line = line
		}
		st.setError(err)

		return st
	}

	st.Line, st.Curve = line, curve
	st.setError(nil)

	e.logger.Info("fitted line",
		"session", st.ID,
		"slope", line.Slope,
		"intercept", line.Intercept,
		"curve_points", len(curve),
	)

	return st
}

// Clear returns an empty State that keeps st.ID.
func (e *Engine) Clear(st State) State {
	e.logger.Debug("cleared session", "session", st.ID)
	return State{ID: st.ID}
}

func (st *State) setError(err error) {
	st.Err = err
	if err == nil {
		st.Message = ""
		return
	}
	st.Message = MessagePrefix + err.Error()
}
