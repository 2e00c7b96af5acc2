package session

import (
	"github.com/google/uuid"

	"github.com/arloliu/linfit/internal/hash"
	"github.com/arloliu/linfit/regression"
	"github.com/arloliu/linfit/snapshot"
)

// State is everything one approximation workflow shows the user.
type State struct {
	// ID identifies the session in logs. Clear keeps it.
	ID string
	// RawX and RawY are the texts the user typed.
	RawX string
	RawY string
	// Points are the pairs parsed from RawX and RawY.
	Points regression.PointSet
	// Dropped counts the tokens Parse ignored on both sides.
	Dropped int
	// Line is the last successful fit, nil before one.
	Line *regression.Line
	// Curve is what a chart draws: the raw points after Parse, the sampled
	// line after Approximate.
	Curve regression.Curve
	// Message describes the last failure and is empty otherwise.
	Message string
	// Err is the error behind Message.
	Err error
}

// NewState starts a session with a fresh ID and the given input text.
func NewState(rawX, rawY string) State {
	return State{
		ID:   uuid.NewString(),
		RawX: rawX,
		RawY: rawY,
	}
}

// WithInput returns a copy of st with new input text. Parsed data is kept
// until the next Parse.
func (st State) WithInput(rawX, rawY string) State {
	st.RawX, st.RawY = rawX, rawY
	return st
}

// HasError reports whether the last transition failed.
func (st State) HasError() bool {
	return st.Message != ""
}

// Fingerprint hashes the parsed points. Equal point sets in equal order
// share a fingerprint.
func (st State) Fingerprint() uint64 {
	return hash.Float64s(st.Points.Xs(), st.Points.Ys())
}

// Snapshot returns the persistable part of st.
func (st State) Snapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		Points: st.Points,
		Line:   st.Line,
		Curve:  st.Curve,
	}
}

// FromSnapshot rebuilds a State from a decoded snapshot under a fresh ID.
func FromSnapshot(s snapshot.Snapshot) State {
	st := NewState("", "")
	st.Points = s.Points
	st.Line = s.Line
	st.Curve = s.Curve

	return st
}
