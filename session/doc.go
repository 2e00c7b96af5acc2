// Package session holds the state of one approximation workflow and the
// transitions between its states.
//
// A State is a plain value. The Engine methods take a State and return the
// next one without mutating the input:
//
//	eng, _ := session.NewEngine(session.WithLogger(logger))
//	st := session.NewState("1 2 3", "2 4 6")
//	st = eng.Parse(st)       // Points set, Curve shows the raw points
//	st = eng.Approximate(st) // Line set, Curve sampled along the line
//	st = eng.Clear(st)       // back to empty
//
// Failures never escape as errors. They end up in State.Message, and the
// last error is kept in State.Err for callers that want errors.Is.
package session
