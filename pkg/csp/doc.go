// Package csp implements a constraint-satisfaction solver used by the
// placement stages to decide where minibiomes may appear.
//
// A Variable is an opaque string identifier with a finite integer Domain.
// A Constraint references a subset of variables and implements a single
// predicate that must hold whenever all the variables it mentions are
// assigned; unassigned variables never falsify a constraint.
//
// Constraint kinds are a closed, tagged set (Distance, NonIntersection2D,
// InsidePixelSet2D). Each kind implements the Constraint interface and
// search calls Satisfied through that interface; the Kind tag is for
// logging and introspection only.
//
// Search is plain chronological backtracking: select the first unassigned
// variable in registration order, try its domain values in order, and
// backtrack on failure. The cancellation hook is polled at every recursive
// descent so a stage can be aborted promptly when the pipeline's wall-clock
// budget expires.
package csp
