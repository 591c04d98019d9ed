// Package spline implements a natural cubic spline through three
// x-ordered control points, with caller-specified boundary conditions.
//
// It is used to carve hill tops and hole bottoms: a hill's profile is
// convex-up with a concave peak between its endpoints; a hole's profile is
// convex-down. Both are produced by the same solver with different
// boundary derivatives, matching the tk::spline usage in the original
// generator's CreateHill/CreateHole (original_source/src/pcg.h).
//
// No example repo in the retrieved pack vendors a cubic-spline library;
// this is a small, closed-form tridiagonal solve better hand-rolled than
// pulled in as a dependency (see DESIGN.md).
package spline
