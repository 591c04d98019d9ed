package spline

import "testing"

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestSpline_PassesThroughControlPoints(t *testing.T) {
	x := [3]float64{0, 5, 10}
	y := [3]float64{10, 2, 8}
	s := New(x, y, Boundary{Kind: SecondDerivative, Value: 0}, Boundary{Kind: SecondDerivative, Value: 0})

	for i := range x {
		got := s.Eval(x[i])
		if !approxEqual(got, y[i], 1e-9) {
			t.Errorf("Eval(%v) = %v, want %v", x[i], got, y[i])
		}
	}
}

func TestSpline_NaturalBoundaryIsSmooth(t *testing.T) {
	x := [3]float64{0, 50, 100}
	y := [3]float64{100, 40, 110}
	s := New(x, y, Boundary{Kind: SecondDerivative, Value: 0}, Boundary{Kind: SecondDerivative, Value: 0})

	// A natural cubic spline's endpoint second derivatives are by
	// construction zero; sample near x[0] and x[2] to sanity check the
	// curve stays close to the control values there (no wild overshoot).
	if v := s.Eval(1); v > y[0]+20 || v < y[0]-20 {
		t.Errorf("Eval near left endpoint = %v, diverges from %v", v, y[0])
	}
}

func TestSpline_FirstDerivativeBoundary(t *testing.T) {
	x := [3]float64{0, 40, 80}
	y := [3]float64{50, 10, 60}
	s := New(x, y, Boundary{Kind: FirstDerivative, Value: -1}, Boundary{Kind: FirstDerivative, Value: 1})

	// Approximate the derivative at each end via a small finite difference
	// and check it is close to the clamped value.
	const h = 0.01
	leftDeriv := (s.Eval(h) - s.Eval(0)) / h
	rightDeriv := (s.Eval(80) - s.Eval(80-h)) / h

	if !approxEqual(leftDeriv, -1, 0.5) {
		t.Errorf("left derivative ~= %v, want near -1", leftDeriv)
	}
	if !approxEqual(rightDeriv, 1, 0.5) {
		t.Errorf("right derivative ~= %v, want near 1", rightDeriv)
	}
}

func TestSpline_HoleBoundaryCurvesDown(t *testing.T) {
	// Holes use small positive second derivative at both ends (per
	// pcg.h's effective CreateHole boundary), producing a concave-up bowl.
	x := [3]float64{0, 30, 60}
	y := [3]float64{0, -40, 0}
	s := New(x, y, Boundary{Kind: SecondDerivative, Value: 0.1}, Boundary{Kind: SecondDerivative, Value: 0.1})

	mid := s.Eval(30)
	if !approxEqual(mid, -40, 1e-6) {
		t.Errorf("Eval(30) = %v, want -40", mid)
	}
	if q := s.Eval(15); q > 0 {
		t.Errorf("Eval(15) = %v, want negative (bowl shape)", q)
	}
}
