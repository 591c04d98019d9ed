package stages

import (
	"context"
	"fmt"

	"github.com/kjsanger/terraforge/pkg/csp"
	"github.com/kjsanger/terraforge/pkg/rng"
	"github.com/kjsanger/terraforge/pkg/spatial"
	"github.com/kjsanger/terraforge/pkg/spline"
	"github.com/kjsanger/terraforge/pkg/world"
)

const (
	hillWidth   = 80
	holeWidth   = 60
	islandWidth = 120
)

// DefineHillsHolesIslands places hill, hole, and floating-island minibiomes
// along the Surface band via a joint CSP over pairwise and cross-class
// distance constraints, then carves each placement: hills and holes as
// spline profiles, islands as rasterized ellipses.
//
// Grounded on original_source/src/pcg.h's define_hills_holes_islands.
func DefineHillsHolesIslands(ctx context.Context, w *world.World) error {
	r := w.RNGForStage("hills_holes_islands")
	cfg := w.Config()

	hillCount := int(cfg.Minibiomes.Hills * 12)
	holeCount := int(cfg.Minibiomes.Holes * 10)
	islandCount := int(cfg.Minibiomes.Islands * 8)

	hills := namedVars("hill", hillCount)
	holes := namedVars("hole", holeCount)
	islands := namedVars("island", islandCount)

	domain := stepRange(oceanWidth+50, w.Width()-2*oceanWidth-50, 50)
	domains := make(map[string][]int)
	allVars := append(append(append([]string{}, hills...), holes...), islands...)
	for _, v := range allVars {
		domains[v] = domain
	}

	solver := csp.NewSolver(allVars, domains)
	addCrossClassDistances(solver, r, holes, hills, holeWidth, hillWidth)
	addWithinClassDistances(solver, r, holes, holeWidth)
	addWithinClassDistances(solver, r, hills, hillWidth)
	addCrossClassDistances(solver, r, hills, islands, hillWidth, islandWidth)
	addWithinClassDistances(solver, r, islands, islandWidth)

	result, err := solver.Search(ctx)
	if err == csp.ErrUnsatisfiable {
		return fmt.Errorf("%w: DEFINITION OF HILLS, HOLES, ISLANDS INFEASIBLE", ErrInfeasible)
	}
	if err != nil {
		return err
	}

	surface := zoneRect(w, world.Surface)

	for _, v := range holes {
		x := result[v]
		rect := spatial.NewRect(x-holeWidth/2, surface.Y, holeWidth, surface.H)
		pixels := carveHole(rect, r)
		w.AddStructure(&world.Structure{Tag: world.Hole, Pixels: pixels})
	}
	for _, v := range hills {
		x := result[v]
		rect := spatial.NewRect(x-hillWidth/2, surface.Y, hillWidth, surface.H)
		pixels := carveHill(rect, r)
		w.AddStructure(&world.Structure{Tag: world.Hill, Pixels: pixels})
	}
	for _, v := range islands {
		x := result[v]
		rect := spatial.NewRect(x-islandWidth/2, surface.Y, islandWidth, 50)
		pixels := carveIsland(rect)
		w.AddStructure(&world.Structure{Tag: world.FloatingIsland, Pixels: pixels})
	}

	return nil
}

func namedVars(prefix string, count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = fmt.Sprintf("%s_%d", prefix, i)
	}
	return out
}

// addCrossClassDistances adds a DistanceConstraint between every pair drawn
// one from each class, with a per-pair minimum distance of (20+r)+max(wa,wb)
// where r in [0,80) is drawn once per pair, matching the original's
// `ForEach` helper.
func addCrossClassDistances(s *csp.Solver, r *rng.RNG, a, b []string, wa, wb int) {
	width := wa
	if wb > width {
		width = wb
	}
	for _, va := range a {
		for _, vb := range b {
			minD := 20 + r.Intn(80) + width
			s.AddConstraint(csp.NewDistanceConstraint(va, vb, minD))
		}
	}
}

// addWithinClassDistances adds a DistanceConstraint between every distinct
// pair within one class, matching the original's `Between` helper.
func addWithinClassDistances(s *csp.Solver, r *rng.RNG, vars []string, width int) {
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			minD := 20 + r.Intn(80) + width
			s.AddConstraint(csp.NewDistanceConstraint(vars[i], vars[j], minD))
		}
	}
}

// carveHill fills, for each x in rect, from the spline profile down to the
// bottom of rect. Boundary conditions match CreateHill's effective
// runtime behavior: tk::spline::set_boundary is called twice in the
// original with the second call silently winning, so only second-derivative
// 0 at both ends is ever in effect (see DESIGN.md).
func carveHill(rect spatial.Rect, r *rng.RNG) *spatial.PixelSet {
	sx := float64(rect.X)
	cx := float64(rect.X + rect.W/4 + r.Intn(rect.W/4+1))
	ex := float64(rect.X + rect.W)
	sy := float64(rect.Y + rect.H - r.Intn(rect.H/3+1))
	ey := sy + float64(-8+r.Intn(17))
	cyMin := sy
	if ey < cyMin {
		cyMin = ey
	}
	cy := cyMin - float64(20+r.Intn(40))

	s := spline.New(
		[3]float64{sx, cx, ex},
		[3]float64{sy, cy, ey},
		spline.Boundary{Kind: spline.SecondDerivative, Value: 0},
		spline.Boundary{Kind: spline.SecondDerivative, Value: 0},
	)
	return fillFromSpline(rect, s)
}

// carveHole mirrors carveHill with CreateHole's profile and effective
// boundary (second-derivative 0.1 at both ends, see DESIGN.md).
func carveHole(rect spatial.Rect, r *rng.RNG) *spatial.PixelSet {
	sx := float64(rect.X)
	cx := float64(rect.X + rect.W/4 + r.Intn(rect.W/4+1))
	ex := float64(rect.X + rect.W)
	sy := float64(rect.Y+rect.H-r.Intn(rect.H/3+1)) - 32
	ey := sy + float64(-8+r.Intn(17))
	cyMax := sy
	if ey > cyMax {
		cyMax = ey
	}
	span := cyMax - float64(rect.Y+rect.H)
	if span < 1 {
		span = 1
	}
	cy := cyMax + float64(r.Intn(int(span)+1))

	s := spline.New(
		[3]float64{sx, cx, ex},
		[3]float64{sy, cy, ey},
		spline.Boundary{Kind: spline.SecondDerivative, Value: 0.1},
		spline.Boundary{Kind: spline.SecondDerivative, Value: 0.1},
	)
	return fillFromSpline(rect, s)
}

func fillFromSpline(rect spatial.Rect, s *spline.Spline) *spatial.PixelSet {
	out := spatial.NewPixelSet()
	for x := rect.X; x < rect.X+rect.W; x++ {
		y0 := int(s.Eval(float64(x)))
		for y := y0; y < rect.Y+rect.H; y++ {
			out.AddXY(x, y)
		}
	}
	return out
}

// carveIsland rasterizes an ellipse-like PixelSet inscribed in rect.
func carveIsland(rect spatial.Rect) *spatial.PixelSet {
	out := spatial.NewPixelSet()
	cx := float64(rect.X) + float64(rect.W)/2
	cy := float64(rect.Y) + float64(rect.H)/2
	rx := float64(rect.W) / 2
	ry := float64(rect.H) / 2
	rect.Each(func(p spatial.Pixel) bool {
		dx := (float64(p.X) + 0.5 - cx) / rx
		dy := (float64(p.Y) + 0.5 - cy) / ry
		if dx*dx+dy*dy <= 1.0 {
			out.Add(p)
		}
		return true
	})
	return out
}
