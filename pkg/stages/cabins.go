package stages

import (
	"context"
	"fmt"

	"github.com/kjsanger/terraforge/pkg/csp"
	"github.com/kjsanger/terraforge/pkg/spatial"
	"github.com/kjsanger/terraforge/pkg/world"
)

const (
	cabinWidth  = 80
	cabinHeight = 40
	cabinStride = 20
)

// DefineCabins places cabin minibiomes inside the Underground+Cavern band
// intersected with the Tundra biome, via a CSP with a pairwise
// NonIntersection2D constraint between every cabin slot and an
// InsidePixelSet2D constraint tying each slot to the Tundra pixel set.
//
// Grounded on original_source/src/pcg.h's define_cabins.
func DefineCabins(ctx context.Context, w *world.World) error {
	cfg := w.Config()
	cabinCount := int(cfg.Minibiomes.Cabins * 60)
	if cabinCount == 0 {
		return nil
	}

	tundra := findBiome(w, world.Tundra)
	if tundra == nil {
		return fmt.Errorf("%w: no Tundra biome registered before cabins", ErrInfeasible)
	}

	ug := zoneRect(w, world.Underground)
	cavern := zoneRect(w, world.Cavern)
	ucRect := ug.Union(cavern)
	tundraRect := ucRect.Intersection(tundra.Pixels.BBox())
	if tundraRect.Empty() {
		return fmt.Errorf("%w: COULD NOT FIND SOLUTION FOR CABIN PLACEMENT", ErrInfeasible)
	}

	domain := domainInsidePixelSet(tundraRect, tundra.Pixels, cabinStride)

	vars := namedVars("cabin", cabinCount)
	domains := make(map[string][]int, len(vars))
	for _, v := range vars {
		domains[v] = domain
	}

	solver := csp.NewSolver(vars, domains)
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			solver.AddConstraint(csp.NewNonIntersection2D(vars[i], vars[j], cabinWidth, cabinHeight, cabinWidth, cabinHeight, tundraRect.W))
		}
	}
	for _, v := range vars {
		solver.AddConstraint(csp.NewInsidePixelSet2D(v, cabinWidth, cabinHeight, tundra.Pixels, toPixelRect(tundraRect)))
	}

	result, err := solver.Search(ctx)
	if err == csp.ErrUnsatisfiable {
		return fmt.Errorf("%w: COULD NOT FIND SOLUTION FOR CABIN PLACEMENT", ErrInfeasible)
	}
	if err != nil {
		return err
	}

	for _, v := range vars {
		val := result[v]
		x := tundraRect.X + cabinWidth/2 + val%tundraRect.W
		y := tundraRect.Y + cabinHeight/2 + val/tundraRect.W
		rect := spatial.NewRect(x-cabinWidth/2, y-cabinHeight/2, cabinWidth, cabinHeight)
		w.AddStructure(&world.Structure{Tag: world.Cabin, Pixels: spatial.NewPixelSetFromRect(rect)})
	}
	return nil
}

func findBiome(w *world.World, tag world.BiomeTag) *world.Biome {
	for _, b := range w.Biomes() {
		if b.Tag == tag {
			return b
		}
	}
	return nil
}

// domainInsidePixelSet enumerates flattened indices 0,stride,2*stride,...
// within rect whose decoded pixel lies in set, matching
// original_source/src/pcg.h's DomainInsidePixelArray.
func domainInsidePixelSet(rect spatial.Rect, set *spatial.PixelSet, stride int) []int {
	var out []int
	if rect.W == 0 {
		return out
	}
	for v := 0; v < rect.W*rect.H; v += stride {
		x := rect.X + v%rect.W
		y := rect.Y + v/rect.W
		if set.ContainsXY(x, y) {
			out = append(out, v)
		}
	}
	return out
}

func toPixelRect(r spatial.Rect) csp.PixelRect {
	return csp.PixelRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
