package stages

import (
	"context"
	"fmt"

	"github.com/kjsanger/terraforge/pkg/csp"
	"github.com/kjsanger/terraforge/pkg/spatial"
	"github.com/kjsanger/terraforge/pkg/world"
)

const (
	castleWidth  = 250
	castleHeight = 200
	castleStride = 10
)

// DefineCastles places one castle per biome (forest, jungle, tundra), each
// with its own InsidePixelSet2D constraint; no pairwise distance constraint
// is needed because the three biomes are disjoint.
//
// Grounded on original_source/src/pcg.h's define_castles.
func DefineCastles(ctx context.Context, w *world.World) error {
	ug := zoneRect(w, world.Underground)
	cavern := zoneRect(w, world.Cavern)
	ucRect := ug.Union(cavern)

	type biomeSlot struct {
		variable string
		biome    *world.Biome
		rect     spatial.Rect
	}

	var slots []biomeSlot
	for _, tag := range []world.BiomeTag{world.Forest, world.Jungle, world.Tundra} {
		b := findBiome(w, tag)
		if b == nil {
			continue
		}
		rect := ucRect.Intersection(b.Pixels.BBox())
		if rect.Empty() {
			continue
		}
		slots = append(slots, biomeSlot{variable: tag.String() + "_castle", biome: b, rect: rect})
	}
	if len(slots) == 0 {
		return fmt.Errorf("%w: COULD NOT FIND SOLUTION FOR CASTLE PLACEMENT", ErrInfeasible)
	}

	vars := make([]string, len(slots))
	domains := make(map[string][]int, len(slots))
	for i, slot := range slots {
		vars[i] = slot.variable
		domains[slot.variable] = domainInsidePixelSet(slot.rect, slot.biome.Pixels, castleStride)
	}

	solver := csp.NewSolver(vars, domains)
	for _, slot := range slots {
		solver.AddConstraint(csp.NewInsidePixelSet2D(slot.variable, castleWidth, castleHeight, slot.biome.Pixels, toPixelRect(slot.rect)))
	}

	result, err := solver.Search(ctx)
	if err == csp.ErrUnsatisfiable {
		return fmt.Errorf("%w: COULD NOT FIND SOLUTION FOR CASTLE PLACEMENT", ErrInfeasible)
	}
	if err != nil {
		return err
	}

	for _, slot := range slots {
		val := result[slot.variable]
		x := slot.rect.X + castleWidth/2 + val%slot.rect.W
		y := slot.rect.Y + castleHeight/2 + val/slot.rect.W
		rect := spatial.NewRect(x-castleWidth/2, y-castleHeight/2, castleWidth, castleHeight)
		w.AddStructure(&world.Structure{Tag: world.Castle, Pixels: spatial.NewPixelSetFromRect(rect)})
	}
	return nil
}
