package stages

import (
	"context"
	"fmt"

	"github.com/kjsanger/terraforge/pkg/csp"
	"github.com/kjsanger/terraforge/pkg/spatial"
	"github.com/kjsanger/terraforge/pkg/world"
	"github.com/kjsanger/terraforge/pkg/worldconfig"
)

const (
	oceanWidth  = 250
	tundraWidth = 500
	jungleWidth = 500
)

// DefineBiomes places the two oceans, the jungle and tundra strips (via a
// two-variable CSP distance constraint), and floods the remaining
// Surface-Underground-Cavern band with Forest instances.
//
// Grounded on original_source/src/pcg.h's define_biomes.
func DefineBiomes(ctx context.Context, w *world.World) error {
	surface := zoneRect(w, world.Surface)
	hell := zoneRect(w, world.Hell)
	band := spatial.NewRect(0, surface.Y, w.Width(), hell.Y-surface.Y)

	oceanLeftPixels := spatial.NewPixelSetFromRect(spatial.NewRect(0, surface.Y, oceanWidth, surface.H))
	oceanLeft := &world.Biome{Tag: world.OceanLeft, Pixels: oceanLeftPixels}
	w.AddBiome(oceanLeft)

	oceanRightPixels := spatial.NewPixelSetFromRect(spatial.NewRect(w.Width()-oceanWidth, surface.Y, oceanWidth, surface.H))
	oceanRight := &world.Biome{Tag: world.OceanRight, Pixels: oceanRightPixels}
	w.AddBiome(oceanRight)

	jungleX, tundraX, err := placeJungleTundra(ctx, w.Width())
	if err != nil {
		return err
	}

	slant := w.Config().BiomeSlant

	junglePixels := spatial.NewPixelSet()
	tundraPixels := spatial.NewPixelSet()
	for y := band.Y; y < band.Y+band.H; y++ {
		// offset grows with the absolute row coordinate, not the row's
		// position within the band: original_source's loop passes the same
		// counter as both the row and the slant offset, producing a strip
		// that leans further off-axis than its own width by the time it
		// reaches Hell. Preserved unchanged (see DESIGN.md).
		jOffset, tOffset := slantOffsets(slant, y)
		addVerticalBand(junglePixels, jungleX+jOffset, y, jungleWidth, 2)
		addVerticalBand(tundraPixels, tundraX+tOffset, y, tundraWidth, 2)
	}
	w.AddBiome(&world.Biome{Tag: world.Jungle, Pixels: junglePixels})
	w.AddBiome(&world.Biome{Tag: world.Tundra, Pixels: tundraPixels})

	return floodForests(ctx, w, band, oceanLeftPixels, oceanRightPixels, junglePixels, tundraPixels)
}

// placeJungleTundra runs the two-variable CSP that picks the jungle and
// tundra anchor x-coordinates subject to a minimum separation.
func placeJungleTundra(ctx context.Context, width int) (jungleX, tundraX int, err error) {
	domain := stepRange(oceanWidth+50, width-2*oceanWidth-50, 50)
	solver := csp.NewSolver([]string{"jungle", "tundra"}, map[string][]int{
		"jungle": domain,
		"tundra": domain,
	})
	solver.AddConstraint(csp.NewDistanceConstraint("jungle", "tundra", max(jungleWidth, tundraWidth)))

	result, searchErr := solver.Search(ctx)
	if searchErr == csp.ErrUnsatisfiable {
		return 0, 0, fmt.Errorf("%w: DEFINITION OF BIOMES (JUNGLE/TUNDRA) INFEASIBLE", ErrInfeasible)
	}
	if searchErr != nil {
		return 0, 0, searchErr
	}
	return result["jungle"], result["tundra"], nil
}

// slantOffsets picks the jungle/tundra slant direction. SlantOutward leans
// each strip away from its nearest ocean as depth i increases (jungle_x +
// i, tundra_x - i, matching original_source's sign); SlantInward flips
// both signs. See DESIGN.md for why SlantOutward is the default.
func slantOffsets(slant worldconfig.BiomeSlant, i int) (jungleOffset, tundraOffset int) {
	if slant == worldconfig.SlantInward {
		return -i, i
	}
	return i, -i
}

func addVerticalBand(set *spatial.PixelSet, centerX, y, width, thickness int) {
	for dy := 0; dy < thickness; dy++ {
		for dx := -width / 2; dx < width/2; dx++ {
			set.AddXY(centerX+dx, y+dy)
		}
	}
}

// floodForests repeatedly 4-connected-flood-fills the band minus all other
// biomes, publishing each connected component as its own Forest instance.
func floodForests(ctx context.Context, w *world.World, band spatial.Rect, used ...*spatial.PixelSet) error {
	remaining := spatial.NewPixelSetFromRect(band)
	for _, u := range used {
		remaining = remaining.Difference(u)
	}

	for remaining.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var seed spatial.Pixel
		remaining.Each(func(p spatial.Pixel) bool {
			seed = p
			return false
		})

		component := floodFill4(remaining, seed)
		w.AddBiome(&world.Biome{Tag: world.Forest, Pixels: component})
		component.Each(func(p spatial.Pixel) bool {
			remaining.Remove(p)
			return true
		})
	}
	return nil
}

// floodFill4 returns the 4-connected component of start within set.
func floodFill4(set *spatial.PixelSet, start spatial.Pixel) *spatial.PixelSet {
	component := spatial.NewPixelSet()
	stack := []spatial.Pixel{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if component.Contains(p) {
			continue
		}
		if !set.Contains(p) {
			continue
		}
		component.Add(p)
		stack = append(stack,
			spatial.Pixel{X: p.X + 1, Y: p.Y},
			spatial.Pixel{X: p.X - 1, Y: p.Y},
			spatial.Pixel{X: p.X, Y: p.Y + 1},
			spatial.Pixel{X: p.X, Y: p.Y - 1},
		)
	}
	return component
}

func zoneRect(w *world.World, tag world.HorizontalZoneTag) spatial.Rect {
	for _, z := range w.Zones() {
		if z.Tag == tag {
			return z.Rect
		}
	}
	return spatial.Rect{}
}

func stepRange(lo, hi, step int) []int {
	var out []int
	for v := lo; v <= hi; v += step {
		out = append(out, v)
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
