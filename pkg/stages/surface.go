package stages

import (
	"context"

	"github.com/kjsanger/terraforge/pkg/spatial"
	"github.com/kjsanger/terraforge/pkg/world"
)

// GenerateGrass publishes a thin GrassSurface strip along the topmost
// non-empty row of each column in the Surface band that isn't already
// claimed by a Hill, Hole, or Cave structure — the "surface line" a
// renderer draws grass on.
func GenerateGrass(ctx context.Context, w *world.World) error {
	surface := zoneRect(w, world.Surface)
	occupied := unionStructures(w, world.Hill, world.Hole, world.Cave)

	grass := spatial.NewPixelSet()
	for x := 0; x < w.Width(); x++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		y := topFreeRow(occupied, x, surface)
		if y >= 0 {
			grass.AddXY(x, y)
		}
	}
	w.AddStructure(&world.Structure{Tag: world.GrassSurface, Pixels: grass})
	return nil
}

func topFreeRow(occupied *spatial.PixelSet, x int, surface spatial.Rect) int {
	for y := surface.Y; y < surface.Y+surface.H; y++ {
		if !occupied.ContainsXY(x, y) {
			return y
		}
	}
	return -1
}

// GenerateTrees scatters Tree structures one row above the grass line within
// Forest/Jungle biomes. It does not check for minibiomes: a grass pixel
// above a hill can carry a tree like any other.
// The pipeline budgets this stage at 2s; the stage itself polls ctx
// between columns so a budget timeout returns promptly.
func GenerateTrees(ctx context.Context, w *world.World) error {
	grass := findStructure(w, world.GrassSurface)
	if grass == nil {
		return nil
	}
	r := w.RNGForStage("trees")
	forestLike := unionBiomes(w, world.Forest, world.Jungle)

	trees := spatial.NewPixelSet()
	grass.Pixels.Each(func(p spatial.Pixel) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		if forestLike.ContainsXY(p.X, p.Y) && r.Float64() < 0.15 {
			trees.AddXY(p.X, p.Y-1)
		}
		return true
	})
	if ctx.Err() != nil {
		return ctx.Err()
	}
	w.AddStructure(&world.Structure{Tag: world.Tree, Pixels: trees})
	return nil
}

// GenerateOceanLeftRight trims a sandy shoreline onto the inner edge of
// each ocean biome and fills its body with Water, matching the original
// generator's shoreline dressing pass for the two static ocean biomes.
func GenerateOceanLeftRight(ctx context.Context, w *world.World) error {
	for _, tag := range []world.BiomeTag{world.OceanLeft, world.OceanRight} {
		b := findBiome(w, tag)
		if b == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		water := spatial.NewPixelSet()
		sand := spatial.NewPixelSet()
		bbox := b.Pixels.BBox()
		shoreX := bbox.X + 7
		if tag == world.OceanLeft {
			shoreX = bbox.X + bbox.W - 8
		}
		b.Pixels.Each(func(p spatial.Pixel) bool {
			if (tag == world.OceanLeft && p.X >= shoreX) || (tag == world.OceanRight && p.X <= shoreX) {
				sand.Add(p)
			} else {
				water.Add(p)
			}
			return true
		})
		w.AddStructure(&world.Structure{Tag: world.Sand, Pixels: sand})
		w.AddStructure(&world.Structure{Tag: world.Water, Pixels: water})
	}
	return nil
}

// GenerateJungleSwamp lays a band of Water across the lower third of the
// Jungle biome, modeling the swamp floor the original generator carves
// beneath jungle terrain.
func GenerateJungleSwamp(ctx context.Context, w *world.World) error {
	jungle := findBiome(w, world.Jungle)
	if jungle == nil {
		return nil
	}
	bbox := jungle.Pixels.BBox()
	swampTop := bbox.Y + bbox.H*2/3
	swamp := spatial.NewPixelSet()
	jungle.Pixels.Each(func(p spatial.Pixel) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		if p.Y >= swampTop {
			swamp.Add(p)
		}
		return true
	})
	if ctx.Err() != nil {
		return ctx.Err()
	}
	w.AddStructure(&world.Structure{Tag: world.Water, Pixels: swamp})
	return nil
}

// GenerateCliffsTransitions publishes a one-pixel-wide TransitionMaterial
// seam at every biome-to-biome boundary along the Surface band, smoothing
// the otherwise hard edge between adjacent biome pixel sets.
func GenerateCliffsTransitions(ctx context.Context, w *world.World) error {
	surface := zoneRect(w, world.Surface)
	transitions := spatial.NewPixelSet()

	biomes := w.Biomes()
	for y := surface.Y; y < surface.Y+surface.H; y++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		var prevTag world.BiomeTag
		havePrev := false
		for x := 0; x < w.Width(); x++ {
			cur, ok := biomeAt(biomes, x, y)
			if ok && havePrev && cur != prevTag {
				transitions.AddXY(x, y)
			}
			if ok {
				prevTag, havePrev = cur, true
			}
		}
	}
	w.AddStructure(&world.Structure{Tag: world.TransitionMaterial, Pixels: transitions})
	return nil
}

// GenerateChasms carves a handful of narrow vertical rifts through the
// Underground band within Forest territory, each a few pixels wide.
func GenerateChasms(ctx context.Context, w *world.World) error {
	forest := findBiome(w, world.Forest)
	ug := zoneRect(w, world.Underground)
	if forest == nil {
		return nil
	}
	r := w.RNGForStage("chasms")
	bbox := forest.Pixels.BBox().Intersection(ug)
	if bbox.Empty() {
		return nil
	}

	chasms := spatial.NewPixelSet()
	count := 3 + r.Intn(4)
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		x := bbox.X + r.Intn(bbox.W)
		for y := bbox.Y; y < bbox.Y+bbox.H; y++ {
			for dx := 0; dx < 3; dx++ {
				if forest.Pixels.ContainsXY(x+dx, y) {
					chasms.AddXY(x+dx, y)
				}
			}
		}
	}
	w.AddStructure(&world.Structure{Tag: world.SurfacePart, Pixels: chasms})
	return nil
}

// GenerateLakes places shallow 20x8 Water pools at random points of the
// Forest-owned part of the Underground band.
func GenerateLakes(ctx context.Context, w *world.World) error {
	forest := findBiome(w, world.Forest)
	ug := zoneRect(w, world.Underground)
	if forest == nil {
		return nil
	}
	r := w.RNGForStage("lakes")
	bbox := forest.Pixels.BBox().Intersection(ug)
	if bbox.Empty() {
		return nil
	}

	lakes := spatial.NewPixelSet()
	count := 2 + r.Intn(3)
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		cx := bbox.X + r.Intn(bbox.W)
		cy := bbox.Y + r.Intn(bbox.H)
		rect := spatial.NewRect(cx-10, cy-4, 20, 8)
		rect.Each(func(p spatial.Pixel) bool {
			if forest.Pixels.ContainsXY(p.X, p.Y) {
				lakes.Add(p)
			}
			return true
		})
	}
	w.AddStructure(&world.Structure{Tag: world.Water, Pixels: lakes})
	return nil
}

// GenerateIslands trims a one-pixel Sand border onto each FloatingIsland's
// perimeter, the dressing pass original_source applies after an island's
// ellipse is carved.
func GenerateIslands(ctx context.Context, w *world.World) error {
	sand := spatial.NewPixelSet()
	found := false
	for _, islands := range w.Structures() {
		if islands.Tag != world.FloatingIsland {
			continue
		}
		found = true
		islands.Pixels.Each(func(p spatial.Pixel) bool {
			select {
			case <-ctx.Done():
				return false
			default:
			}
			if isPerimeter(islands.Pixels, p) {
				sand.Add(p)
			}
			return true
		})
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	if !found {
		return nil
	}
	w.AddStructure(&world.Structure{Tag: world.Sand, Pixels: sand})
	return nil
}

func isPerimeter(set *spatial.PixelSet, p spatial.Pixel) bool {
	neighbors := []spatial.Pixel{
		{X: p.X + 1, Y: p.Y}, {X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1}, {X: p.X, Y: p.Y - 1},
	}
	for _, n := range neighbors {
		if !set.Contains(n) {
			return true
		}
	}
	return false
}

func unionStructures(w *world.World, tags ...world.StructureTag) *spatial.PixelSet {
	out := spatial.NewPixelSet()
	want := make(map[world.StructureTag]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	for _, s := range w.Structures() {
		if want[s.Tag] {
			out = out.Union(s.Pixels)
		}
	}
	return out
}

func unionBiomes(w *world.World, tags ...world.BiomeTag) *spatial.PixelSet {
	out := spatial.NewPixelSet()
	want := make(map[world.BiomeTag]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	for _, b := range w.Biomes() {
		if want[b.Tag] {
			out = out.Union(b.Pixels)
		}
	}
	return out
}

func findStructure(w *world.World, tag world.StructureTag) *world.Structure {
	for _, s := range w.Structures() {
		if s.Tag == tag {
			return s
		}
	}
	return nil
}

func biomeAt(biomes []*world.Biome, x, y int) (world.BiomeTag, bool) {
	for _, b := range biomes {
		if b.Pixels.ContainsXY(x, y) {
			return b.Tag, true
		}
	}
	return 0, false
}
