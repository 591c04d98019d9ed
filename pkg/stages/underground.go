package stages

import (
	"context"

	"github.com/kjsanger/terraforge/pkg/rng"
	"github.com/kjsanger/terraforge/pkg/spatial"
	"github.com/kjsanger/terraforge/pkg/world"
	"github.com/kjsanger/terraforge/pkg/worldconfig"
)

// GenerateCaves scatters Cave pockets through the Underground and Cavern
// bands. Per original_source/src/scene.h's GenerateStage4 dispatch, this
// stage may run concurrently with phase 1 (DefineBiomes) when
// Config.CavesParallelWithBiomes is set — it only touches the zone rects
// computed at World construction time and its own Cave structures, so it
// shares no write set with phase 1's biomes.
func GenerateCaves(ctx context.Context, w *world.World) error {
	r := w.RNGForStage("caves")
	band := zoneRect(w, world.Underground).Union(zoneRect(w, world.Cavern))
	if band.Empty() {
		return nil
	}

	caves := spatial.NewPixelSet()
	count := 40 + r.Intn(40)
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		scatterBlob(caves, r, band, 8, 24)
	}
	w.AddStructure(&world.Structure{Tag: world.Cave, Pixels: caves})
	return nil
}

// GenerateCaveLakes drops a Water pool into a subset of the cave pockets
// carved by GenerateCaves, modeling flooded cave floors.
func GenerateCaveLakes(ctx context.Context, w *world.World) error {
	caves := findStructure(w, world.Cave)
	if caves == nil || caves.Pixels.Len() == 0 {
		return nil
	}
	r := w.RNGForStage("cave_lakes")
	cavern := zoneRect(w, world.Cavern)

	lakes := spatial.NewPixelSet()
	caves.Pixels.Each(func(p spatial.Pixel) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		if cavern.Contains(p) && r.Float64() < 0.05 {
			lakes.Add(p)
		}
		return true
	})
	if ctx.Err() != nil {
		return ctx.Err()
	}
	w.AddStructure(&world.Structure{Tag: world.Water, Pixels: lakes})
	return nil
}

// GenerateSurfaceMaterials publishes a SurfacePart strip immediately below
// the grass line, standing in for the dirt/stone transition layer the
// original generator paints beneath the surface.
func GenerateSurfaceMaterials(ctx context.Context, w *world.World) error {
	return bandBelow(ctx, w, world.GrassSurface, world.SurfacePart, 6)
}

// GenerateSurfaceOres scatters the four ore types through the Surface band,
// each sized by its Config.Ores.<Name>.Frequency/Size sliders.
func GenerateSurfaceOres(ctx context.Context, w *world.World) error {
	return scatterOres(ctx, w, "surface_ores", zoneRect(w, world.Surface))
}

// GenerateUndergroundMaterials publishes the Underground band's filler
// SurfacePart layer (cave walls/floors not already claimed by a Cave).
func GenerateUndergroundMaterials(ctx context.Context, w *world.World) error {
	return fillZoneMinusStructures(ctx, w, world.Underground, world.SurfacePart, world.Cave)
}

// GenerateUndergroundOres scatters ore veins through the Underground band.
func GenerateUndergroundOres(ctx context.Context, w *world.World) error {
	return scatterOres(ctx, w, "underground_ores", zoneRect(w, world.Underground))
}

// GenerateCavernMaterials publishes the Cavern band's filler SurfacePart
// layer, excluding cave and cave-lake pixels.
func GenerateCavernMaterials(ctx context.Context, w *world.World) error {
	return fillZoneMinusStructures(ctx, w, world.Cavern, world.SurfacePart, world.Cave, world.Water)
}

// GenerateCavernOres scatters ore veins through the Cavern band, with the
// same per-ore vein count and size as the Surface and Underground passes.
func GenerateCavernOres(ctx context.Context, w *world.World) error {
	return scatterOres(ctx, w, "cavern_ores", zoneRect(w, world.Cavern))
}

func bandBelow(ctx context.Context, w *world.World, above, below world.StructureTag, thickness int) error {
	source := findStructure(w, above)
	if source == nil {
		return nil
	}
	out := spatial.NewPixelSet()
	source.Pixels.Each(func(p spatial.Pixel) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		for dy := 1; dy <= thickness; dy++ {
			out.AddXY(p.X, p.Y+dy)
		}
		return true
	})
	if ctx.Err() != nil {
		return ctx.Err()
	}
	w.AddStructure(&world.Structure{Tag: below, Pixels: out})
	return nil
}

func fillZoneMinusStructures(ctx context.Context, w *world.World, zone world.HorizontalZoneTag, outTag world.StructureTag, exclude ...world.StructureTag) error {
	rect := zoneRect(w, zone)
	if rect.Empty() {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	excluded := unionStructures(w, exclude...)
	fill := spatial.NewPixelSetFromRect(rect).Difference(excluded)
	w.AddStructure(&world.Structure{Tag: outTag, Pixels: fill})
	return nil
}

func scatterOres(ctx context.Context, w *world.World, stageName string, rect spatial.Rect) error {
	if rect.Empty() {
		return nil
	}
	r := w.RNGForStage(stageName)
	cfg := w.Config().Ores

	ores := spatial.NewPixelSet()
	for _, oc := range []worldconfig.OreConfig{cfg.Copper, cfg.Iron, cfg.Silver, cfg.Gold} {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		scatterOreVeins(ores, r, rect, oc)
	}
	w.AddStructure(&world.Structure{Tag: world.Ore, Pixels: ores})
	return nil
}

func scatterOreVeins(set *spatial.PixelSet, r *rng.RNG, rect spatial.Rect, oc worldconfig.OreConfig) {
	count := int(oc.Frequency * 20)
	minSize, maxSize := 3, 3+int(oc.Size*12)
	for i := 0; i < count; i++ {
		scatterBlob(set, r, rect, minSize, maxSize)
	}
}

// scatterBlob fills a randomly placed, randomly sized square blob within
// rect into set, following the minibiome fills' rect-stamping idiom rather
// than a full flood-fill (cheap and sufficient for decorative coverage).
func scatterBlob(set *spatial.PixelSet, r *rng.RNG, rect spatial.Rect, minSize, maxSize int) {
	if rect.Empty() {
		return
	}
	size := minSize
	if maxSize > minSize {
		size += r.Intn(maxSize - minSize)
	}
	cx := rect.X + r.Intn(rect.W)
	cy := rect.Y + r.Intn(rect.H)
	blob := spatial.NewRect(cx-size/2, cy-size/2, size, size).Intersection(rect)
	blob.Each(func(p spatial.Pixel) bool {
		set.Add(p)
		return true
	})
}
