package view

import (
	"github.com/kjsanger/terraforge/pkg/spatial"
	"github.com/kjsanger/terraforge/pkg/world"
)

// Zone is a read-only snapshot of one horizontal zone.
type Zone struct {
	Tag  string
	Rect spatial.Rect
}

// Biome is a read-only snapshot of one registered biome.
type Biome struct {
	ID   int
	Tag  string
	BBox spatial.Rect
	Size int
}

// Structure is a read-only snapshot of one registered minibiome/feature.
type Structure struct {
	ID   int
	Tag  string
	BBox spatial.Rect
	Size int
}

// Cell is the metadata attached to a single world cell, with ids resolved
// to -1 (world.NoID) when unset.
type Cell struct {
	ZoneID, BiomeID, StructureID int
}

// View wraps a *world.World in a read-only interface: every method returns
// copies or value types, never the World's internal PixelSets, so a
// renderer cannot accidentally mutate generation state.
type View struct {
	w *world.World
}

// New wraps w for read-only access.
func New(w *world.World) *View {
	return &View{w: w}
}

// Width and Height return the world's raster dimensions.
func (v *View) Width() int  { return v.w.Width() }
func (v *View) Height() int { return v.w.Height() }

// Seed returns the master seed used to generate the world.
func (v *View) Seed() uint64 { return v.w.Seed() }

// Zones returns the five horizontal zones, top to bottom.
func (v *View) Zones() []Zone {
	zones := v.w.Zones()
	out := make([]Zone, len(zones))
	for i, z := range zones {
		out[i] = Zone{Tag: z.Tag.String(), Rect: z.Rect}
	}
	return out
}

// Biomes returns every currently registered biome, in registration order.
func (v *View) Biomes() []Biome {
	biomes := v.w.Biomes()
	out := make([]Biome, len(biomes))
	for i, b := range biomes {
		out[i] = Biome{ID: b.ID, Tag: b.Tag.String(), BBox: b.Pixels.BBox(), Size: b.Pixels.Len()}
	}
	return out
}

// Structures returns every currently registered structure, in registration
// order.
func (v *View) Structures() []Structure {
	structures := v.w.Structures()
	out := make([]Structure, len(structures))
	for i, s := range structures {
		out[i] = Structure{ID: s.ID, Tag: s.Tag.String(), BBox: s.Pixels.BBox(), Size: s.Pixels.Len()}
	}
	return out
}

// CellAt returns the zone/biome/structure ids covering (x,y), with -1 for
// any field that is unset (world.NoID).
func (v *View) CellAt(x, y int) Cell {
	m := v.w.MetadataAt(x, y)
	return Cell{ZoneID: m.ZoneID, BiomeID: m.BiomeID, StructureID: m.StructureID}
}

// StructuresByTag filters Structures to a single tag name, a convenience
// for renderers that draw one structure kind per layer.
func (v *View) StructuresByTag(tag string) []Structure {
	var out []Structure
	for _, s := range v.Structures() {
		if s.Tag == tag {
			out = append(out, s)
		}
	}
	return out
}
