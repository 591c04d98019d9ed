package world

import "github.com/kjsanger/terraforge/pkg/spatial"

// BiomeTag identifies a regional biome.
type BiomeTag int

const (
	OceanLeft BiomeTag = iota
	OceanRight
	Tundra
	Jungle
	Forest
)

// String returns the human-readable biome name.
func (t BiomeTag) String() string {
	switch t {
	case OceanLeft:
		return "OceanLeft"
	case OceanRight:
		return "OceanRight"
	case Tundra:
		return "Tundra"
	case Jungle:
		return "Jungle"
	case Forest:
		return "Forest"
	default:
		return "Unknown"
	}
}

// Biome is a tagged pixel region. Biomes registered against the same World
// are pairwise disjoint and, together, cover the Surface+Underground+
// Cavern band.
type Biome struct {
	ID     int
	Tag    BiomeTag
	Pixels *spatial.PixelSet
}
