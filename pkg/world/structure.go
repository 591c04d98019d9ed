package world

import "github.com/kjsanger/terraforge/pkg/spatial"

// StructureTag identifies a minibiome or surface feature. Structures may
// overlap biomes and each other; they are kept in an ordered collection so
// draw/read order is stable across runs.
type StructureTag int

const (
	Hill StructureTag = iota
	Hole
	FloatingIsland
	Cabin
	Castle
	Cave
	GrassSurface
	Tree
	Water
	Sand
	Ore
	TransitionMaterial
	SurfacePart
)

// String returns the human-readable structure tag name.
func (t StructureTag) String() string {
	switch t {
	case Hill:
		return "Hill"
	case Hole:
		return "Hole"
	case FloatingIsland:
		return "FloatingIsland"
	case Cabin:
		return "Cabin"
	case Castle:
		return "Castle"
	case Cave:
		return "Cave"
	case GrassSurface:
		return "GrassSurface"
	case Tree:
		return "Tree"
	case Water:
		return "Water"
	case Sand:
		return "Sand"
	case Ore:
		return "Ore"
	case TransitionMaterial:
		return "TransitionMaterial"
	case SurfacePart:
		return "SurfacePart"
	default:
		return "Unknown"
	}
}

// Structure is one minibiome or localized feature instance.
type Structure struct {
	ID     int
	Tag    StructureTag
	Pixels *spatial.PixelSet
}
