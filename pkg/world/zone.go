package world

import "github.com/kjsanger/terraforge/pkg/spatial"

// HorizontalZoneTag identifies one of the five full-width vertical bands a
// world is partitioned into.
type HorizontalZoneTag int

const (
	Space HorizontalZoneTag = iota
	Surface
	Underground
	Cavern
	Hell
)

// String returns the human-readable zone name.
func (t HorizontalZoneTag) String() string {
	switch t {
	case Space:
		return "Space"
	case Surface:
		return "Surface"
	case Underground:
		return "Underground"
	case Cavern:
		return "Cavern"
	case Hell:
		return "Hell"
	default:
		return "Unknown"
	}
}

// HorizontalZone is one full-width band, Y-ordered top to bottom.
type HorizontalZone struct {
	Tag  HorizontalZoneTag
	Rect spatial.Rect
}

// DefineHorizontalZones partitions [0,height) into the five zones: Space
// 2/20, Surface 4/20, Underground 4/20+1, Cavern 7/20, Hell 3/20. Each
// height is computed directly from its own fraction of height rather than
// from a running remainder, matching the original generator's per-zone
// formula (including its one-pixel Underground bump, which original_source
// carries unchanged from zone to zone rather than correcting).
func DefineHorizontalZones(width, height int) []HorizontalZone {
	heights := [5]int{
		height * 2 / 20,
		height * 4 / 20,
		height*4/20 + 1,
		height * 7 / 20,
		height * 3 / 20,
	}
	zones := make([]HorizontalZone, 5)
	y := 0
	for i := 0; i < 5; i++ {
		zones[i] = HorizontalZone{
			Tag:  HorizontalZoneTag(i),
			Rect: spatial.NewRect(0, y, width, heights[i]),
		}
		y += heights[i]
	}
	return zones
}
