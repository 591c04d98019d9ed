package view

import (
	"testing"

	"github.com/kjsanger/terraforge/pkg/spatial"
	"github.com/kjsanger/terraforge/pkg/world"
	"github.com/kjsanger/terraforge/pkg/worldconfig"
)

func TestView_ZonesAndDimensions(t *testing.T) {
	cfg := worldconfig.DefaultConfig()
	cfg.Seed = 9
	w := world.New(cfg.Width, cfg.Height, cfg)
	v := New(w)

	if v.Width() != cfg.Width || v.Height() != cfg.Height {
		t.Fatalf("View dimensions = (%d,%d), want (%d,%d)", v.Width(), v.Height(), cfg.Width, cfg.Height)
	}
	zones := v.Zones()
	if len(zones) != 5 {
		t.Fatalf("expected 5 zones, got %d", len(zones))
	}
	if zones[0].Tag != "Space" {
		t.Fatalf("expected first zone to be Space, got %q", zones[0].Tag)
	}
}

func TestView_CellAt_UnsetFieldsAreNoID(t *testing.T) {
	cfg := worldconfig.DefaultConfig()
	cfg.Seed = 9
	w := world.New(cfg.Width, cfg.Height, cfg)
	v := New(w)

	c := v.CellAt(0, 0)
	if c.BiomeID != world.NoID || c.StructureID != world.NoID {
		t.Fatalf("expected unset biome/structure ids, got %+v", c)
	}
	if c.ZoneID != 0 {
		t.Fatalf("expected (0,0) to belong to zone 0 (Space), got %d", c.ZoneID)
	}
}

func TestView_BiomesReflectRegistration(t *testing.T) {
	cfg := worldconfig.DefaultConfig()
	cfg.Seed = 9
	w := world.New(cfg.Width, cfg.Height, cfg)

	pixels := spatial.NewPixelSet()
	pixels.AddXY(10, 10)
	b := &world.Biome{Tag: world.Forest, Pixels: pixels}
	w.AddBiome(b)

	v := New(w)
	biomes := v.Biomes()
	if len(biomes) != 1 || biomes[0].Tag != "Forest" {
		t.Fatalf("expected one Forest biome in view, got %+v", biomes)
	}
}
