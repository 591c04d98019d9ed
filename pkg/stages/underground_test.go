package stages

import (
	"context"
	"testing"

	"github.com/kjsanger/terraforge/pkg/world"
)

func TestGenerateCaveLakes_NoCavesYieldsEmptyWater(t *testing.T) {
	w := worldWithBiomes(t, 4200, 1200)
	if err := GenerateCaveLakes(context.Background(), w); err != nil {
		t.Fatalf("GenerateCaveLakes() error = %v", err)
	}
	if findStructure(w, world.Water) != nil {
		t.Fatalf("expected no Water structure published when no caves exist")
	}
}

func TestGenerateCavernOres_Deterministic(t *testing.T) {
	w1 := worldWithBiomes(t, 4200, 1200)
	w2 := worldWithBiomes(t, 4200, 1200)
	if err := GenerateCavernOres(context.Background(), w1); err != nil {
		t.Fatalf("GenerateCavernOres() error = %v", err)
	}
	if err := GenerateCavernOres(context.Background(), w2); err != nil {
		t.Fatalf("GenerateCavernOres() error = %v", err)
	}
	o1 := findStructure(w1, world.Ore)
	o2 := findStructure(w2, world.Ore)
	if o1.Pixels.Len() != o2.Pixels.Len() {
		t.Fatalf("ore counts differ across identical seeds: %d vs %d", o1.Pixels.Len(), o2.Pixels.Len())
	}
}

func TestGenerateSurfaceOres_ZeroFrequencyProducesNoOre(t *testing.T) {
	w := worldWithBiomes(t, 4200, 1200)
	cfg := w.Config()
	cfg.Ores.Copper.Frequency = 0
	cfg.Ores.Iron.Frequency = 0
	cfg.Ores.Silver.Frequency = 0
	cfg.Ores.Gold.Frequency = 0

	if err := GenerateSurfaceOres(context.Background(), w); err != nil {
		t.Fatalf("GenerateSurfaceOres() error = %v", err)
	}
	ore := findStructure(w, world.Ore)
	if ore == nil || ore.Pixels.Len() != 0 {
		t.Fatalf("expected empty Ore structure at zero frequency, got %v", ore)
	}
}
