package stages

import (
	"context"
	"testing"

	"github.com/kjsanger/terraforge/pkg/spatial"
	"github.com/kjsanger/terraforge/pkg/world"
)

func fullWorld(t *testing.T, width, height int) *world.World {
	t.Helper()
	w := worldWithBiomes(t, width, height)
	if err := DefineHillsHolesIslands(context.Background(), w); err != nil && err != ErrInfeasible {
		t.Fatalf("DefineHillsHolesIslands() error = %v", err)
	}
	return w
}

func TestGenerateGrass_OneStructurePublished(t *testing.T) {
	w := fullWorld(t, 4200, 1200)
	if err := GenerateGrass(context.Background(), w); err != nil {
		t.Fatalf("GenerateGrass() error = %v", err)
	}
	grass := findStructure(w, world.GrassSurface)
	if grass == nil || grass.Pixels.Len() == 0 {
		t.Fatalf("expected a non-empty GrassSurface structure")
	}
}

func TestGenerateTrees_StaysWithinGrassColumns(t *testing.T) {
	w := fullWorld(t, 4200, 1200)
	if err := GenerateGrass(context.Background(), w); err != nil {
		t.Fatalf("GenerateGrass() error = %v", err)
	}
	if err := GenerateTrees(context.Background(), w); err != nil {
		t.Fatalf("GenerateTrees() error = %v", err)
	}
	grass := findStructure(w, world.GrassSurface)
	trees := findStructure(w, world.Tree)
	if trees == nil {
		t.Fatalf("expected a Tree structure to be published")
	}
	trees.Pixels.Each(func(p spatial.Pixel) bool {
		if !grass.Pixels.ContainsXY(p.X, p.Y+1) {
			t.Errorf("tree pixel %v does not sit on a grass pixel", p)
		}
		return true
	})
	// Trees stage must not fail even when no grass/forest exists.
	w2 := worldWithBiomes(t, 4200, 1200)
	if err := GenerateTrees(context.Background(), w2); err != nil {
		t.Fatalf("GenerateTrees() on world without grass error = %v", err)
	}
}

func TestGenerateOceanLeftRight_ProducesSandAndWater(t *testing.T) {
	w := worldWithBiomes(t, 4200, 1200)
	if err := GenerateOceanLeftRight(context.Background(), w); err != nil {
		t.Fatalf("GenerateOceanLeftRight() error = %v", err)
	}
	sand := findStructure(w, world.Sand)
	water := findStructure(w, world.Water)
	if sand == nil || sand.Pixels.Len() == 0 {
		t.Fatalf("expected non-empty Sand structure")
	}
	if water == nil || water.Pixels.Len() == 0 {
		t.Fatalf("expected non-empty Water structure")
	}
}

func TestGenerateCliffsTransitions_Deterministic(t *testing.T) {
	w1 := worldWithBiomes(t, 4200, 1200)
	w2 := worldWithBiomes(t, 4200, 1200)
	if err := GenerateCliffsTransitions(context.Background(), w1); err != nil {
		t.Fatalf("GenerateCliffsTransitions() error = %v", err)
	}
	if err := GenerateCliffsTransitions(context.Background(), w2); err != nil {
		t.Fatalf("GenerateCliffsTransitions() error = %v", err)
	}
	t1 := findStructure(w1, world.TransitionMaterial)
	t2 := findStructure(w2, world.TransitionMaterial)
	if t1.Pixels.Len() != t2.Pixels.Len() {
		t.Fatalf("transition pixel counts differ across identical seeds: %d vs %d", t1.Pixels.Len(), t2.Pixels.Len())
	}
}

func TestGenerateCaves_RespectsCancellation(t *testing.T) {
	w := worldWithBiomes(t, 4200, 1200)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := GenerateCaves(ctx, w); err == nil {
		t.Fatalf("expected cancellation error from GenerateCaves with pre-cancelled context")
	}
}

func TestGenerateSurfaceOres_PublishesOreStructure(t *testing.T) {
	w := worldWithBiomes(t, 4200, 1200)
	if err := GenerateSurfaceOres(context.Background(), w); err != nil {
		t.Fatalf("GenerateSurfaceOres() error = %v", err)
	}
	ore := findStructure(w, world.Ore)
	if ore == nil {
		t.Fatalf("expected an Ore structure to be published")
	}
}

func TestGenerateUndergroundMaterials_ExcludesCaves(t *testing.T) {
	w := worldWithBiomes(t, 4200, 1200)
	if err := GenerateCaves(context.Background(), w); err != nil {
		t.Fatalf("GenerateCaves() error = %v", err)
	}
	if err := GenerateUndergroundMaterials(context.Background(), w); err != nil {
		t.Fatalf("GenerateUndergroundMaterials() error = %v", err)
	}
	caves := findStructure(w, world.Cave)
	fill := findStructure(w, world.SurfacePart)
	if caves == nil || fill == nil {
		t.Fatalf("expected both Cave and SurfacePart structures")
	}
	caves.Pixels.Each(func(p spatial.Pixel) bool {
		if fill.Pixels.Contains(p) {
			t.Errorf("cave pixel %v leaked into underground SurfacePart fill", p)
		}
		return true
	})
}
