package pipeline

import (
	"context"
	"time"

	"github.com/kjsanger/terraforge/pkg/world"
)

// StageFunc is the signature every stage in pkg/stages implements.
type StageFunc func(ctx context.Context, w *world.World) error

// StageDef registers one stage in a phase's table: its name (used for
// status/error lookup and log fields), the function to run, and an
// optional wall-clock Budget. A zero Budget means the stage runs with
// whatever deadline the phase/pipeline context already carries.
type StageDef struct {
	Name   string
	Phase  world.Phase
	Budget time.Duration
	Run    StageFunc
}

// DefaultStages is the full stage table for a standard generation run, in
// original_source/src/scene.h's DefaultScene::Run order. Phase 2's three
// placement stages and phase 3's tree stage carry a 5s/2s budget
// respectively, matching the original's std::async + wait_for(budget).
func DefaultStages() []StageDef {
	return []StageDef{
		{Name: "biomes", Phase: world.PhaseBiomes, Run: stagesDefineBiomes},

		{Name: "hills_holes_islands", Phase: world.PhasePlacement, Budget: 5 * time.Second, Run: stagesDefineHillsHolesIslands},
		{Name: "cabins", Phase: world.PhasePlacement, Budget: 5 * time.Second, Run: stagesDefineCabins},
		{Name: "castles", Phase: world.PhasePlacement, Budget: 5 * time.Second, Run: stagesDefineCastles},

		{Name: "cliffs_transitions", Phase: world.PhaseSurfaceShaping, Run: stagesGenerateCliffsTransitions},
		{Name: "ocean_left_right", Phase: world.PhaseSurfaceShaping, Run: stagesGenerateOceanLeftRight},
		{Name: "chasms", Phase: world.PhaseSurfaceShaping, Run: stagesGenerateChasms},
		{Name: "lakes", Phase: world.PhaseSurfaceShaping, Run: stagesGenerateLakes},
		{Name: "jungle_swamp", Phase: world.PhaseSurfaceShaping, Run: stagesGenerateJungleSwamp},
		{Name: "grass", Phase: world.PhaseSurfaceShaping, Run: stagesGenerateGrass},
		{Name: "islands", Phase: world.PhaseSurfaceShaping, Run: stagesGenerateIslands},
		{Name: "trees", Phase: world.PhaseSurfaceShaping, Budget: 2 * time.Second, Run: stagesGenerateTrees},
		{Name: "surface_materials", Phase: world.PhaseSurfaceShaping, Run: stagesGenerateSurfaceMaterials},
		{Name: "surface_ores", Phase: world.PhaseSurfaceShaping, Run: stagesGenerateSurfaceOres},

		{Name: "caves", Phase: world.PhaseUnderground, Run: stagesGenerateCaves},
		{Name: "underground_materials", Phase: world.PhaseUnderground, Run: stagesGenerateUndergroundMaterials},
		{Name: "underground_ores", Phase: world.PhaseUnderground, Run: stagesGenerateUndergroundOres},
		{Name: "cavern_materials", Phase: world.PhaseUnderground, Run: stagesGenerateCavernMaterials},
		{Name: "cavern_ores", Phase: world.PhaseUnderground, Run: stagesGenerateCavernOres},
		{Name: "cave_lakes", Phase: world.PhaseUnderground, Run: stagesGenerateCaveLakes},
	}
}
