package pipeline

import "github.com/kjsanger/terraforge/pkg/stages"

// Bound directly to pkg/stages so stagedef.go's table reads as a plain
// list of names instead of a wall of package-qualified identifiers.
var (
	stagesDefineBiomes               = stages.DefineBiomes
	stagesDefineHillsHolesIslands    = stages.DefineHillsHolesIslands
	stagesDefineCabins               = stages.DefineCabins
	stagesDefineCastles              = stages.DefineCastles
	stagesGenerateCliffsTransitions  = stages.GenerateCliffsTransitions
	stagesGenerateOceanLeftRight     = stages.GenerateOceanLeftRight
	stagesGenerateChasms             = stages.GenerateChasms
	stagesGenerateLakes              = stages.GenerateLakes
	stagesGenerateJungleSwamp        = stages.GenerateJungleSwamp
	stagesGenerateGrass              = stages.GenerateGrass
	stagesGenerateIslands            = stages.GenerateIslands
	stagesGenerateTrees              = stages.GenerateTrees
	stagesGenerateSurfaceMaterials   = stages.GenerateSurfaceMaterials
	stagesGenerateSurfaceOres        = stages.GenerateSurfaceOres
	stagesGenerateCaves              = stages.GenerateCaves
	stagesGenerateUndergroundMaterials = stages.GenerateUndergroundMaterials
	stagesGenerateUndergroundOres    = stages.GenerateUndergroundOres
	stagesGenerateCavernMaterials    = stages.GenerateCavernMaterials
	stagesGenerateCavernOres         = stages.GenerateCavernOres
	stagesGenerateCaveLakes          = stages.GenerateCaveLakes
)
