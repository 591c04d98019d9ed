// Package pipeline orchestrates the stage library in pkg/stages into the
// five-phase generation run: horizontal zones, biomes, minibiome placement,
// surface shaping, and underground materials/ores.
//
// Phases mirror original_source/src/scene.h's DefaultScene::Run: phase 2
// (hills/holes/islands, cabins, castles) runs its stages concurrently, each
// with a wall-clock budget, using goroutines, a context deadline per stage,
// and a WaitGroup. Phase 3's tree sub-stage has its own 2s budget but runs
// inline in phase 3's sequential order; it is not run concurrently with the
// other surface-shaping stages.
package pipeline
