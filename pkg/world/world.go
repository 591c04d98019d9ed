package world

import (
	"sync"

	"github.com/kjsanger/terraforge/pkg/rng"
	"github.com/kjsanger/terraforge/pkg/spatial"
	"github.com/kjsanger/terraforge/pkg/worldconfig"
)

// World is the mutable generation state every stage reads and writes:
// horizontal zones, biomes, structures, the per-cell metadata grid, and the
// status/error bookkeeping the pipeline consults between phases.
//
// Mutation is serialized by a single writer per stage. The stage table does
// not record write-sets; concurrent stages within a phase each add their
// own new structures rather than editing shared PixelSets, so World itself
// only guards the shared registries (biomes, structures) against
// concurrent id allocation, not the PixelSets they wrap.
type World struct {
	mu sync.Mutex

	width, height int
	seed          uint64
	config        *worldconfig.Config

	zones []HorizontalZone

	biomes      map[int]*Biome
	biomeOrder  []int
	nextBiomeID int

	structures      map[int]*Structure
	structureOrder  []int
	nextStructureID int

	metadata *perCellMetadata

	// phaseBiomeWatermark[p] and phaseStructureWatermark[p] record the id
	// counters at the moment phase p began, so Clear(p) knows which ids to
	// discard without ever reusing a freed id.
	phaseBiomeWatermark     [numPhases]int
	phaseStructureWatermark [numPhases]int

	stageStatus map[string]StageStatus
	stageError  map[string]error
	stagePhase  map[string]Phase
}

// New creates a World of the given dimensions and configuration, with
// horizontal zones already defined and stamped into the metadata grid
// (phase 0 has no inputs beyond dimensions, so it runs eagerly at
// construction).
func New(width, height int, cfg *worldconfig.Config) *World {
	w := &World{
		width:      width,
		height:     height,
		seed:       cfg.Seed,
		config:     cfg,
		zones:      DefineHorizontalZones(width, height),
		biomes:     make(map[int]*Biome),
		structures: make(map[int]*Structure),
		metadata:   newPerCellMetadata(width, height),

		stageStatus: make(map[string]StageStatus),
		stageError:  make(map[string]error),
		stagePhase:  make(map[string]Phase),
	}
	w.stampZones()
	return w
}

func (w *World) stampZones() {
	for i, z := range w.zones {
		zoneID := i
		z.Rect.Each(func(p spatial.Pixel) bool {
			w.metadata.SetZone(p.X, p.Y, zoneID)
			return true
		})
	}
}

// Width and Height return the world's dimensions.
func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

// Seed returns the master seed.
func (w *World) Seed() uint64 { return w.seed }

// Config returns the world's configuration.
func (w *World) Config() *worldconfig.Config { return w.config }

// Zones returns the five horizontal zones, top to bottom.
func (w *World) Zones() []HorizontalZone {
	return append([]HorizontalZone(nil), w.zones...)
}

// RNGForStage derives a stage-local RNG: each stage's random sequence is
// independent and reproducible given the same seed and config.
func (w *World) RNGForStage(stageName string) *rng.RNG {
	return rng.NewRNG(w.seed, stageName, w.config.Hash())
}

// AddBiome registers a new biome and returns its stable id.
func (w *World) AddBiome(b *Biome) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextBiomeID
	w.nextBiomeID++
	b.ID = id
	w.biomes[id] = b
	w.biomeOrder = append(w.biomeOrder, id)
	b.Pixels.Each(func(p spatial.Pixel) bool {
		w.metadata.SetBiome(p.X, p.Y, id)
		return true
	})
	return id
}

// Biomes returns all registered biomes in registration order.
func (w *World) Biomes() []*Biome {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*Biome, 0, len(w.biomeOrder))
	for _, id := range w.biomeOrder {
		if b, ok := w.biomes[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

// Biome looks up a biome by id. The second return is false if the id is
// unknown or was invalidated by a Clear.
func (w *World) Biome(id int) (*Biome, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, ok := w.biomes[id]
	return b, ok
}

// AddStructure registers a new structure and returns its stable id.
func (w *World) AddStructure(s *Structure) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextStructureID
	w.nextStructureID++
	s.ID = id
	w.structures[id] = s
	w.structureOrder = append(w.structureOrder, id)
	s.Pixels.Each(func(p spatial.Pixel) bool {
		w.metadata.SetStructure(p.X, p.Y, id)
		return true
	})
	return id
}

// Structures returns all registered structures in registration order.
func (w *World) Structures() []*Structure {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*Structure, 0, len(w.structureOrder))
	for _, id := range w.structureOrder {
		if s, ok := w.structures[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Structure looks up a structure by id. The second return is false if the
// id is unknown or was invalidated by a Clear.
func (w *World) Structure(id int) (*Structure, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, ok := w.structures[id]
	return s, ok
}

// MetadataAt returns the per-cell metadata at (x,y).
func (w *World) MetadataAt(x, y int) CellMeta {
	return w.metadata.At(x, y)
}

// BeginPhase records the current id watermarks for phase p, so a later
// Clear(p) knows exactly which entities to discard.
func (w *World) BeginPhase(p Phase) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.phaseBiomeWatermark[p] = w.nextBiomeID
	w.phaseStructureWatermark[p] = w.nextStructureID
}

// Clear resets all state produced at or after phase p, preserving earlier
// phases. Ids discarded by Clear are never reissued: the id counters are
// left untouched, only the registries and metadata are rolled back.
func (w *World) Clear(p Phase) {
	w.mu.Lock()
	defer w.mu.Unlock()

	minBiome := w.phaseBiomeWatermark[p]
	minStructure := w.phaseStructureWatermark[p]

	for id := range w.biomes {
		if id >= minBiome {
			delete(w.biomes, id)
		}
	}
	w.biomeOrder = filterBelow(w.biomeOrder, minBiome)

	for id := range w.structures {
		if id >= minStructure {
			delete(w.structures, id)
		}
	}
	w.structureOrder = filterBelow(w.structureOrder, minStructure)

	w.metadata.clearFrom("biome", minBiome)
	w.metadata.clearFrom("structure", minStructure)

	for name, ph := range w.stagePhase {
		if ph >= p {
			delete(w.stageStatus, name)
			delete(w.stageError, name)
		}
	}
}

func filterBelow(ids []int, min int) []int {
	out := ids[:0:0]
	for _, id := range ids {
		if id < min {
			out = append(out, id)
		}
	}
	return out
}

// SetStageStatus records a stage's status and, for phase bookkeeping,
// associates the stage name with its owning phase.
func (w *World) SetStageStatus(stageName string, phase Phase, status StageStatus) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stageStatus[stageName] = status
	w.stagePhase[stageName] = phase
}

// StageStatus returns a stage's current status (NotRun if never scheduled).
func (w *World) StageStatus(stageName string) StageStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stageStatus[stageName]
}

// SetStageError records a stage's terminal error.
func (w *World) SetStageError(stageName string, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stageError[stageName] = err
}

// StageError returns a stage's recorded error, if any.
func (w *World) StageError(stageName string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stageError[stageName]
}
