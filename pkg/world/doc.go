// Package world holds the generated terrain state: horizontal zones,
// biomes, structures (minibiomes), and a per-cell metadata grid, plus the
// status bookkeeping and stage-local RNG derivation the pipeline and stage
// library depend on.
//
// World is the mutable aggregate every stage reads and writes, with stable
// integer ids for biomes and structures (original_source/src/pcg.h keeps
// everything in flat global arrays; this package gives each entity an id
// instead, so Clear(phase) can invalidate a range without dangling
// pointers).
package world
