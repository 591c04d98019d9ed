// Package rng provides deterministic random number generation for the
// terrain generation pipeline.
//
// # Overview
//
// The RNG type ensures reproducible world generation by deriving
// stage-specific seeds from a master seed. This allows each pipeline stage
// (horizontal zones, biomes, hills/holes/islands, cabins, castles, caves,
// surface/underground shaping) to have independent random sequences while
// maintaining overall determinism for a fixed (seed, config) pair.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: Top-level seed for the entire world
//   - stageName: Pipeline stage identifier (e.g., "hills_holes_islands")
//   - configHash: Hash of configuration parameters
//
// This ensures:
//  1. Same inputs always produce same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
// Create an RNG for each pipeline stage:
//
//	configHash := cfg.Hash()
//	biomeRNG := rng.NewRNG(cfg.Seed, "biomes", configHash)
//	hillRNG := rng.NewRNG(cfg.Seed, "hills_holes_islands", configHash)
//
// Use the RNG for all random decisions in that stage:
//
//	jungleAnchor := biomeRNG.IntRange(minX, maxX)
//	minPairDistance := hillRNG.IntRange(0, 80)
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance. Create stage-specific RNGs before spawning goroutines and pass
// them explicitly, so concurrent stages never contend over a shared source.
//
// # Performance
//
// The underlying math/rand.Rand is highly efficient:
//   - Uint64(): ~2ns per call
//   - Intn():   ~3ns per call
//   - Float64(): ~2ns per call
//
// Creating a new RNG costs ~8µs due to SHA-256 computation. Reuse RNG
// instances within a stage for best performance.
package rng
