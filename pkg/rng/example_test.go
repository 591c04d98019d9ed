package rng_test

import (
	"crypto/sha256"
	"fmt"

	"github.com/kjsanger/terraforge/pkg/rng"
)

// ExampleNewRNG demonstrates creating a deterministic RNG for a pipeline stage.
func ExampleNewRNG() {
	// Master seed for the entire generation
	masterSeed := uint64(123456789)

	// Each pipeline stage gets its own RNG
	configHash := sha256.Sum256([]byte("world_config_v1"))

	// Create RNGs for different stages
	biomesRNG := rng.NewRNG(masterSeed, "biomes", configHash[:])
	placementRNG := rng.NewRNG(masterSeed, "hills_holes_islands", configHash[:])

	// Different stage names derive different seeds from the same master seed
	fmt.Println(biomesRNG.Seed() != placementRNG.Seed())

	// Same inputs always produce the same derived seed
	biomesRNG2 := rng.NewRNG(masterSeed, "biomes", configHash[:])
	fmt.Println(biomesRNG.Seed() == biomesRNG2.Seed())

	// Output:
	// true
	// true
}

// ExampleRNG_Shuffle demonstrates deterministic shuffling: the same seed
// and stage name always produce the same permutation.
func ExampleRNG_Shuffle() {
	masterSeed := uint64(42)
	configHash := sha256.Sum256([]byte("config"))

	shuffleOnce := func() []string {
		bands := []string{"Forest-A", "Forest-B", "Forest-C", "Forest-D", "Forest-E"}
		r := rng.NewRNG(masterSeed, "biomes", configHash[:])
		r.Shuffle(len(bands), func(i, j int) {
			bands[i], bands[j] = bands[j], bands[i]
		})
		return bands
	}

	first := shuffleOnce()
	second := shuffleOnce()

	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
		}
	}
	fmt.Println(same)

	// Output:
	// true
}

// ExampleRNG_WeightedChoice demonstrates weighted random selection over ore
// rarities, biased toward the common end of the weight list.
func ExampleRNG_WeightedChoice() {
	masterSeed := uint64(999)
	configHash := sha256.Sum256([]byte("config"))
	r := rng.NewRNG(masterSeed, "underground_ores", configHash[:])

	// Ore rarity weights: [copper, iron, silver, gold]
	weights := []float64{50.0, 30.0, 15.0, 5.0}
	ores := []string{"copper", "iron", "silver", "gold"}

	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[ores[r.WeightedChoice(weights)]]++
	}

	fmt.Println(counts["copper"] > counts["iron"])
	fmt.Println(counts["iron"] > counts["silver"])
	fmt.Println(counts["silver"] > counts["gold"])

	// Output:
	// true
	// true
	// true
}

// ExampleRNG_Float64Range demonstrates generating bounded float parameters,
// such as a hill's radius scale factor.
func ExampleRNG_Float64Range() {
	masterSeed := uint64(777)
	configHash := sha256.Sum256([]byte("config"))
	r := rng.NewRNG(masterSeed, "hills_holes_islands", configHash[:])

	inRange := true
	for i := 0; i < 100; i++ {
		scale := r.Float64Range(0.3, 0.8)
		if scale < 0.3 || scale >= 0.8 {
			inRange = false
		}
	}
	fmt.Println(inRange)

	// Output:
	// true
}
