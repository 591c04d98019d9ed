// Command terraforge runs the terrain generation pipeline from a YAML
// configuration file and optionally writes a JSON debug snapshot of the
// resulting world, via pkg/view. Generation itself never serializes to
// disk; the snapshot here is a debug convenience only.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kjsanger/terraforge/pkg/pipeline"
	"github.com/kjsanger/terraforge/pkg/view"
	"github.com/kjsanger/terraforge/pkg/world"
	"github.com/kjsanger/terraforge/pkg/worldconfig"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML configuration file (required)")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	outputPath = flag.String("output", "", "Path to write a JSON debug snapshot (empty = skip)")
	verbose    = flag.Bool("verbose", false, "Enable verbose progress logging")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("terraforge version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printUsage()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	cfg, err := worldconfig.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	logger.WithFields(logrus.Fields{
		"seed": cfg.Seed, "width": cfg.Width, "height": cfg.Height,
	}).Info("starting generation")

	p := pipeline.New(logger)
	start := time.Now()
	w, genErr := p.Run(context.Background(), cfg)
	elapsed := time.Since(start)

	if genErr != nil {
		return fmt.Errorf("generation failed after %v: %w", elapsed, genErr)
	}

	fmt.Printf("Generated world (seed=%d) in %v\n", cfg.Seed, elapsed)
	if *verbose {
		v := view.New(w)
		fmt.Printf("  Biomes: %d\n", len(v.Biomes()))
		fmt.Printf("  Structures: %d\n", len(v.Structures()))
	}

	if *outputPath != "" {
		if err := writeSnapshot(w, *outputPath); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote debug snapshot to %s\n", *outputPath)
		}
	}

	return nil
}

type snapshot struct {
	Seed       uint64           `json:"seed"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Zones      []view.Zone      `json:"zones"`
	Biomes     []view.Biome     `json:"biomes"`
	Structures []view.Structure `json:"structures"`
}

func writeSnapshot(w *world.World, path string) error {
	v := view.New(w)
	snap := snapshot{
		Seed:       v.Seed(),
		Width:      v.Width(),
		Height:     v.Height(),
		Zones:      v.Zones(),
		Biomes:     v.Biomes(),
		Structures: v.Structures(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func printUsage() {
	fmt.Println("Usage: terraforge -config <path> [flags]")
	flag.PrintDefaults()
}
