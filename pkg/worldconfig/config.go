package worldconfig

import (
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// BiomeSlant selects which direction the jungle and tundra strips lean as
// they descend from Surface to Hell.
type BiomeSlant string

const (
	// SlantOutward leans each strip away from the ocean nearest it: the
	// jungle anchor (near the left ocean) increases with y, the tundra
	// anchor (near the right ocean) decreases with y. This is the sign
	// used by the original generator's `jungle_x + i` / `tundra_x - i`.
	SlantOutward BiomeSlant = "outward"
	// SlantInward leans each strip toward the world's vertical centerline.
	SlantInward BiomeSlant = "inward"
)

// OreConfig is the frequency/size slider pair for one ore type.
type OreConfig struct {
	Frequency float64 `yaml:"frequency" json:"frequency"`
	Size      float64 `yaml:"size" json:"size"`
}

// OresConfig collects the four ore sliders.
type OresConfig struct {
	Copper OreConfig `yaml:"copper" json:"copper"`
	Iron   OreConfig `yaml:"iron" json:"iron"`
	Silver OreConfig `yaml:"silver" json:"silver"`
	Gold   OreConfig `yaml:"gold" json:"gold"`
}

// MinibiomesConfig collects the four minibiome frequency sliders.
type MinibiomesConfig struct {
	Hills   float64 `yaml:"hills" json:"hills"`
	Holes   float64 `yaml:"holes" json:"holes"`
	Cabins  float64 `yaml:"cabins" json:"cabins"`
	Islands float64 `yaml:"islands" json:"islands"`
}

// Config specifies all world generation parameters.
type Config struct {
	// Seed is the master seed for deterministic generation. Use 0 to
	// auto-generate from current time.
	Seed uint64 `yaml:"seed" json:"seed"`

	// Width and Height are the world dimensions in cells.
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	Ores       OresConfig       `yaml:"ores" json:"ores"`
	Minibiomes MinibiomesConfig `yaml:"minibiomes" json:"minibiomes"`

	// BiomeSlant resolves the jungle/tundra slant direction.
	BiomeSlant BiomeSlant `yaml:"biomeSlant" json:"biomeSlant"`

	// CavesParallelWithBiomes allows phase 4's cave generation to start as
	// soon as phase 0 (horizontal zones) completes, running concurrently
	// with phase 1 (biomes). If false, phase 4 waits for phase 3 to
	// finish, as it does by default.
	CavesParallelWithBiomes bool `yaml:"cavesParallelWithBiomes" json:"cavesParallelWithBiomes"`
}

// DefaultConfig returns a Config with sensible defaults: all frequencies
// at 1.0, outward slant, sequential caves.
func DefaultConfig() *Config {
	return &Config{
		Seed:   0,
		Width:  4200,
		Height: 1200,
		Ores: OresConfig{
			Copper: OreConfig{Frequency: 1.0, Size: 1.0},
			Iron:   OreConfig{Frequency: 1.0, Size: 1.0},
			Silver: OreConfig{Frequency: 1.0, Size: 1.0},
			Gold:   OreConfig{Frequency: 1.0, Size: 1.0},
		},
		Minibiomes: MinibiomesConfig{
			Hills:   1.0,
			Holes:   1.0,
			Cabins:  1.0,
			Islands: 1.0,
		},
		BiomeSlant:              SlantOutward,
		CavesParallelWithBiomes: false,
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks all configuration constraints, returning ConfigInvalid
// wrapped errors.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrConfigInvalid, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrConfigInvalid, c.Height)
	}
	if err := validateOre("copper", c.Ores.Copper); err != nil {
		return err
	}
	if err := validateOre("iron", c.Ores.Iron); err != nil {
		return err
	}
	if err := validateOre("silver", c.Ores.Silver); err != nil {
		return err
	}
	if err := validateOre("gold", c.Ores.Gold); err != nil {
		return err
	}
	if err := validateUnit("hills", c.Minibiomes.Hills); err != nil {
		return err
	}
	if err := validateUnit("holes", c.Minibiomes.Holes); err != nil {
		return err
	}
	if err := validateUnit("cabins", c.Minibiomes.Cabins); err != nil {
		return err
	}
	if err := validateUnit("islands", c.Minibiomes.Islands); err != nil {
		return err
	}
	if c.BiomeSlant != SlantOutward && c.BiomeSlant != SlantInward {
		return fmt.Errorf("%w: biomeSlant must be %q or %q, got %q",
			ErrConfigInvalid, SlantOutward, SlantInward, c.BiomeSlant)
	}
	return nil
}

func validateOre(name string, o OreConfig) error {
	if err := validateUnit(name+".frequency", o.Frequency); err != nil {
		return err
	}
	return validateUnit(name+".size", o.Size)
}

func validateUnit(name string, v float64) error {
	if v < 0.0 || v > 1.0 {
		return fmt.Errorf("%w: %s must be in [0,1], got %f", ErrConfigInvalid, name, v)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, used for
// deriving per-stage RNG seeds.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.Sum256([]byte(fmt.Sprintf("%d", c.Seed)))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}

func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
