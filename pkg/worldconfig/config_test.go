package worldconfig

import (
	"testing"
)

func TestLoadConfig_ValidConfig(t *testing.T) {
	yaml := `
seed: 12345
width: 4200
height: 1200
ores:
  copper:
    frequency: 0.5
    size: 0.5
  iron:
    frequency: 0.4
    size: 0.4
  silver:
    frequency: 0.3
    size: 0.3
  gold:
    frequency: 0.2
    size: 0.2
minibiomes:
  hills: 0.8
  holes: 0.6
  cabins: 0.5
  islands: 0.3
biomeSlant: inward
`

	cfg, err := LoadConfigFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}

	if cfg.Seed != 12345 {
		t.Errorf("Seed = %d, want 12345", cfg.Seed)
	}
	if cfg.Width != 4200 || cfg.Height != 1200 {
		t.Errorf("dimensions = %dx%d, want 4200x1200", cfg.Width, cfg.Height)
	}
	if cfg.Ores.Copper.Frequency != 0.5 {
		t.Errorf("Ores.Copper.Frequency = %f, want 0.5", cfg.Ores.Copper.Frequency)
	}
	if cfg.Minibiomes.Hills != 0.8 {
		t.Errorf("Minibiomes.Hills = %f, want 0.8", cfg.Minibiomes.Hills)
	}
	if cfg.BiomeSlant != SlantInward {
		t.Errorf("BiomeSlant = %q, want %q", cfg.BiomeSlant, SlantInward)
	}
}

func TestLoadConfig_SeedZeroAutoGenerates(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte(`width: 100
height: 100
`))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}
	if cfg.Seed == 0 {
		t.Error("Seed = 0, want auto-generated nonzero seed")
	}
}

func TestValidate_RejectsBadDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for zero width")
	}
}

func TestValidate_RejectsOutOfRangeOre(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ores.Gold.Frequency = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for out-of-range ore frequency")
	}
}

func TestValidate_RejectsUnknownSlant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BiomeSlant = "sideways"
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for unknown biome slant")
	}
}

func TestHash_DeterministicAndSensitiveToChange(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()

	ha, hb := a.Hash(), b.Hash()
	if string(ha) != string(hb) {
		t.Error("Hash() differs for identical configs")
	}

	b.Ores.Gold.Frequency = 0.1
	if string(a.Hash()) == string(b.Hash()) {
		t.Error("Hash() unchanged after modifying a field")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := LoadConfigFromBytes([]byte("not: valid: yaml: at: all:"))
	if err == nil {
		t.Fatal("LoadConfigFromBytes() = nil, want parse error")
	}
}
