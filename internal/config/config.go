// Package config loads the two knobs spec §9's open questions leave
// tunable: a reduction step cap and the measurement RNG seed. Grounded
// on SPEC_FULL.md's AMBIENT STACK section — gopkg.in/yaml.v3, already
// present in the module graph via katalvlaran/lvlath's testify
// dependency chain, is imported directly here rather than left
// indirect.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings an optional YAML file may supply. In the
// zero value, MaxSteps 0 means "not set" (the CLI then falls back to
// DefaultMaxSteps) and seed 0 means "use a non-deterministic source".
type Config struct {
	MaxSteps int   `yaml:"max_steps"`
	Seed     int64 `yaml:"seed"`
	HasSeed  bool  `yaml:"-"`
}

// DefaultMaxSteps is cmd/qlam's fallback step budget when neither a
// config file nor a --max-steps flag supplies one, per SPEC_FULL.md's
// Open Questions decision for spec §9's step-cap question.
const DefaultMaxSteps = 100000

// Load reads path and unmarshals it into a Config. A missing file is
// not an error — it returns a zero-value Config, matching "absence of
// a config file is not an error" from SPEC_FULL.md's ambient stack
// section.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.Seed != 0 {
		cfg.HasSeed = true
	}
	return &cfg, nil
}
