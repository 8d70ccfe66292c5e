package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for the simulation tuning values.
const (
	DefaultGravity      = 9.80665
	DefaultDamping      = 0.5
	DefaultRestSpeed    = 1.0
	DefaultMaxSpeed     = 1e4
	DefaultSubsteps     = 4
	DefaultMaxParticles = 600
)

// Sim holds the tunable physics parameters, loadable from a YAML file.
type Sim struct {
	Gravity      float64 `yaml:"gravity"`
	Damping      float64 `yaml:"damping"`
	RestSpeed    float64 `yaml:"rest_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	AirDensity   float64 `yaml:"air_density"`
	DragCoeff    float64 `yaml:"drag_coeff"`
	Substeps     int     `yaml:"substeps"`
	MaxParticles int     `yaml:"max_particles"`
}

// Default returns the stock configuration: plain gravity, halved bounce
// velocity, no air drag.
func Default() *Sim {
	return &Sim{
		Gravity:      DefaultGravity,
		Damping:      DefaultDamping,
		RestSpeed:    DefaultRestSpeed,
		MaxSpeed:     DefaultMaxSpeed,
		Substeps:     DefaultSubsteps,
		MaxParticles: DefaultMaxParticles,
	}
}

// Load reads a YAML config file; fields missing from the file keep their
// defaults.
func Load(path string) (*Sim, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func Save(path string, cfg *Sim) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the simulation cannot run with.
func (c *Sim) Validate() error {
	if c.Damping < 0 || c.Damping >= 1 {
		return fmt.Errorf("config: damping must be in [0, 1), got %g", c.Damping)
	}
	if c.MaxSpeed <= 0 {
		return fmt.Errorf("config: max_speed must be positive, got %g", c.MaxSpeed)
	}
	if c.Substeps < 1 {
		return fmt.Errorf("config: substeps must be >= 1, got %d", c.Substeps)
	}
	if c.MaxParticles < 1 {
		return fmt.Errorf("config: max_particles must be >= 1, got %d", c.MaxParticles)
	}
	if c.AirDensity < 0 || c.DragCoeff < 0 {
		return fmt.Errorf("config: air_density and drag_coeff must be >= 0")
	}
	return nil
}
