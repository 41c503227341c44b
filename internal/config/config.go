// Package config defines reaxtrace's run configuration and loads it from an
// optional YAML file merged with REAXTRACE_* environment variables via viper.
package config

import "fmt"

// Config holds every tunable of a single reaction-detection run.
type Config struct {
	// Trajectory is the path to the input trajectory file.
	Trajectory string `mapstructure:"trajectory"`

	// Format is "xyz" or "lammps"; empty autodetects from the file extension.
	Format string `mapstructure:"format"`

	ChunkSize      int  `mapstructure:"chunk_size"`
	NoiseEventLife int  `mapstructure:"noise_event_life"`
	StepBy         int  `mapstructure:"step_by"`
	ReadLatticeExt bool `mapstructure:"read_lattice_extxyz"`

	BondRatio float64 `mapstructure:"bond_ratio"`

	WriteReactionSpecies bool   `mapstructure:"write_reaction_species"`
	OutputPath           string `mapstructure:"output_path"`

	LogLevel string `mapstructure:"log_level"`

	// MetricsAddr, if non-empty, serves Prometheus metrics on this address.
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// ApplyDefaults fills unset fields with reaxtrace's standard defaults,
// matching the trajectory-analysis reference tool's own defaults.
func ApplyDefaults(c *Config) {
	if c.ChunkSize == 0 {
		c.ChunkSize = 200
	}
	if c.NoiseEventLife == 0 {
		c.NoiseEventLife = 20
	}
	if c.StepBy == 0 {
		c.StepBy = 1
	}
	if c.BondRatio == 0 {
		c.BondRatio = 1.15
	}
	if c.OutputPath == "" {
		c.OutputPath = "reaction.csv"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the invariants the scheduler depends on.
func (c *Config) Validate() error {
	if c.Trajectory == "" {
		return fmt.Errorf("config: trajectory path is required")
	}
	if c.ChunkSize <= 2*c.NoiseEventLife+1 {
		return fmt.Errorf("config: chunk_size (%d) must exceed 2*noise_event_life+1 (%d)", c.ChunkSize, 2*c.NoiseEventLife+1)
	}
	if c.StepBy < 1 {
		return fmt.Errorf("config: step_by must be >= 1, got %d", c.StepBy)
	}
	return nil
}
