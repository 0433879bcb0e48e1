// Package config handles bake tool configuration loading and management.
package config

import (
	"github.com/Faultbox/islandgen/pkg/island"
)

// Config holds all bake tool settings.
type Config struct {
	Island    island.Config   `yaml:"island"`
	Materials MaterialsConfig `yaml:"materials"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// MaterialsConfig names the material attached to each band's surface. Names
// end up as OBJ usemtl statements; an empty name leaves the band without a
// material.
type MaterialsConfig struct {
	Water string `yaml:"water"`
	Sand  string `yaml:"sand"`
	Grass string `yaml:"grass"`
	Rock  string `yaml:"rock"`
}

// Handles converts the configured names to the opaque handles the generator
// carries through to the surfaces.
func (m MaterialsConfig) Handles() [island.BandCount]island.Material {
	var out [island.BandCount]island.Material
	names := [island.BandCount]string{m.Water, m.Sand, m.Grass, m.Rock}
	for i, name := range names {
		if name != "" {
			out[i] = name
		}
	}
	return out
}

// OutputConfig holds output file paths.
type OutputConfig struct {
	MeshPath string `yaml:"mesh_path"`
	// CollisionPath is optional; empty skips the collision dump.
	CollisionPath string `yaml:"collision_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Island: island.DefaultConfig(),
		Materials: MaterialsConfig{
			Water: "water",
			Sand:  "sand",
			Grass: "grass",
			Rock:  "rock",
		},
		Output: OutputConfig{
			MeshPath:      "island.obj",
			CollisionPath: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
