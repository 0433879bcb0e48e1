// Package island procedurally bakes a bounded island terrain mesh from
// layered 2D noise. A single Generate call turns a Config into a
// multi-surface triangle-soup mesh (one surface per material band) plus a
// matching collision soup; the host adapts both to its own rendering and
// physics types.
package island

import (
	"errors"
	"fmt"
)

// Configuration bounds accepted by Validate.
const (
	MinSize = 2
	MaxSize = 512

	minIslandScale = 1
	maxIslandScale = 100
	minNoiseScale  = 0.1
	maxNoiseScale  = 10
	minMaxHeight   = 0
	maxMaxHeight   = 20
)

// ErrInvalidConfig is wrapped by all Validate failures.
var ErrInvalidConfig = errors.New("invalid island config")

// Material is an opaque handle the host associates with a band. The
// generator never interprets it; a nil handle is allowed and simply means
// the band's surface is emitted without a usable material.
type Material any

// Config describes one bake. It is treated as immutable by the generator.
type Config struct {
	// Size is the heightmap resolution per axis; the grid has Size² vertices
	// and 2*(Size-1)² triangles.
	Size int `yaml:"size"`

	// IslandScale is the world-space width of the grid.
	IslandScale float32 `yaml:"island_scale"`

	// NoiseScale sets the base noise wavelength; frequency is 1/NoiseScale.
	NoiseScale float32 `yaml:"noise_scale"`

	// MaxHeight is the world-space elevation ceiling. Band thresholds are
	// fractions of it, so classification scales with the height range.
	MaxHeight float32 `yaml:"max_height"`

	// Seed selects the noise field. Zero means "draw a seed from the
	// generator's entropy source", once per bake.
	Seed int64 `yaml:"seed"`

	// Materials holds one handle per band, indexed by Band.
	Materials [BandCount]Material `yaml:"-"`
}

// DefaultConfig returns a config that bakes a reasonable small island.
func DefaultConfig() Config {
	return Config{
		Size:        64,
		IslandScale: 30,
		NoiseScale:  2,
		MaxHeight:   5,
	}
}

// Validate checks that every field is inside its accepted range. It fails
// fast so a bad config never starts a partial bake.
func (c Config) Validate() error {
	if c.Size < MinSize || c.Size > MaxSize {
		return fmt.Errorf("%w: size %d outside [%d, %d]", ErrInvalidConfig, c.Size, MinSize, MaxSize)
	}
	if c.IslandScale < minIslandScale || c.IslandScale > maxIslandScale {
		return fmt.Errorf("%w: island_scale %g outside [%g, %g]", ErrInvalidConfig, c.IslandScale, float32(minIslandScale), float32(maxIslandScale))
	}
	if c.NoiseScale < minNoiseScale || c.NoiseScale > maxNoiseScale {
		return fmt.Errorf("%w: noise_scale %g outside [%g, %g]", ErrInvalidConfig, c.NoiseScale, float32(minNoiseScale), float32(maxNoiseScale))
	}
	if c.MaxHeight < minMaxHeight || c.MaxHeight > maxMaxHeight {
		return fmt.Errorf("%w: max_height %g outside [%g, %g]", ErrInvalidConfig, c.MaxHeight, float32(minMaxHeight), float32(maxMaxHeight))
	}
	return nil
}
