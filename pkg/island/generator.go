package island

import (
	"math/rand"
	"runtime"

	"github.com/alitto/pond/v2"
)

// Generator bakes island meshes. The zero value is ready to use; fields
// exist so hosts and tests can override the defaults.
type Generator struct {
	// Sampler overrides the noise source. When nil, a fractal simplex
	// sampler is built from the config's seed and noise scale.
	Sampler Sampler

	// Entropy supplies the effective seed when the config's seed is 0. It is
	// consulted exactly once per bake. When nil, math/rand is used.
	Entropy func() int64

	// Workers caps the generation worker pool. Zero or negative means one
	// worker per CPU.
	Workers int
}

// Generate runs the whole pipeline for one config: heightmap, triangulation
// and classification, surface assembly, collision extraction. It is a
// single synchronous pass; nothing is published until the bake is complete,
// and no state survives into the next call. Two calls with the same config
// and a non-zero seed produce identical output.
func (g *Generator) Generate(cfg Config) (*Mesh, *Collision, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		entropy := g.Entropy
		if entropy == nil {
			entropy = rand.Int63
		}
		seed = entropy()
	}

	sampler := g.Sampler
	if sampler == nil {
		sampler = newFBMSampler(seed, float64(cfg.NoiseScale))
	}

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	hm := buildHeightmap(cfg, sampler, pool)
	mesh := buildMesh(cfg, hm, pool)
	mesh.Seed = seed

	return mesh, buildCollision(mesh), nil
}

// Generate bakes one island with default generator settings.
func Generate(cfg Config) (*Mesh, *Collision, error) {
	var g Generator
	return g.Generate(cfg)
}
