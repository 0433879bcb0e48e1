package island

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise octave parameters. Four octaves of simplex noise, each doubling
// frequency and halving amplitude, give enough detail for island-scale
// terrain without visible repetition.
const (
	noiseOctaves     = 4
	noiseLacunarity  = 2.0
	noisePersistence = 0.5
)

// Sampler produces a scalar noise value in [-1, 1] for a world-space XZ
// position. Implementations must be deterministic and safe for concurrent
// use; the generator may sample from several goroutines at once.
type Sampler interface {
	Sample(x, z float64) float64
}

// fbmSampler layers several octaves of seeded simplex noise
// (fractional-Brownian-motion style).
type fbmSampler struct {
	noise opensimplex.Noise
	freq  float64
}

// newFBMSampler builds the default Sampler for a seed and base noise scale.
// The base frequency is 1/noiseScale, so larger scales give broader features.
func newFBMSampler(seed int64, noiseScale float64) *fbmSampler {
	return &fbmSampler{
		noise: opensimplex.New(seed),
		freq:  1 / noiseScale,
	}
}

// Sample returns layered noise at (x, z), clamped to [-1, 1]. The octave sum
// is normalized by total amplitude, but simplex output can slightly overshoot
// its nominal range, so the clamp is load-bearing.
func (s *fbmSampler) Sample(x, z float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := s.freq
	maxVal := 0.0

	for i := 0; i < noiseOctaves; i++ {
		total += s.noise.Eval2(x*frequency, z*frequency) * amplitude
		maxVal += amplitude
		amplitude *= noisePersistence
		frequency *= noiseLacunarity
	}

	v := total / maxVal
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
