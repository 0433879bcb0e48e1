package island

import (
	"sync"

	"github.com/alitto/pond/v2"

	"github.com/Faultbox/islandgen/pkg/geom"
)

// Sample is one heightmap vertex.
type Sample struct {
	// UV is the normalized grid coordinate in [0,1]².
	UV geom.Vec2
	// Position is the world-space vertex: X/Z spread over IslandScale
	// centered on the origin, Y the elevation.
	Position geom.Vec3
	// Height duplicates Position.Y for classification without digging into
	// the vector. Always in [0, MaxHeight].
	Height float32
}

// Heightmap is the fully-sampled elevation grid, row-major, immutable once
// built. Index (x, y) maps to y*Size + x.
type Heightmap struct {
	Samples     []Sample
	Size        int
	IslandScale float32
	MaxHeight   float32
}

// Index returns the flat index of grid coordinate (x, y).
func (h *Heightmap) Index(x, y int) int {
	return y*h.Size + x
}

// At returns the sample at grid coordinate (x, y).
func (h *Heightmap) At(x, y int) Sample {
	return h.Samples[y*h.Size+x]
}

// buildHeightmap samples the noise field for every grid vertex. Rows are
// fanned out over the worker pool; each task writes a disjoint range of the
// pre-allocated slice, so the result is identical to a serial pass.
func buildHeightmap(cfg Config, sampler Sampler, pool pond.Pool) *Heightmap {
	size := cfg.Size
	hm := &Heightmap{
		Samples:     make([]Sample, size*size),
		Size:        size,
		IslandScale: cfg.IslandScale,
		MaxHeight:   cfg.MaxHeight,
	}

	var wg sync.WaitGroup
	for y0 := 0; y0 < size; y0 += rowsPerTask {
		y0 := y0
		y1 := y0 + rowsPerTask
		if y1 > size {
			y1 = size
		}

		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			sampleRows(cfg, sampler, hm, y0, y1)
		})
	}
	wg.Wait()

	return hm
}

// rowsPerTask keeps pool tasks coarse enough that scheduling overhead stays
// negligible next to noise evaluation.
const rowsPerTask = 16

func sampleRows(cfg Config, sampler Sampler, hm *Heightmap, y0, y1 int) {
	size := cfg.Size
	invSpan := 1 / float32(size-1)

	for y := y0; y < y1; y++ {
		for x := 0; x < size; x++ {
			fx := float32(x) * invSpan
			fy := float32(y) * invSpan
			worldX := (fx - 0.5) * cfg.IslandScale
			worldZ := (fy - 0.5) * cfg.IslandScale

			raw := geom.Clamp(float32(sampler.Sample(float64(worldX), float64(worldZ))), -1, 1)
			height := (raw*0.5 + 0.5) * Falloff(x, y, size) * cfg.MaxHeight

			hm.Samples[y*size+x] = Sample{
				UV:       geom.Vec2{X: fx, Y: fy},
				Position: geom.Vec3{X: worldX, Y: height, Z: worldZ},
				Height:   height,
			}
		}
	}
}

// InterpolatedHeight returns the bilinearly interpolated terrain height at a
// world-space XZ position, clamped to the grid. Hosts use it to place
// objects on the baked terrain without ray casts.
func (h *Heightmap) InterpolatedHeight(worldX, worldZ float32) float32 {
	span := float32(h.Size - 1)
	gx := (worldX/h.IslandScale + 0.5) * span
	gz := (worldZ/h.IslandScale + 0.5) * span

	x0 := int(gx)
	z0 := int(gz)
	if x0 < 0 {
		x0 = 0
	}
	if z0 < 0 {
		z0 = 0
	}
	if x0 > h.Size-2 {
		x0 = h.Size - 2
	}
	if z0 > h.Size-2 {
		z0 = h.Size - 2
	}

	fx := geom.Clamp(gx-float32(x0), 0, 1)
	fz := geom.Clamp(gz-float32(z0), 0, 1)

	h00 := h.At(x0, z0).Height
	h10 := h.At(x0+1, z0).Height
	h01 := h.At(x0, z0+1).Height
	h11 := h.At(x0+1, z0+1).Height

	near := h00*(1-fx) + h10*fx
	far := h01*(1-fx) + h11*fx
	return near*(1-fz) + far*fz
}
