package island

import (
	"sync"

	"github.com/alitto/pond/v2"

	"github.com/Faultbox/islandgen/pkg/geom"
)

// Surface is one material-homogeneous chunk of the final mesh: a flat
// triangle soup with per-vertex UVs and hard per-triangle normals. There is
// no index buffer; vertices run 0,1,2 per triangle and are never shared, so
// each triangle lights independently.
type Surface struct {
	Band      Band
	Positions []geom.Vec3
	Normals   []geom.Vec3
	UVs       []geom.Vec2
	Material  Material
}

// VertexCount returns the number of vertices in the surface, always a
// multiple of 3.
func (s *Surface) VertexCount() int {
	return len(s.Positions)
}

// TriangleCount returns the number of triangles in the surface.
func (s *Surface) TriangleCount() int {
	return len(s.Positions) / 3
}

// Mesh is the finished terrain. Surfaces appear in band order with empty
// bands omitted, so surface index is the rank among non-empty bands, not a
// fixed per-band slot.
type Mesh struct {
	Surfaces []Surface
	Bounds   geom.AABB

	// Heightmap is the source elevation grid, kept so hosts can query
	// terrain height when placing objects.
	Heightmap *Heightmap

	// Seed is the effective noise seed, useful for reproducing a bake that
	// was configured with seed 0.
	Seed int64
}

// TriangleCount returns the total triangle count across all surfaces.
func (m *Mesh) TriangleCount() int {
	n := 0
	for i := range m.Surfaces {
		n += m.Surfaces[i].TriangleCount()
	}
	return n
}

// SurfaceFor returns the surface for a band, or nil if the band is empty.
func (m *Mesh) SurfaceFor(b Band) *Surface {
	for i := range m.Surfaces {
		if m.Surfaces[i].Band == b {
			return &m.Surfaces[i]
		}
	}
	return nil
}

// accumulator collects one band's triangle soup during generation. Buffers
// are append-only; assembly freezes them into a Surface.
type accumulator struct {
	positions []geom.Vec3
	normals   []geom.Vec3
	uvs       []geom.Vec2
}

// appendTriangle adds one triangle in its original winding order, stamping
// the face normal onto all three vertices.
func (a *accumulator) appendTriangle(s0, s1, s2 Sample) {
	e1 := s1.Position.Sub(s0.Position)
	e2 := s2.Position.Sub(s0.Position)
	n := e2.Cross(e1).Normalize()

	a.positions = append(a.positions, s0.Position, s1.Position, s2.Position)
	a.normals = append(a.normals, n, n, n)
	a.uvs = append(a.uvs, s0.UV, s1.UV, s2.UV)
}

// merge appends another accumulator's triangles. Both buffers hold whole
// vertex triples, so winding integrity survives the copy.
func (a *accumulator) merge(other *accumulator) {
	a.positions = append(a.positions, other.positions...)
	a.normals = append(a.normals, other.normals...)
	a.uvs = append(a.uvs, other.uvs...)
}

func (a *accumulator) vertexCount() int {
	return len(a.positions)
}

// bandSet is one full set of per-band accumulators.
type bandSet [BandCount]accumulator

// classifyTriangle routes one triangle into the band matching its average
// elevation.
func (bs *bandSet) classifyTriangle(hm *Heightmap, i0, i1, i2 int) {
	s0 := hm.Samples[i0]
	s1 := hm.Samples[i1]
	s2 := hm.Samples[i2]

	avg := (s0.Height + s1.Height + s2.Height) / 3
	band := classify(avg, hm.MaxHeight)
	bs[band].appendTriangle(s0, s1, s2)
}

// triangulateCells walks cell rows [y0, y1), emitting both triangles of each
// cell into bs. Every cell splits along the same diagonal; the directional
// bias this can show under grazing light is accepted (alternating the
// diagonal per cell is the known alternative).
func triangulateCells(hm *Heightmap, bs *bandSet, y0, y1 int) {
	size := hm.Size
	for y := y0; y < y1; y++ {
		for x := 0; x < size-1; x++ {
			i := y*size + x
			iRight := i + 1
			iDown := i + size
			iDiag := iDown + 1

			bs.classifyTriangle(hm, i, iRight, iDown)
			bs.classifyTriangle(hm, iRight, iDiag, iDown)
		}
	}
}

// buildMesh triangulates the heightmap, classifies every triangle into a
// band and assembles the non-empty bands into surfaces. Cell rows are fanned
// out over the worker pool; each task fills its own bandSet and the sets are
// merged in row order, so the output matches a serial pass bit for bit.
func buildMesh(cfg Config, hm *Heightmap, pool pond.Pool) *Mesh {
	cellRows := hm.Size - 1

	taskCount := (cellRows + rowsPerTask - 1) / rowsPerTask
	sets := make([]bandSet, taskCount)

	var wg sync.WaitGroup
	for t := 0; t < taskCount; t++ {
		y0 := t * rowsPerTask
		y1 := y0 + rowsPerTask
		if y1 > cellRows {
			y1 = cellRows
		}
		set := &sets[t]

		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			triangulateCells(hm, set, y0, y1)
		})
	}
	wg.Wait()

	var merged bandSet
	for t := range sets {
		for b := range merged {
			merged[b].merge(&sets[t][b])
		}
	}

	mesh := &Mesh{
		Bounds:    geom.EmptyAABB(),
		Heightmap: hm,
	}
	for b := Water; b < BandCount; b++ {
		acc := &merged[b]
		if acc.vertexCount() == 0 {
			continue
		}
		for _, p := range acc.positions {
			mesh.Bounds.Extend(p)
		}
		mesh.Surfaces = append(mesh.Surfaces, Surface{
			Band:      b,
			Positions: acc.positions,
			Normals:   acc.normals,
			UVs:       acc.uvs,
			Material:  cfg.Materials[b],
		})
	}
	return mesh
}
